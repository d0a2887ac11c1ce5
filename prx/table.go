package prx

import (
	"iter"
	"log/slog"
)

// Symbol is a function or variable exported by a library.
type Symbol struct {
	Name string `json:"name" yaml:"name"`
	NID  string `json:"nid"  yaml:"nid"`
}

// Library is a named group of exported symbols within a module.
type Library struct {
	Name      string   `json:"name"                yaml:"name"`
	Flags     string   `json:"flags"               yaml:"flags"`
	Functions []Symbol `json:"functions,omitempty" yaml:"functions,omitempty"`
	Variables []Symbol `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// Symbols returns the library's symbols of the given kind.
func (l *Library) Symbols(kind Kind) []Symbol {
	switch kind {
	case KindFunction:
		return l.Functions
	case KindVariable:
		return l.Variables
	default:
		return nil
	}
}

// Module is a PRX file and the libraries it exports.
type Module struct {
	FileID    string    `json:"file"      yaml:"file"`
	Name      string    `json:"name"      yaml:"name"`
	Libraries []Library `json:"libraries" yaml:"libraries"`
}

// Table is the set of modules described by one document.
//
// A Table is built once by [Build] and never modified afterward, so it may be
// shared between goroutines without locking. Every sequence preserves
// document order.
type Table struct {
	Modules []Module `json:"modules" yaml:"modules"`
}

// Match is a symbol found by a lookup, together with its location.
type Match struct {
	Symbol

	Kind    Kind
	Module  *Module
	Library *Library
}

// Symbols returns an iterator over every symbol in t in lookup order:
// modules, then libraries, then functions before variables.
func (t *Table) Symbols() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if t == nil {
			return
		}

		for i := range t.Modules {
			mod := &t.Modules[i]

			for j := range mod.Libraries {
				lib := &mod.Libraries[j]

				for _, kind := range kinds {
					for _, sym := range lib.Symbols(kind.Kind) {
						if !yield(Match{
							Symbol:  sym,
							Kind:    kind.Kind,
							Module:  mod,
							Library: lib,
						}) {
							return
						}
					}
				}
			}
		}
	}
}

// Stats summarizes the size of a [Table].
type Stats struct {
	Modules   int
	Libraries int
	Functions int
	Variables int
}

// Stats counts the modules, libraries and symbols in t.
func (t *Table) Stats() Stats {
	var s Stats

	if t == nil {
		return s
	}

	s.Modules = len(t.Modules)

	for _, mod := range t.Modules {
		s.Libraries += len(mod.Libraries)

		for _, lib := range mod.Libraries {
			s.Functions += len(lib.Functions)
			s.Variables += len(lib.Variables)
		}
	}

	return s
}

// LogValue implements [slog.LogValuer].
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("modules", s.Modules),
		slog.Int("libraries", s.Libraries),
		slog.Int("functions", s.Functions),
		slog.Int("variables", s.Variables),
	)
}
