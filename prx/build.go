package prx

import (
	"github.com/ardnew/psplibdoc/section"
)

// Document tags.
const (
	tagModule    = "PRXFILE"
	tagFileID    = "PRX"
	tagModName   = "PRXNAME"
	tagLibraries = "LIBRARIES"
	tagLibrary   = "LIBRARY"
	tagName      = "NAME"
	tagFlags     = "FLAGS"
	tagFunctions = "FUNCTIONS"
	tagFunction  = "FUNCTION"
	tagVariables = "VARIABLES"
	tagVariable  = "VARIABLE"
	tagNID       = "NID"
)

// Build constructs a [Table] from document text.
//
// Build never fails. A missing field leaves the corresponding value empty and
// a missing container leaves the corresponding sequence empty; whatever was
// found is kept.
func Build(text string) *Table {
	var t Table

	for body := range section.All(text, tagModule) {
		t.Modules = append(t.Modules, buildModule(body))
	}

	return &t
}

func buildModule(body string) Module {
	mod := Module{
		FileID: section.Field(body, tagFileID),
		Name:   section.Field(body, tagModName),
	}

	for container := range section.All(body, tagLibraries) {
		for lib := range section.All(container, tagLibrary) {
			mod.Libraries = append(mod.Libraries, buildLibrary(lib))
		}
	}

	return mod
}

func buildLibrary(body string) Library {
	lib := Library{
		Name:  section.Field(body, tagName),
		Flags: section.Field(body, tagFlags),
	}

	for _, kind := range kinds {
		var syms []Symbol

		for container := range section.All(body, kind.container) {
			for entry := range section.All(container, kind.entry) {
				syms = append(syms, Symbol{
					Name: section.Field(entry, tagName),
					NID:  section.Field(entry, tagNID),
				})
			}
		}

		switch kind.Kind {
		case KindFunction:
			lib.Functions = syms
		case KindVariable:
			lib.Variables = syms
		}
	}

	return lib
}
