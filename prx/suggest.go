package prx

import (
	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit module file identifiers and symbol names that
// fuzzy-match query, best match first. It never returns query itself.
func (t *Table) Suggest(query string, limit int) []string {
	if query == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(query, t.candidates())

	seen := make(map[string]struct{}, limit)
	out := make([]string, 0, limit)

	for _, m := range matches {
		if m.Str == query {
			continue
		}

		if _, dup := seen[m.Str]; dup {
			continue
		}

		seen[m.Str] = struct{}{}
		out = append(out, m.Str)

		if len(out) == limit {
			break
		}
	}

	return out
}

// candidates lists every module file identifier followed by every symbol
// name, in table order.
func (t *Table) candidates() []string {
	if t == nil {
		return nil
	}

	var list []string

	for _, mod := range t.Modules {
		if mod.FileID != "" {
			list = append(list, mod.FileID)
		}
	}

	for m := range t.Symbols() {
		if m.Name != "" {
			list = append(list, m.Name)
		}
	}

	return list
}
