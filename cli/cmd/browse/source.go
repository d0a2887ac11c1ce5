package browse

import (
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/psplibdoc/prx"
)

// entries is every symbol of a table, searchable as a [fuzzy.Source].
// Each entry is matched on its name followed by its NID.
type entries []prx.Match

var _ fuzzy.Source = entries(nil)

func collect(tbl *prx.Table) entries {
	var list entries

	for m := range tbl.Symbols() {
		list = append(list, m)
	}

	return list
}

func (e entries) String(i int) string { return key(e[i]) }

func (e entries) Len() int { return len(e) }

func key(m prx.Match) string { return m.Name + " " + m.NID }

// search returns the entries matching pattern, best first, at most limit.
// An empty pattern matches nothing.
func (e entries) search(pattern string, limit int) fuzzy.Matches {
	if pattern == "" {
		return nil
	}

	matches := fuzzy.FindFrom(pattern, e)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}
