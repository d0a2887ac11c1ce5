package prx

// FindModule returns the first module whose file identifier equals fileID.
func (t *Table) FindModule(fileID string) (*Module, bool) {
	if t == nil {
		return nil, false
	}

	for i := range t.Modules {
		if t.Modules[i].FileID == fileID {
			return &t.Modules[i], true
		}
	}

	return nil, false
}

// FindSymbolByName returns the first symbol whose name equals name.
func (t *Table) FindSymbolByName(name string) (Match, bool) {
	return t.findSymbol(func(s Symbol) bool { return s.Name == name })
}

// FindSymbolByNID returns the first symbol whose NID equals nid.
func (t *Table) FindSymbolByNID(nid string) (Match, bool) {
	return t.findSymbol(func(s Symbol) bool { return s.NID == nid })
}

func (t *Table) findSymbol(pred func(Symbol) bool) (Match, bool) {
	for m := range t.Symbols() {
		if pred(m.Symbol) {
			return m, true
		}
	}

	return Match{}, false
}

// Result is the outcome of resolving a query with [Table.Resolve].
// Exactly one of Module and Match is set when the query was found.
type Result struct {
	Query  string
	Module *Module
	Match  *Match
}

// Found reports whether the query resolved to anything.
func (r Result) Found() bool { return r.Module != nil || r.Match != nil }

// Resolve looks up query as a module file identifier, then as a symbol NID,
// then as a symbol name, and returns the first that succeeds.
func (t *Table) Resolve(query string) Result {
	res := Result{Query: query}

	if mod, ok := t.FindModule(query); ok {
		res.Module = mod

		return res
	}

	if m, ok := t.FindSymbolByNID(query); ok {
		res.Match = &m

		return res
	}

	if m, ok := t.FindSymbolByName(query); ok {
		res.Match = &m

		return res
	}

	return res
}
