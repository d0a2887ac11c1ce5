package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/psplibdoc/prx"
)

// writeModule prints a module with every library and symbol it exports.
func writeModule(w io.Writer, mod *prx.Module) {
	fmt.Fprintf(w, "Found %s, ModuleName: %s\n", mod.FileID, mod.Name)
	fmt.Fprintf(w, "Found %d library\n", len(mod.Libraries))

	for _, lib := range mod.Libraries {
		fmt.Fprintf(w, "Class %s\n", lib.Name)

		fmt.Fprintf(w, "\tFunctions (%d) ->\n", len(lib.Functions))
		for _, sym := range lib.Functions {
			fmt.Fprintf(w, "\t\t(%s, %s)\n", sym.Name, sym.NID)
		}

		fmt.Fprintf(w, "\tVariables (%d) ->\n", len(lib.Variables))
		for _, sym := range lib.Variables {
			fmt.Fprintf(w, "\t\t%s, %s\n", sym.Name, sym.NID)
		}
	}
}

// writeMatch prints a single symbol with its kind.
func writeMatch(w io.Writer, m *prx.Match) {
	fmt.Fprintf(w, "%s: %s, NID: %s\n", m.Kind, m.Name, m.NID)
}

func writeNotFound(w io.Writer, query string) {
	fmt.Fprintf(w, "Couldnt show info for %s\n", query)
}

func writeSuggestions(w io.Writer, names []string) {
	if len(names) == 0 {
		return
	}

	fmt.Fprintf(w, "  did you mean: %s\n", strings.Join(names, ", "))
}

// writeList prints one line per module.
func writeList(w io.Writer, mods []*prx.Module) {
	for _, mod := range mods {
		fmt.Fprintf(w, "FileName: %s, ModuleName: %s\n", mod.FileID, mod.Name)
	}
}

// writeResult prints whatever res resolved to, or the not-found line.
func writeResult(w io.Writer, res prx.Result) {
	switch {
	case res.Module != nil:
		writeModule(w, res.Module)

	case res.Match != nil:
		writeMatch(w, res.Match)

	default:
		writeNotFound(w, res.Query)
	}
}
