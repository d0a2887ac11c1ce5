package prx

import (
	"reflect"
	"testing"
)

func TestTable_FindModule(t *testing.T) {
	table := Build(readTestDoc(t))

	mod, ok := table.FindModule("kd/iofilemgr.prx")
	if !ok {
		t.Fatal("FindModule() did not find kd/iofilemgr.prx")
	}

	if mod != &table.Modules[1] {
		t.Error("FindModule() returned a copy, want a reference into the table")
	}

	for _, id := range []string{"", "iofilemgr.prx", "KD/IOFILEMGR.PRX", "sceIOFileManager"} {
		if _, ok := table.FindModule(id); ok {
			t.Errorf("FindModule(%q) = found, want not found", id)
		}
	}
}

func TestTable_FindModule_Idempotent(t *testing.T) {
	table := Build(readTestDoc(t))
	before := Build(readTestDoc(t))

	m1, ok1 := table.FindModule("kd/sysmem.prx")
	m2, ok2 := table.FindModule("kd/sysmem.prx")

	if ok1 != ok2 || m1 != m2 {
		t.Errorf("FindModule() not idempotent: (%p, %v) vs (%p, %v)", m1, ok1, m2, ok2)
	}

	if !reflect.DeepEqual(table, before) {
		t.Error("FindModule() modified the table")
	}
}

func TestTable_FindSymbol(t *testing.T) {
	table := Build(readTestDoc(t))

	tests := []struct {
		name    string
		find    func(string) (Match, bool)
		query   string
		want    Symbol
		kind    Kind
		module  string
		library string
	}{
		{"by name function", table.FindSymbolByName, "sceIoClose", Symbol{"sceIoClose", "0x810C4BC3"}, KindFunction, "kd/iofilemgr.prx", "IoFileMgrForUser"},
		{"by name variable", table.FindSymbolByName, "sceKernelStdioVersion", Symbol{"sceKernelStdioVersion", "0xA6BAB2E9"}, KindVariable, "kd/iofilemgr.prx", "StdioForUser"},
		{"by nid function", table.FindSymbolByNID, "0x237DBD4F", Symbol{"sceKernelAllocPartitionMemory", "0x237DBD4F"}, KindFunction, "kd/sysmem.prx", "SysMemUserForUser"},
		{"by nid variable", table.FindSymbolByNID, "0xD8779AC6", Symbol{"sceKernelLoadCoreModuleInfo", "0xD8779AC6"}, KindVariable, "kd/loadcore.prx", "LoadCoreForKernel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := tt.find(tt.query)
			if !ok {
				t.Fatalf("%q not found", tt.query)
			}

			if m.Symbol != tt.want {
				t.Errorf("Symbol = %+v, want %+v", m.Symbol, tt.want)
			}

			if m.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", m.Kind, tt.kind)
			}

			if m.Module.FileID != tt.module {
				t.Errorf("Module = %q, want %q", m.Module.FileID, tt.module)
			}

			if m.Library.Name != tt.library {
				t.Errorf("Library = %q, want %q", m.Library.Name, tt.library)
			}
		})
	}
}

func TestTable_FindSymbol_ExactMatchOnly(t *testing.T) {
	table := Build(readTestDoc(t))

	for _, q := range []string{"sceio", "sceIoOpe", "sceIoOpen ", "0x109f50bc", "109F50BC", ""} {
		if _, ok := table.FindSymbolByName(q); ok {
			t.Errorf("FindSymbolByName(%q) = found", q)
		}

		if _, ok := table.FindSymbolByNID(q); ok {
			t.Errorf("FindSymbolByNID(%q) = found", q)
		}
	}
}

func TestTable_FindSymbolByName_FirstMatchAcrossModules(t *testing.T) {
	doc := `<PRXFILE><PRX>M1</PRX><LIBRARIES><LIBRARY><NAME>L1</NAME>
<FUNCTIONS><FUNCTION><NAME>foo</NAME><NID>0x1</NID></FUNCTION></FUNCTIONS>
</LIBRARY></LIBRARIES></PRXFILE>
<PRXFILE><PRX>M2</PRX><LIBRARIES><LIBRARY><NAME>L2</NAME>
<FUNCTIONS><FUNCTION><NAME>foo</NAME><NID>0x2</NID></FUNCTION></FUNCTIONS>
</LIBRARY></LIBRARIES></PRXFILE>`

	m, ok := Build(doc).FindSymbolByName("foo")
	if !ok {
		t.Fatal("foo not found")
	}

	if m.NID != "0x1" || m.Module.FileID != "M1" {
		t.Errorf("got %s in %s, want 0x1 in M1", m.NID, m.Module.FileID)
	}
}

func TestTable_FindSymbol_FunctionsBeforeVariables(t *testing.T) {
	doc := `<PRXFILE><PRX>M</PRX><LIBRARIES><LIBRARY><NAME>L</NAME>
<VARIABLES><VARIABLE><NAME>dup</NAME><NID>0xV</NID></VARIABLE></VARIABLES>
<FUNCTIONS><FUNCTION><NAME>dup</NAME><NID>0xF</NID></FUNCTION></FUNCTIONS>
</LIBRARY></LIBRARIES></PRXFILE>`

	m, ok := Build(doc).FindSymbolByName("dup")
	if !ok {
		t.Fatal("dup not found")
	}

	if m.Kind != KindFunction || m.NID != "0xF" {
		t.Errorf("got %v %s, want Function 0xF", m.Kind, m.NID)
	}
}

func TestTable_NilReceiver(t *testing.T) {
	var table *Table

	if _, ok := table.FindModule("x"); ok {
		t.Error("FindModule on nil table = found")
	}

	if _, ok := table.FindSymbolByName("x"); ok {
		t.Error("FindSymbolByName on nil table = found")
	}

	if res := table.Resolve("x"); res.Found() {
		t.Error("Resolve on nil table = found")
	}

	if got := table.Stats(); got != (Stats{}) {
		t.Errorf("Stats on nil table = %+v", got)
	}
}

func TestTable_Resolve(t *testing.T) {
	// A module file id, a NID and a name that collide on purpose.
	doc := `<PRXFILE><PRX>shared</PRX><PRXNAME>Mod</PRXNAME></PRXFILE>
<PRXFILE><PRX>other</PRX><LIBRARIES><LIBRARY><NAME>L</NAME><FUNCTIONS>
<FUNCTION><NAME>byName</NAME><NID>shared</NID></FUNCTION>
<FUNCTION><NAME>0x5</NAME><NID>0x6</NID></FUNCTION>
<FUNCTION><NAME>other</NAME><NID>0x5</NID></FUNCTION>
</FUNCTIONS></LIBRARY></LIBRARIES></PRXFILE>`

	table := Build(doc)

	tests := []struct {
		query      string
		wantModule string
		wantName   string
	}{
		{"shared", "shared", ""},   // module beats NID
		{"0x5", "", "other"},       // NID beats name
		{"byName", "", "byName"},   // name
		{"other", "other", ""},     // module beats name
		{"missing", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res := table.Resolve(tt.query)

			if res.Query != tt.query {
				t.Errorf("Query = %q", res.Query)
			}

			switch {
			case tt.wantModule != "":
				if res.Module == nil || res.Module.FileID != tt.wantModule || res.Match != nil {
					t.Errorf("Resolve() = %+v, want module %q", res, tt.wantModule)
				}
			case tt.wantName != "":
				if res.Match == nil || res.Match.Name != tt.wantName || res.Module != nil {
					t.Errorf("Resolve() = %+v, want symbol %q", res, tt.wantName)
				}
			default:
				if res.Found() {
					t.Errorf("Resolve() = %+v, want not found", res)
				}
			}
		})
	}
}

func BenchmarkTable_FindSymbolByNID(b *testing.B) {
	table := Build(readTestDoc(b))

	for b.Loop() {
		_, _ = table.FindSymbolByNID("0xD8779AC6")
	}
}
