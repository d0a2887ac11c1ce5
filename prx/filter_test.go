package prx

import (
	"errors"
	"testing"
)

func TestCompileFilter_Empty(t *testing.T) {
	f, err := CompileFilter("")
	if err != nil {
		t.Fatalf("CompileFilter(\"\") error = %v", err)
	}

	if f != nil {
		t.Errorf("CompileFilter(\"\") = %v, want nil", f)
	}

	mods, err := Build(readTestDoc(t)).Where(f)
	if err != nil {
		t.Fatal(err)
	}

	if len(mods) != 3 {
		t.Errorf("nil filter selected %d modules, want 3", len(mods))
	}
}

func TestTable_Where(t *testing.T) {
	table := Build(readTestDoc(t))

	tests := []struct {
		expr string
		want []string
	}{
		{`true`, []string{"kd/sysmem.prx", "kd/iofilemgr.prx", "kd/loadcore.prx"}},
		{`false`, nil},
		{`Libraries > 1`, []string{"kd/iofilemgr.prx"}},
		{`Variables > 0`, []string{"kd/iofilemgr.prx", "kd/loadcore.prx"}},
		{`Functions == 3`, []string{"kd/sysmem.prx", "kd/iofilemgr.prx"}},
		{`Functions == 0 && Variables == 1`, []string{"kd/loadcore.prx"}},
		{`FileID endsWith "core.prx"`, []string{"kd/loadcore.prx"}},
		{`Name contains "IO" || Name == "sceLoaderCore"`, []string{"kd/iofilemgr.prx", "kd/loadcore.prx"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := CompileFilter(tt.expr)
			if err != nil {
				t.Fatalf("CompileFilter() error = %v", err)
			}

			if f.String() != tt.expr {
				t.Errorf("String() = %q", f.String())
			}

			mods, err := table.Where(f)
			if err != nil {
				t.Fatalf("Where() error = %v", err)
			}

			var got []string
			for _, m := range mods {
				got = append(got, m.FileID)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Where() = %q, want %q", got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Where()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCompileFilter_Invalid(t *testing.T) {
	for _, src := range []string{`Libraries >`, `Unknown == 1`, `FileID`, `Libraries + 1`} {
		t.Run(src, func(t *testing.T) {
			_, err := CompileFilter(src)
			if err == nil {
				t.Fatal("CompileFilter() error = nil")
			}

			if !errors.Is(err, ErrInvalidFilter) {
				t.Errorf("errors.Is(err, ErrInvalidFilter) = false: %v", err)
			}
		})
	}
}
