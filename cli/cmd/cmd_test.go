package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testDocument = "../../prx/testdata/psplibdoc.xml"

// testContext returns a context naming the test document and capturing
// command output in the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	ctx := WithDocument(t.Context(), testDocument)
	ctx = WithOutput(ctx, &buf)

	return ctx, &buf
}

func TestWithDocument(t *testing.T) {
	if got := documentFrom(context.Background()); got != "" {
		t.Errorf("documentFrom(empty) = %q, want empty", got)
	}

	ctx := WithDocument(context.Background(), "doc.xml")
	if got := documentFrom(ctx); got != "doc.xml" {
		t.Errorf("documentFrom() = %q, want %q", got, "doc.xml")
	}
}

func TestOutputFrom(t *testing.T) {
	if w := outputFrom(context.Background()); w != os.Stdout {
		t.Errorf("outputFrom(empty) = %T, want os.Stdout", w)
	}

	var buf bytes.Buffer

	if w := outputFrom(WithOutput(context.Background(), &buf)); w != &buf {
		t.Errorf("outputFrom() did not return the stored writer")
	}
}

func TestKongContextFrom_Missing(t *testing.T) {
	if ktx := kongContextFrom(context.Background()); ktx != nil {
		t.Errorf("kongContextFrom(empty) = %v, want nil", ktx)
	}

	if ktx := kongContextFrom(WithContext(context.Background(), nil)); ktx != nil {
		t.Errorf("kongContextFrom(nil) = %v, want nil", ktx)
	}
}

func TestLoadTable(t *testing.T) {
	ctx, _ := testContext(t)

	tbl, err := loadTable(ctx)
	if err != nil {
		t.Fatalf("loadTable() error = %v", err)
	}

	if len(tbl.Modules) != 3 {
		t.Errorf("modules = %d, want 3", len(tbl.Modules))
	}
}

func TestLoadTable_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xml")
	ctx := WithDocument(t.Context(), path)

	_, err := loadTable(ctx)
	if !errors.Is(err, ErrOpenDocument) {
		t.Fatalf("loadTable() error = %v, want ErrOpenDocument", err)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("loadTable() error = %v, want wrapped os.ErrNotExist", err)
	}
}
