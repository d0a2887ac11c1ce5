package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"testing"
)

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"sentinel", ErrEncode, "encode table"},
		{"wrapped", ErrOpenDocument.Wrap(fs.ErrNotExist), "open document: file does not exist"},
		{"cause only", NewError("").Wrap(fs.ErrClosed), "file already closed"},
		{"empty", NewError(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := error(ErrFilter.Wrap(fs.ErrInvalid).With(slog.String("where", "x")))

	if !errors.Is(err, ErrFilter) {
		t.Error("wrapped error does not match its sentinel")
	}

	if errors.Is(err, ErrEncode) {
		t.Error("wrapped error matches an unrelated sentinel")
	}

	if !errors.Is(err, fs.ErrInvalid) {
		t.Error("wrapped error does not match its cause")
	}
}

func TestError_With_DoesNotShare(t *testing.T) {
	base := ErrEncode.With(slog.String("a", "1"))
	one := base.With(slog.String("b", "2"))
	two := base.With(slog.String("c", "3"))

	if len(base.attrs) != 1 || len(one.attrs) != 2 || len(two.attrs) != 2 {
		t.Fatalf("attr counts = %d, %d, %d", len(base.attrs), len(one.attrs), len(two.attrs))
	}

	if one.attrs[1].Key != "b" || two.attrs[1].Key != "c" {
		t.Error("With calls share backing storage")
	}
}

func TestError_LogValue(t *testing.T) {
	v := ErrOpenDocument.Wrap(fs.ErrNotExist).
		With(slog.String("path", "x.xml")).
		LogValue()

	got := map[string]string{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"error": "open document",
		"cause": "file does not exist",
		"path":  "x.xml",
	}

	for k, w := range want {
		if got[k] != w {
			t.Errorf("LogValue()[%q] = %q, want %q", k, got[k], w)
		}
	}
}
