package trailingwhitespace

import (
	"testing"

	"github.com/rubylint/rubylint/internal/lint"
)

func newFile(t *testing.T, src string) *lint.SourceFile {
	t.Helper()
	return lint.NewSourceFile("test.rb", []byte(src))
}

func TestCheck_TrailingSpaces(t *testing.T) {
	r := &Rule{}
	diags := r.Check(newFile(t, "x = 1  \ny = 2\n"))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	d := diags[0]
	if d.Location.Line != 1 || d.Location.Column != 6 {
		t.Errorf("expected 1:6, got %d:%d", d.Location.Line, d.Location.Column)
	}
	if d.Location.Length != 2 {
		t.Errorf("expected length 2, got %d", d.Location.Length)
	}
}

func TestCheck_TrailingTab(t *testing.T) {
	r := &Rule{}
	diags := r.Check(newFile(t, "x = 1\t\n"))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
}

func TestCheck_Clean(t *testing.T) {
	r := &Rule{}
	diags := r.Check(newFile(t, "x = 1\ny = 2\n"))
	if len(diags) != 0 {
		t.Fatalf("expected 0 diagnostics, got %d", len(diags))
	}
}

func TestCheck_LengthCountsCharacters(t *testing.T) {
	// The multi-byte character before the trailing spaces must not skew
	// the column or length.
	r := &Rule{}
	diags := r.Check(newFile(t, "é  \n"))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Location.Column != 2 {
		t.Errorf("expected column 2, got %d", diags[0].Location.Column)
	}
	if diags[0].Location.Length != 2 {
		t.Errorf("expected length 2, got %d", diags[0].Location.Length)
	}
}

func TestFix_StripsTrailingWhitespace(t *testing.T) {
	r := &Rule{}
	got := string(r.Fix(newFile(t, "x = 1  \ny = 2\t\n")))
	want := "x = 1\ny = 2\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFix_PreservesCleanContent(t *testing.T) {
	r := &Rule{}
	src := "x = 1\ny = 2\n"
	got := string(r.Fix(newFile(t, src)))
	if got != src {
		t.Errorf("expected %q, got %q", src, got)
	}
}
