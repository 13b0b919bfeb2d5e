package methodname

import (
	"testing"

	"github.com/rubylint/rubylint/internal/lint"
)

func check(t *testing.T, src string) []lint.Diagnostic {
	t.Helper()
	f := lint.NewSourceFile("test.rb", []byte(src))
	r := &Rule{}
	return r.Check(f)
}

func TestCheck_CamelCaseFlagged(t *testing.T) {
	diags := check(t, "def fooBar\nend\n")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Location.Column != 5 {
		t.Errorf("expected column 5, got %d", diags[0].Location.Column)
	}
}

func TestCheck_SnakeCaseClean(t *testing.T) {
	diags := check(t, "def foo_bar\nend\n\ndef save!\nend\n")
	if len(diags) != 0 {
		t.Fatalf("expected 0 diagnostics, got %d", len(diags))
	}
}

func TestCheck_SingletonMethod(t *testing.T) {
	diags := check(t, "def self.FindAll\nend\n")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	// Column points at the method name, past the receiver.
	if diags[0].Location.Column != 10 {
		t.Errorf("expected column 10, got %d", diags[0].Location.Column)
	}
}

func TestCheck_IndentedDef(t *testing.T) {
	diags := check(t, "class User\n  def fullName\n  end\nend\n")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Location.Line != 2 || diags[0].Location.Column != 7 {
		t.Errorf("expected 2:7, got %d:%d", diags[0].Location.Line, diags[0].Location.Column)
	}
}

func TestCheck_Clean(t *testing.T) {
	diags := check(t, "x = 1\n")
	if len(diags) != 0 {
		t.Fatalf("expected 0 diagnostics, got %d", len(diags))
	}
}
