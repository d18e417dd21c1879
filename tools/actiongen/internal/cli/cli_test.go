package cli

import (
	"io"
	"strings"
	"testing"
)

func TestExecuteRequiresCatalogFlag(t *testing.T) {
	err := Execute(io.Discard, io.Discard, []string{"--out=out.go"})
	if err == nil {
		t.Fatal("expected error when catalog flag missing")
	}
	if !strings.Contains(err.Error(), "--catalog") {
		t.Fatalf("expected missing catalog flag error, got %v", err)
	}
}

func TestExecuteRequiresOutFlag(t *testing.T) {
	err := Execute(io.Discard, io.Discard, []string{"--catalog=testdata"})
	if err == nil {
		t.Fatal("expected error when out flag missing")
	}
	if !strings.Contains(err.Error(), "--out") {
		t.Fatalf("expected missing out flag error, got %v", err)
	}
}

func TestExecuteRejectsUnexpectedArguments(t *testing.T) {
	err := Execute(io.Discard, io.Discard, []string{"--catalog=testdata", "--out=out.go", "extra"})
	if err == nil {
		t.Fatal("expected error for unexpected positional argument")
	}
	if !strings.Contains(err.Error(), "unexpected arguments") {
		t.Fatalf("expected unexpected arguments error, got %v", err)
	}
}
