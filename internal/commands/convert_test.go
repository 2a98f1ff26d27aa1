package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvertRequiresSourcePath(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"convert"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when no source path is given")
	}
	combined := out.String() + errOut.String()
	if !strings.Contains(combined, "Usage:") {
		t.Errorf("expected a usage message, got %q", combined)
	}
}

func TestConvertEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"convert", dir, "-o", t.TempDir()})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No PDF files found") {
		t.Errorf("expected 'No PDF files found' message, got %q", out.String())
	}
}

func TestConvertRejectsNonPDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.txt")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"convert", path})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for a non-PDF input file")
	}
	if !strings.Contains(err.Error(), ".pdf") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConvertMissingPath(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"convert", "/does/not/exist.pdf"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing input path")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
	// Runtime failures report the error alone, without the usage dump.
	if strings.Contains(out.String()+errOut.String(), "Usage:") {
		t.Error("runtime error should not print usage")
	}
}
