package output_test

import (
	"bytes"
	"hackasm/pkg/parser/codegen"
	"hackasm/pkg/parser/codegen/output"
	"os"
	"path/filepath"
	"testing"
)

var program = []codegen.Word{"0000000000000010", "1110110010010000"}

func TestHackText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Prog.hack")

	out := output.NewHackText(program, path)
	if err := out.Generate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := out.Build(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	expected := "0000000000000010\n1110110010010000"
	if string(got) != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestHackBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Prog.bin")

	out, err := output.New(output.FormatBinary, program, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := out.Generate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []byte{0x00, 0x02, 0xEC, 0x90}
	if !bytes.Equal(out.GetCode(), expected) {
		t.Errorf("expected % X, got % X", expected, out.GetCode())
	}

	if err := out.Build(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := os.ReadFile(path)
	if !bytes.Equal(got, expected) {
		t.Errorf("file: expected % X, got % X", expected, got)
	}
}

func TestMalformedWordKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Prog.hack")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, f := range []output.Format{output.FormatHack, output.FormatBinary} {
		out, err := output.New(f, []codegen.Word{"01"}, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := out.Generate(); err == nil {
			t.Errorf("format %s: expected error for malformed word", f)
		}
	}

	got, _ := os.ReadFile(path)
	if string(got) != "old" {
		t.Errorf("existing file changed to %q", got)
	}
}

func TestBuildLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	out := output.NewHackText(program, filepath.Join(dir, "Prog.hack"))
	if err := out.Generate(); err != nil {
		t.Fatal(err)
	}
	if err := out.Build(); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "Prog.hack" {
		t.Errorf("expected only Prog.hack in output dir, got %v", entries)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := output.New("elf", program, "x"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected output.Format
		ok       bool
	}{
		{"", output.FormatHack, true},
		{"hack", output.FormatHack, true},
		{"bin", output.FormatBinary, true},
		{"elf", "", false},
		{"HACK", "", false},
	}

	for _, test := range tests {
		f, err := output.ParseFormat(test.input)
		if (err == nil) != test.ok {
			t.Errorf("ParseFormat(%q): expected ok=%v, got err=%v", test.input, test.ok, err)
			continue
		}
		if f != test.expected {
			t.Errorf("ParseFormat(%q) = %q; want %q", test.input, f, test.expected)
		}
	}
}

func TestExtension(t *testing.T) {
	if output.FormatHack.Extension() != ".hack" || output.FormatBinary.Extension() != ".bin" {
		t.Error("unexpected format extensions")
	}
}
