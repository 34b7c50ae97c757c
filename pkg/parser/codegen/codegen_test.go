package codegen_test

import (
	"errors"
	"hackasm/pkg/config"
	"hackasm/pkg/lexer"
	"hackasm/pkg/parser"
	"hackasm/pkg/parser/codegen"
	"hackasm/pkg/symbols"
	"strconv"
	"strings"
	"testing"
)

func assemble(t *testing.T, src string) ([]codegen.Word, error) {
	t.Helper()

	c := config.Default()
	p := parser.NewParser(lexer.Lex(src), symbols.New(c.Symbols))
	if err := p.Parse(); err != nil {
		return nil, err
	}

	return codegen.NewEncoder(c).EncodeAll(p.Program())
}

func expectWords(t *testing.T, src string, expected []string) {
	t.Helper()

	words, err := assemble(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d: %v", len(expected), len(words), words)
	}
	for i, want := range expected {
		if string(words[i]) != want {
			t.Errorf("Word %d: expected %s, got %s", i, want, words[i])
		}
	}
}

func TestLiteralProgram(t *testing.T) {
	src := "@2\nD=A\n@3\nD=D+A\n@0\nM=D"
	expectWords(t, src, []string{
		"0000000000000010",
		"1110110010010000",
		"0000000000000011",
		"1110000010010000",
		"0000000000000000",
		"1110001100001000",
	})
}

func TestLabelJump(t *testing.T) {
	expectWords(t, "(LOOP)\n@LOOP\n0;JMP", []string{
		"0000000000000000",
		"1110101010000111",
	})
}

func TestComputeEncodings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"M=M+1", "1111110111001000"},
		{"AMD=D|M;JLE", "1111010101111110"},
		{"D;JGT", "1110001100000001"},
		{"A=-1", "1110111010100000"},
		{"MD=!A;JNE", "1110110001011101"},
		{"D=D-M;JEQ", "1111010011010010"},
		{"AM=M-D;JLT", "1111000111101100"},
		{"AD=D&A;JGE", "1110000000110011"},
	}

	for _, test := range tests {
		words, err := assemble(t, test.input)
		if err != nil {
			t.Errorf("Input %q: unexpected error: %v", test.input, err)
			continue
		}
		if string(words[0]) != test.expected {
			t.Errorf("Input %q: expected %s, got %s", test.input, test.expected, words[0])
		}
	}
}

func TestWordShape(t *testing.T) {
	src := `// sum 1..100
@i
M=1
@sum
M=0
(LOOP)
@i
D=M
@100
D=D-A
@END
D;JGT
@i
D=M
@sum
M=D+M
@i
M=M+1
@LOOP
0;JMP
(END)
@END
0;JMP`

	words, err := assemble(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := lexer.Lex(src)
	i := 0
	for _, line := range lines {
		if line.IsLabel() {
			continue
		}

		w := words[i]
		if !w.Valid() {
			t.Errorf("Word %d %q is not 16 binary digits", i, w)
		}
		switch line.Kind {
		case lexer.ADDRESS:
			if !strings.HasPrefix(string(w), "0") {
				t.Errorf("Word %d for %q should start with 0, got %s", i, line.Text, w)
			}
		case lexer.COMPUTE:
			if !w.IsCompute() {
				t.Errorf("Word %d for %q should start with 111, got %s", i, line.Text, w)
			}
		}
		i++
	}

	if i != len(words) {
		t.Errorf("expected %d words, got %d", i, len(words))
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	enc := codegen.NewEncoder(config.Default())

	for v := 0; v <= symbols.MaxAddress; v += 97 {
		checkRoundTrip(t, enc, v)
	}
	checkRoundTrip(t, enc, symbols.MaxAddress)
}

func checkRoundTrip(t *testing.T, enc *codegen.Encoder, v int) {
	t.Helper()

	w, err := enc.Encode(&parser.AddressInstruction{Operand: strconv.Itoa(v), Value: v})
	if err != nil {
		t.Fatalf("literal %d: unexpected error: %v", v, err)
	}

	got, err := strconv.ParseUint(string(w[1:]), 2, 15)
	if err != nil {
		t.Fatalf("literal %d: cannot parse field %q: %v", v, w[1:], err)
	}
	if int(got) != v {
		t.Errorf("literal %d: round trip gave %d", v, got)
	}
}

func TestUndefinedMnemonics(t *testing.T) {
	tests := []struct {
		input    string
		field    string
		mnemonic string
	}{
		{"D=A+D", "comp", "A+D"},
		{"X=A", "dest", "X"},
		{"DM=A", "dest", "DM"},
		{"0;JUMP", "jump", "JUMP"},
		{"D=M;jmp", "jump", "jmp"},
		{"D=2", "comp", "2"},
		{"null=D", "dest", "null"},
		{"D;null", "jump", "null"},
		{"null=D;null", "dest", "null"},
		{"M=null", "comp", "null"},
	}

	for _, test := range tests {
		_, err := assemble(t, test.input)

		var mnemonicErr *codegen.UndefinedMnemonicError
		if !errors.As(err, &mnemonicErr) {
			t.Errorf("Input %q: expected UndefinedMnemonicError, got %v", test.input, err)
			continue
		}
		if mnemonicErr.Field != test.field || mnemonicErr.Mnemonic != test.mnemonic {
			t.Errorf("Input %q: expected %s %q, got %s %q",
				test.input, test.field, test.mnemonic, mnemonicErr.Field, mnemonicErr.Mnemonic)
		}
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	enc := codegen.NewEncoder(config.Default())

	_, err := enc.Encode(&parser.AddressInstruction{Operand: "x", Value: 1 << 15})
	var rangeErr *parser.AddressRangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("expected AddressRangeError, got %v", err)
	}
}

func TestWordUint16(t *testing.T) {
	tests := []struct {
		word  codegen.Word
		value uint16
		ok    bool
	}{
		{"0000000000000010", 2, true},
		{"1110101010000111", 0xEA87, true},
		{"111", 0, false},
		{"000000000000001x", 0, false},
	}

	for _, test := range tests {
		v, err := test.word.Uint16()
		if (err == nil) != test.ok {
			t.Errorf("Word %q: expected ok=%v, got err=%v", test.word, test.ok, err)
			continue
		}
		if test.ok && v != test.value {
			t.Errorf("Word %q: expected %d, got %d", test.word, test.value, v)
		}
		if test.ok && codegen.NewWord(v) != test.word {
			t.Errorf("NewWord(%d) = %s; want %s", v, codegen.NewWord(v), test.word)
		}
	}
}
