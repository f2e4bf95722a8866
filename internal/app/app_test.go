package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, stdin []byte, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = Run(args, bytes.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestList(t *testing.T) {
	input := []byte{0x1a, 0x2b, 0x3c, 0x4d, 0x5e, 0x6f}
	code, out, errOut := runApp(t, input, "-pattern", "0b???0???? 0b???1????")
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := "00000001: 2b 3c\n00000003: 4d 5e\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestCount(t *testing.T) {
	input := []byte{0xaa, 0x00, 0xaa, 0xaa}
	code, out, _ := runApp(t, input, "-pattern", "0xaa", "-skip", "1", "-count")
	if code != ExitOK || out != "2\n" {
		t.Errorf("expected 2 matches, got exit %d output %q", code, out)
	}
}

func TestList_Wide(t *testing.T) {
	input := []byte{0x00, 0x00, 0xbe, 0xef, 0x12, 0x34}
	code, out, errOut := runApp(t, input, "-pattern", "0xbeef 0x????", "-width", "16")
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if want := "00000002: beef 1234\n"; out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestPatch(t *testing.T) {
	input := []byte{0x12, 0x1b, 0x00, 0x12, 0x1b}
	code, out, errOut := runApp(t, input, "-pattern", "0x12 0x1b", "-replace", "0x?a 0x2? 0x3c", "-take", "1")
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := []byte{0x1a, 0x2b, 0x3c, 0x00, 0x12, 0x1b}
	if !bytes.Equal([]byte(out), want) {
		t.Errorf("expected % x, got % x", want, []byte(out))
	}
}

func TestPatch_NotDefined(t *testing.T) {
	input := []byte{0x00, 0x12, 0x1b, 0xff}
	code, out, errOut := runApp(t, input, "-pattern", "0x12 0x1b", "-replace", "0x?a 0x2? 0x3?")
	if code != ExitError {
		t.Errorf("expected exit %d, got %d", ExitError, code)
	}
	// the unpatchable match is written unchanged, keeping later offsets
	if !bytes.Equal([]byte(out), input) {
		t.Errorf("expected unchanged stream % x, got % x", input, []byte(out))
	}
	if !strings.Contains(errOut, "WARN: match at 00000001 left unpatched") {
		t.Errorf("expected warning, got %q", errOut)
	}

	_, _, errOut = runApp(t, input, "-pattern", "0x12 0x1b", "-replace", "0x?a 0x2? 0x3?", "-quiet")
	if strings.Contains(errOut, "WARN") {
		t.Errorf("expected no warning with -quiet, got %q", errOut)
	}
}

func TestFileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bin")
	if err := os.WriteFile(path, []byte("xxMZyy"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, errOut := runApp(t, nil, "-pattern", "0x4d 0x5a", path)
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "00000002: 4d 5a\n" {
		t.Errorf("unexpected output %q", out)
	}

	code, _, _ = runApp(t, nil, "-pattern", "0x4d", filepath.Join(t.TempDir(), "missing.bin"))
	if code != ExitError {
		t.Errorf("expected exit %d for missing file, got %d", ExitError, code)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no pattern", nil},
		{"bad literal", []string{"-pattern", "0o777"}},
		{"bad replace literal", []string{"-pattern", "0x01", "-replace", "12"}},
		{"blank pattern", []string{"-pattern", "  "}},
		{"literal too wide", []string{"-pattern", "0x123", "-width", "8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runApp(t, nil, tt.args...)
			if code != ExitUsage {
				t.Errorf("expected exit %d, got %d (%s)", ExitUsage, code, errOut)
			}
			if !strings.HasPrefix(errOut, "ERROR: ") {
				t.Errorf("expected error message, got %q", errOut)
			}
		})
	}
}

func TestReadError(t *testing.T) {
	// three bytes do not make a whole 16-bit unit
	code, _, errOut := runApp(t, []byte{0x01, 0x02, 0x03}, "-pattern", "0x0102", "-width", "16")
	if code != ExitError {
		t.Errorf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "unexpected EOF") {
		t.Errorf("expected unexpected EOF, got %q", errOut)
	}
}
