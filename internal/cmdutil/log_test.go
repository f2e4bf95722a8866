package cmdutil

import (
	"bytes"
	"testing"
)

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, false, "%d matches dropped", 2)
	if got := buf.String(); got != "WARN: 2 matches dropped\n" {
		t.Errorf("unexpected output %q", got)
	}

	buf.Reset()
	Warnf(&buf, true, "ignored")
	if buf.Len() != 0 {
		t.Errorf("expected quiet warning to print nothing, got %q", buf.String())
	}
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Errorf(&buf, "open %s", "x.bin")
	if got := buf.String(); got != "ERROR: open x.bin\n" {
		t.Errorf("unexpected output %q", got)
	}
}
