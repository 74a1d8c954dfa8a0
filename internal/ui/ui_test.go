package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, MinTerminalWidth},
		{MinTerminalWidth - 1, MinTerminalWidth},
		{60, 60},
		{500, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Pin Entry", "pinview entry",
		Param{Key: "Digits", Value: "6"},
		Param{Key: "Mask", Value: "off"},
	).SetWidth(60)

	out := h.Render()
	for _, want := range []string{"PIN ENTRY", "pinview entry", "Digits:", "6", "Mask:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Digits:") > strings.Index(out, "Mask:") {
		t.Error("params should render in the order given")
	}
}

func TestResultRender(t *testing.T) {
	ok := NewSuccessResult("Pin entered", Param{Key: "Code", Value: "1234"}).SetWidth(60).Render()
	if !strings.Contains(ok, "SUCCESS") || !strings.Contains(ok, "1234") {
		t.Errorf("success Render() = %s", ok)
	}

	fail := NewFailureResult("Pin entry cancelled", errors.New("cancelled by user")).SetWidth(60).Render()
	if !strings.Contains(fail, "FAILED") || !strings.Contains(fail, "cancelled by user") {
		t.Errorf("failure Render() = %s", fail)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(60)

	p.Header("Pin Display", "pinview display")
	p.Line("content")
	p.Success("Done", Param{Key: "Digits", Value: "4"})

	out := buf.String()
	for _, want := range []string{"PIN DISPLAY", "content", "Done"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
