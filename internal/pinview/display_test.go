package pinview

import (
	"strings"
	"testing"
)

func TestDisplay(t *testing.T) {
	d := NewDisplay("8412")

	if d.Len() != 4 {
		t.Errorf("Len() = %d, want 4", d.Len())
	}
	if d.Text() != "8412" {
		t.Errorf("Text() = %q, want 8412", d.Text())
	}

	view := d.View()
	for _, c := range []string{"8", "4", "1", "2"} {
		if !strings.Contains(view, c) {
			t.Errorf("View() missing %q:\n%s", c, view)
		}
	}
	if d.String() != view {
		t.Error("String() should equal View()")
	}
}

func TestDisplayMask(t *testing.T) {
	view := NewDisplay("93").WithMask(true).View()

	if strings.ContainsAny(view, "93") {
		t.Errorf("masked View() leaks digits:\n%s", view)
	}
	if strings.Count(view, MaskRune) != 2 {
		t.Errorf("masked View() should show 2 %q, got:\n%s", MaskRune, view)
	}
}

func TestDisplayEmpty(t *testing.T) {
	d := NewDisplay("")
	if d.Len() != 0 || d.View() != "" {
		t.Errorf("empty display Len() = %d, View() = %q", d.Len(), d.View())
	}
}

func TestDisplayWithTheme(t *testing.T) {
	theme := NewTheme(Palette{Primary: "#FF0000", Muted: "#00FF00", Text: "#0000FF", Surface: "#000000"})
	d := NewDisplay("12").WithTheme(theme)
	if !strings.Contains(d.View(), "1") {
		t.Error("themed display should still render digits")
	}
}
