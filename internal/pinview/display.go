package pinview

// Display renders a fixed code as a row of styled, non-editable cells.
// It has no focus and never changes.
type Display struct {
	text  string
	theme Theme
	mask  bool
}

// NewDisplay creates a read-only display of s, one cell per character
func NewDisplay(s string) Display {
	return Display{text: s, theme: DefaultTheme()}
}

// WithTheme returns a copy rendering with theme
func (d Display) WithTheme(theme Theme) Display {
	d.theme = theme
	return d
}

// WithMask returns a copy that hides the characters
func (d Display) WithMask(mask bool) Display {
	d.mask = mask
	return d
}

// Text returns the displayed string
func (d Display) Text() string {
	return d.text
}

// Len returns the number of cells
func (d Display) Len() int {
	return len([]rune(d.text))
}

// View renders the cells
func (d Display) View() string {
	runes := []rune(d.text)
	cells := make([]string, len(runes))
	for i, r := range runes {
		glyph := string(r)
		if d.mask {
			glyph = MaskRune
		}
		cells[i] = d.theme.renderCell(glyph, false)
	}
	return renderRow(cells)
}

// String implements fmt.Stringer
func (d Display) String() string {
	return d.View()
}
