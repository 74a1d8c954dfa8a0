package pinview

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Cell is a single digit slot.
//
// It turns keystrokes into candidate edit results but never stores them
// itself: the owning Panel normalizes the candidate, records it in the pin
// array and pushes the stored value back with SetValue.
type Cell struct {
	Index int
	input textinput.Model
}

// NewCell creates an empty cell for slot index
func NewCell(index int) Cell {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ""
	ti.CharLimit = 0 // Unlimited so pastes arrive whole and the first character can be kept
	ti.Cursor.SetMode(cursor.CursorStatic)
	return Cell{Index: index, input: ti}
}

// Edit applies a keystroke, or the clipboard text it asked for, to the
// cell's text and returns the resulting candidate. changed is false when
// the text is unaltered (cursor movement, unbound control keys). ctrl+v
// yields a command that reads the clipboard; its message must be fed back
// through Edit on the same cell.
func (c *Cell) Edit(msg tea.Msg) (candidate string, changed bool, cmd tea.Cmd) {
	before := c.input.Value()
	c.input, cmd = c.input.Update(msg)
	after := c.input.Value()
	return after, after != before, cmd
}

// SetValue replaces the cell's text with the value the panel stored
func (c *Cell) SetValue(v string) {
	c.input.SetValue(v)
	c.input.CursorEnd()
}

// Value returns the cell's text
func (c Cell) Value() string {
	return c.input.Value()
}

// Editing reports whether the cell is the one receiving keystrokes
func (c Cell) Editing() bool {
	return c.input.Focused()
}

func (c *Cell) focus() {
	// Static cursor mode never returns a blink command
	_ = c.input.Focus()
}

func (c *Cell) blur() {
	c.input.Blur()
}

// View renders the cell with the given theme
func (c Cell) View(theme Theme, mask bool) string {
	var glyph string
	switch v := c.Value(); {
	case v == "" && c.Editing():
		glyph = theme.Cursor.Render(CursorRune)
	case v == "":
		glyph = theme.Placeholder.Render(PlaceholderRune)
	case mask:
		glyph = MaskRune
	default:
		glyph = v
	}
	return theme.renderCell(glyph, c.Editing())
}
