package pinview

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	CellWidth   = 3  // Inner width of a digit cell
	CellSpacing = 1  // Columns between cells
	ButtonWidth = 24 // Width of the verify button
)

// Cell glyphs
const (
	MaskRune        = "●" // Replaces filled digits when masking is on
	PlaceholderRune = "·" // Marks an empty, unfocused cell
	CursorRune      = "_" // Marks an empty, focused cell
)

// Palette is the set of colors a Theme is built from
type Palette struct {
	Primary lipgloss.Color // Focused cell border, enabled button
	Muted   lipgloss.Color // Idle borders, placeholders, subtitle
	Text    lipgloss.Color // Digits and titles
	Surface lipgloss.Color // Disabled button background
}

// DefaultPalette returns the stock colors
func DefaultPalette() Palette {
	return Palette{
		Primary: lipgloss.Color("#7D56F4"), // Purple
		Muted:   lipgloss.Color("#626262"), // Gray
		Text:    lipgloss.Color("#FFFFFF"), // White
		Surface: lipgloss.Color("#2A2A2A"), // Dark gray
	}
}

// Theme holds the lipgloss styles the panel and display render with
type Theme struct {
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	Cell           lipgloss.Style
	FocusedCell    lipgloss.Style
	Placeholder    lipgloss.Style
	Cursor         lipgloss.Style
	Button         lipgloss.Style
	DisabledButton lipgloss.Style
	Help           lipgloss.Style
}

// DefaultTheme returns the theme built from DefaultPalette
func DefaultTheme() Theme {
	return NewTheme(DefaultPalette())
}

// NewTheme builds a Theme from a palette
func NewTheme(p Palette) Theme {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Foreground(p.Text).
		Width(CellWidth).
		Align(lipgloss.Center)

	button := lipgloss.NewStyle().
		Width(ButtonWidth).
		Align(lipgloss.Center).
		Padding(0, 1).
		MarginTop(1)

	return Theme{
		Title: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),

		Cell: cell,

		// Focus only strengthens the stroke, matching how the row reads at a glance
		FocusedCell: cell.
			BorderForeground(p.Primary).
			Bold(true),

		Placeholder: lipgloss.NewStyle().
			Foreground(p.Muted),

		Cursor: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Button: button.
			Foreground(p.Text).
			Background(p.Primary).
			Bold(true),

		DisabledButton: button.
			Foreground(p.Muted).
			Background(p.Surface),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
	}
}

// renderCell draws one boxed cell around an already-resolved glyph
func (t Theme) renderCell(glyph string, focused bool) string {
	if focused {
		return t.FocusedCell.Render(glyph)
	}
	return t.Cell.Render(glyph)
}

// renderRow joins cells horizontally with CellSpacing between them
func renderRow(cells []string) string {
	if len(cells) == 0 {
		return ""
	}
	gap := lipgloss.NewStyle().Width(CellSpacing).Render("")
	parts := make([]string, 0, len(cells)*2-1)
	for i, c := range cells {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
