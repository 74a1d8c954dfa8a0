package pinview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/pinview/internal/logging"
	"github.com/muurk/pinview/internal/pin"
)

// Titles holds the three pieces of text around the cells
type Titles struct {
	Title    string
	Subtitle string
	Button   string
}

// DefaultTitles are used when Options.Titles is left empty
var DefaultTitles = Titles{
	Title:    "Verify confirmation code",
	Subtitle: "Enter the 4 digit code from the other device",
	Button:   "Verify",
}

// DefaultTitlesFor returns DefaultTitles with the subtitle worded for count
// digits
func DefaultTitlesFor(count int) Titles {
	t := DefaultTitles
	t.Subtitle = fmt.Sprintf("Enter the %d digit code from the other device", count)
	return t
}

// OnVerify receives the joined code when the verify button is activated
type OnVerify func(code string)

// DefaultOnVerify is the stub used when no callback is supplied
func DefaultOnVerify(code string) {
	logging.Debug("No verify handler set", zap.Int("length", len(code)))
}

// Options configure a Panel
type Options struct {
	Count             int           // Number of digit cells (> 0)
	InitialFocus      *int          // Cell focused once mounted (default 0)
	Titles            Titles        // Zero value means DefaultTitlesFor(Count)
	OnVerify          OnVerify      // Nil means DefaultOnVerify
	Mask              bool          // Render filled cells as MaskRune
	InitialFocusDelay time.Duration // Wait before the initial focus (default none)
	KeyMap            *KeyMap       // Nil means DefaultKeyMap()
	Theme             *Theme        // Nil means DefaultTheme()
}

// Panel is the editable pin-code entry: title, subtitle, a row of digit
// cells and a verify button. It is the single owner of the pin array and
// the focus state; cells only report edits upward.
type Panel struct {
	id           string
	titles       Titles
	onVerify     OnVerify
	mask         bool
	initialFocus int

	pins  *pin.Array
	focus pin.Focus
	cells []Cell
	mount *mountTask

	keys  KeyMap
	theme Theme
	help  help.Model

	Width  int
	Height int
}

// New creates a panel. Count <= 0 or an InitialFocus outside [0, Count)
// is rejected with pin.ErrInvalidConfiguration.
func New(opts Options) (Panel, error) {
	pins, err := pin.NewArray(opts.Count)
	if err != nil {
		return Panel{}, err
	}

	initial := 0
	if opts.InitialFocus != nil {
		if err := pin.ValidateIndex("initial_focus", *opts.InitialFocus, opts.Count); err != nil {
			return Panel{}, err
		}
		initial = *opts.InitialFocus
	}

	titles := opts.Titles
	if titles == (Titles{}) {
		titles = DefaultTitlesFor(opts.Count)
	}

	onVerify := opts.OnVerify
	if onVerify == nil {
		onVerify = DefaultOnVerify
	}

	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	cells := make([]Cell, opts.Count)
	for i := range cells {
		cells[i] = NewCell(i)
	}

	id := uuid.NewString()

	return Panel{
		id:           id,
		titles:       titles,
		onVerify:     onVerify,
		mask:         opts.Mask,
		initialFocus: initial,
		pins:         pins,
		focus:        pin.NewFocus(opts.Count),
		cells:        cells,
		mount:        newMountTask(id, opts.InitialFocusDelay),
		keys:         keys,
		theme:        theme,
		help:         help.New(),
	}, nil
}

// ID returns the panel's instance identifier
func (p Panel) ID() string {
	return p.id
}

// Count returns the number of digit cells
func (p Panel) Count() int {
	return p.pins.Len()
}

// Titles returns the panel's text
func (p Panel) Titles() Titles {
	return p.titles
}

// Values returns a copy of the pin array
func (p Panel) Values() []string {
	return p.pins.Values()
}

// Code returns the slots joined in index order
func (p Panel) Code() string {
	return p.pins.Code()
}

// Focus returns the focus state
func (p Panel) Focus() pin.Focus {
	return p.focus
}

// IsEnabled reports whether the verify button is active: every slot filled
func (p Panel) IsEnabled() bool {
	return p.pins.Complete()
}

// Close tears the panel down. A pending initial-focus task is cancelled and
// will not fire afterwards.
func (p Panel) Close() {
	p.mount.close()
}

// Init starts the initial-focus task
func (p Panel) Init() tea.Cmd {
	return p.mount.cmd()
}

// Update handles all messages for the panel
func (p Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return p.UpdatePanel(msg)
}

// UpdatePanel is Update returning the concrete type, so hosts embedding a
// Panel do not need a type assertion
func (p Panel) UpdatePanel(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.Width = msg.Width
		p.Height = msg.Height
		p.help.Width = msg.Width
		return p, nil

	case mountedMsg:
		if !p.mount.accepts(msg) {
			return p, nil
		}
		// The user may already have picked a cell before the task landed
		if _, focused := p.focus.Current(); !focused {
			p.setFocus(p.initialFocus)
		}
		return p, nil

	case FocusMsg:
		p.setFocus(msg.Index)
		return p, nil

	case CellInputMsg:
		p.Input(msg.Index, msg.Value)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p.editFocused(msg)
}

func (p Panel) handleKey(msg tea.KeyMsg) (Panel, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Verify):
		return p.Verify()

	case key.Matches(msg, p.keys.Next):
		from := p.focus.String()
		p.focus.Next()
		p.syncCells(from)
		return p, nil

	case key.Matches(msg, p.keys.Prev):
		from := p.focus.String()
		p.focus.Prev()
		p.syncCells(from)
		return p, nil

	case key.Matches(msg, p.keys.Cancel):
		id := p.id
		return p, func() tea.Msg { return CancelledMsg{PanelID: id} }
	}

	return p.editFocused(msg)
}

// editFocused hands msg to the focused cell. Besides keys this carries the
// clipboard text requested by ctrl+v, which lands in whichever cell holds
// focus when it arrives.
func (p Panel) editFocused(msg tea.Msg) (Panel, tea.Cmd) {
	i, focused := p.focus.Current()
	if !focused {
		return p, nil
	}
	candidate, changed, cmd := p.cells[i].Edit(msg)
	if changed {
		p.Input(i, candidate)
	}
	return p, cmd
}

// Input dispatches "cell i produced candidate": the candidate is normalized
// into slot i, the cell shows the stored value and focus advances after a
// single-digit write. Out-of-range indices are ignored.
func (p *Panel) Input(i int, candidate string) {
	if i < 0 || i >= p.pins.Len() {
		return
	}
	value, advanced := p.pins.Write(i, candidate)
	p.cells[i].SetValue(value)

	if value == "" && candidate != "" {
		logging.LogRejectedInput(p.id, i, len(candidate))
	}
	if advanced {
		from := p.focus.String()
		p.focus.Advance(i)
		p.syncCells(from)
	}
}

// Verify activates the verify button. Nothing happens unless every slot is
// filled. The callback runs synchronously, exactly once; the returned
// command yields a VerifiedMsg for the host. The pin array is left as is.
func (p Panel) Verify() (Panel, tea.Cmd) {
	if !p.IsEnabled() {
		return p, nil
	}
	code := p.pins.Code()
	logging.LogVerify(p.id, code)
	p.onVerify(code)

	id := p.id
	return p, func() tea.Msg { return VerifiedMsg{PanelID: id, Code: code} }
}

func (p *Panel) setFocus(i int) {
	from := p.focus.String()
	if !p.focus.Set(i) {
		return
	}
	p.syncCells(from)
}

// syncCells makes exactly the focused cell the editing one
func (p *Panel) syncCells(from string) {
	for i := range p.cells {
		if p.focus.IsFocused(i) {
			p.cells[i].focus()
		} else {
			p.cells[i].blur()
		}
	}
	if to := p.focus.String(); to != from {
		logging.LogFocus(p.id, from, to)
	}
}

// View renders the panel
func (p Panel) View() string {
	cells := make([]string, len(p.cells))
	for i, c := range p.cells {
		cells[i] = c.View(p.theme, p.mask)
	}

	button := p.theme.DisabledButton.Render(p.titles.Button)
	if p.IsEnabled() {
		button = p.theme.Button.Render(p.titles.Button)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		p.theme.Title.Render(p.titles.Title),
		p.theme.Subtitle.Render(p.titles.Subtitle),
		"",
		renderRow(cells),
		button,
		p.theme.Help.Render(p.help.View(p.keys)),
	)

	if p.Width > 0 {
		return lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, content)
	}
	return content
}
