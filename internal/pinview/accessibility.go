package pinview

// Stable identifiers for UI automation. They carry no meaning for the panel
// itself.
const (
	ContainerID    = "pinViewContainer"
	CellID         = "pinView"
	VerifyButtonID = "pinCodeVerifyButton"
)

// Element is one identifiable part of a rendered panel
type Element struct {
	ID      string
	Index   int    // Cell index, -1 for the container and the button
	Value   string // Cell value, or the button label
	Focused bool
	Enabled bool
}

// Elements returns the container, every cell in order, then the verify
// button
func (p Panel) Elements() []Element {
	out := make([]Element, 0, len(p.cells)+2)
	out = append(out, Element{ID: ContainerID, Index: -1, Enabled: true})
	for i := range p.cells {
		out = append(out, Element{
			ID:      CellID,
			Index:   i,
			Value:   p.pins.Get(i),
			Focused: p.focus.IsFocused(i),
			Enabled: true,
		})
	}
	out = append(out, Element{
		ID:      VerifyButtonID,
		Index:   -1,
		Value:   p.titles.Button,
		Enabled: p.IsEnabled(),
	})
	return out
}
