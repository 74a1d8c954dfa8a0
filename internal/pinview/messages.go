package pinview

// VerifiedMsg is emitted once per verify activation with the joined code
type VerifiedMsg struct {
	PanelID string
	Code    string
}

// CancelledMsg is emitted when the user backs out of the panel
type CancelledMsg struct {
	PanelID string
}

// FocusMsg moves focus to a cell, the same as the user selecting it.
// Out-of-range indices are ignored.
type FocusMsg struct {
	Index int
}

// CellInputMsg reports that cell Index produced Value. Hosts can send it to
// drive the panel without synthesizing key events.
type CellInputMsg struct {
	Index int
	Value string
}

// mountedMsg is delivered by the one-shot mount task
type mountedMsg struct {
	panelID string
}
