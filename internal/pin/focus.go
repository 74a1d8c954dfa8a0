package pin

import "fmt"

// Focus tracks which slot, if any, has input focus.
// The zero value is Unfocused over zero slots; use NewFocus.
type Focus struct {
	n       int
	index   int
	focused bool
}

// NewFocus creates an Unfocused controller over n slots
func NewFocus(n int) Focus {
	return Focus{n: n}
}

// Current returns the focused index and true, or 0 and false when Unfocused
func (f Focus) Current() (int, bool) {
	if !f.focused {
		return 0, false
	}
	return f.index, true
}

// IsFocused reports whether slot i holds focus
func (f Focus) IsFocused(i int) bool {
	return f.focused && f.index == i
}

// Set moves focus to slot i. Out-of-range indices are rejected and leave
// the state unchanged.
func (f *Focus) Set(i int) bool {
	if i < 0 || i >= f.n {
		return false
	}
	f.index = i
	f.focused = true
	return true
}

// Advance applies the transition after a single-digit write to slot from:
// focus moves to from+1, or stays on from when it is the last slot.
func (f *Focus) Advance(from int) {
	if from+1 < f.n {
		f.Set(from + 1)
		return
	}
	f.Set(from)
}

// Next moves focus one slot right, wrapping around. Unfocused goes to 0.
func (f *Focus) Next() {
	if f.n == 0 {
		return
	}
	if !f.focused {
		f.Set(0)
		return
	}
	f.Set((f.index + 1) % f.n)
}

// Prev moves focus one slot left, wrapping around. Unfocused goes to the
// last slot.
func (f *Focus) Prev() {
	if f.n == 0 {
		return
	}
	if !f.focused {
		f.Set(f.n - 1)
		return
	}
	i := f.index - 1
	if i < 0 {
		i = f.n - 1
	}
	f.Set(i)
}

// Clear drops focus
func (f *Focus) Clear() {
	f.focused = false
	f.index = 0
}

// String implements fmt.Stringer
func (f Focus) String() string {
	if !f.focused {
		return "Unfocused"
	}
	return fmt.Sprintf("Focused(%d)", f.index)
}
