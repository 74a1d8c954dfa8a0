package pin

import (
	"strings"
	"unicode/utf8"
)

// SlotLimit is the number of characters a single slot may hold
const SlotLimit = 1

// Normalize reduces a keystroke edit result to a valid slot value.
//
// Longer input is cut to its first character (pastes and multi-character
// deltas keep the leading character). A non-digit collapses to "".
func Normalize(candidate string) string {
	if candidate == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(candidate)
	if !isDigit(r) {
		return ""
	}
	return candidate[:size]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Array is the ordered, fixed-length set of slots backing the widget.
// Every slot is either empty or a single decimal digit.
type Array struct {
	slots []string
}

// NewArray creates an array of n empty slots
func NewArray(n int) (*Array, error) {
	if err := ValidateCount(n); err != nil {
		return nil, err
	}
	return &Array{slots: make([]string, n)}, nil
}

// Len returns the number of slots
func (a *Array) Len() int {
	return len(a.slots)
}

// Get returns the value of slot i, or "" when i is out of range
func (a *Array) Get(i int) string {
	if i < 0 || i >= len(a.slots) {
		return ""
	}
	return a.slots[i]
}

// Write stores the normalized candidate in slot i.
//
// The returned bool is true only when a single digit was stored, which is
// the signal the focus controller uses to advance.
func (a *Array) Write(i int, candidate string) (string, bool) {
	if i < 0 || i >= len(a.slots) {
		return "", false
	}
	value := Normalize(candidate)
	a.slots[i] = value
	return value, utf8.RuneCountInString(value) == SlotLimit
}

// Complete reports whether every slot holds a digit
func (a *Array) Complete() bool {
	for _, s := range a.slots {
		if s == "" {
			return false
		}
	}
	return true
}

// Code joins the slots in index order
func (a *Array) Code() string {
	return strings.Join(a.slots, "")
}

// Values returns a copy of the slots
func (a *Array) Values() []string {
	out := make([]string, len(a.slots))
	copy(out, a.slots)
	return out
}

// Reset empties every slot
func (a *Array) Reset() {
	for i := range a.slots {
		a.slots[i] = ""
	}
}
