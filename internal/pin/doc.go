// Package pin holds the data model behind the pin-code entry widget.
//
// It is deliberately free of any terminal or rendering concerns so the rules
// can be exercised directly:
//
//   - Normalize: the single-character, digit-only input rule
//   - Array: the fixed-length sequence of slots, one per digit cell
//   - Focus: the focus state machine (Focused(i) or Unfocused)
//
// # Input Rule
//
// Every keystroke edit produces a candidate string for one slot. The
// candidate is reduced to its first character and kept only if that
// character is a decimal digit; anything else collapses to the empty string.
// No error is ever returned for bad input:
//
//	pin.Normalize("5")   // "5"
//	pin.Normalize("5x")  // "5" (first character kept)
//	pin.Normalize("ab")  // ""
//
// # Focus Advance
//
// A successful single-digit write into slot i moves focus to i+1. Writing
// into the last slot leaves focus where it is. There is no backward move on
// deletion.
//
//	arr, _ := pin.NewArray(4)
//	focus := pin.NewFocus(4)
//	focus.Set(0)
//	if _, ok := arr.Write(0, "7"); ok {
//	    focus.Advance(0) // Focused(1)
//	}
package pin
