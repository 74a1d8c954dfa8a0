// Package pinview implements a segmented pin-code entry widget for Bubble Tea.
//
// The widget follows the Elm architecture: a Panel holds the pin array and
// the focus state, Update turns messages into state transitions, and View is
// a pure render of that state. Cells never write shared state; they report
// the edit a keystroke produced and the Panel decides what is stored.
//
// # Components
//
//   - Cell: one digit slot, backed by bubbles/textinput for keystroke editing
//   - Panel: title, subtitle, N cells and a verify button
//   - Display: a read-only row of cells for showing a fixed code
//
// # Behavior
//
//   - Each slot holds at most one decimal digit; other input collapses to
//     empty (see pin.Normalize)
//   - Typing a digit moves focus to the next cell; the last cell keeps focus
//   - tab/shift+tab and the arrow keys pick a cell directly
//   - enter verifies once every cell is filled: OnVerify runs with the joined
//     code and a VerifiedMsg is returned to the host
//   - esc returns a CancelledMsg; quitting is left to the host
//
// # Usage Example
//
//	panel, err := pinview.New(pinview.Options{
//	    Count:    6,
//	    OnVerify: func(code string) { fmt.Println(code) },
//	})
//	if err != nil {
//	    return err
//	}
//	defer panel.Close()
//
//	program := tea.NewProgram(panel)
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Initial Focus
//
// Init returns a one-shot command that focuses the first cell (or
// Options.InitialFocus) once the program is running. Close cancels it, and a
// message from a closed or different panel is ignored.
package pinview
