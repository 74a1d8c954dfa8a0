// Package ui provides run-once terminal output for the pinview CLI.
//
// The interactive panel lives in package pinview. This package covers
// everything printed around it: a command header before the panel or
// display, and a result box once the program has exited.
//
//   - Header: command banner showing operation name and parameters
//   - Result: success/failure boxes with styled details
//   - Printer: writes both to an io.Writer at a fixed width
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.Header("Pin Display", "pinview display 8412")
//	p.Line(pinview.NewDisplay("8412").View())
//	p.Success("Pin entered", ui.Param{Key: "Code", Value: "8412"})
package ui
