package ui

import (
	"fmt"
	"io"
)

// Printer writes UI components to a writer at a fixed width.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a printer for out, sized to the terminal
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, width: GetTerminalWidth()}
}

// SetWidth overrides the detected width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Header prints a command header followed by a blank line
func (p *Printer) Header(title, command string, params ...Param) {
	h := NewHeader(title, command, params...)
	h.SetWidth(p.width)
	_, _ = fmt.Fprintln(p.out, h.Render())
	_, _ = fmt.Fprintln(p.out)
}

// Success prints a success box
func (p *Printer) Success(title string, details ...Param) {
	r := NewSuccessResult(title, details...)
	r.SetWidth(p.width)
	_, _ = fmt.Fprintln(p.out, r.Render())
}

// Failure prints a failure box
func (p *Printer) Failure(title string, err error) {
	r := NewFailureResult(title, err)
	r.SetWidth(p.width)
	_, _ = fmt.Fprintln(p.out, r.Render())
}

// Line prints already-rendered content
func (p *Printer) Line(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}
