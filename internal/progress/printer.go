package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// TerminalMode selects how a Printer decides whether it writes to a
// terminal.
type TerminalMode int

// Terminal modes.
const (
	TerminalAuto TerminalMode = iota
	TerminalAlways
	TerminalNever
)

// Options configures a Printer.
type Options struct {
	// Output is where bars are written.
	// Default: os.Stderr
	Output io.Writer

	// Width is the rendered line width.
	// Default: DefaultWidth
	Width int

	// Terminal overrides terminal detection on Output.
	Terminal TerminalMode
}

// Printer draws progress bars for successive updates. It is safe for
// concurrent use.
type Printer struct {
	out   io.Writer
	width int
	tty   bool

	mu       sync.Mutex
	current  int64
	total    int64
	lastPct  int64
	printed  bool
	drawn    bool
	finished bool
}

// NewPrinter creates a Printer.
func NewPrinter(opts Options) *Printer {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}

	tty := false
	switch opts.Terminal {
	case TerminalAlways:
		tty = true
	case TerminalAuto:
		if f, ok := opts.Output.(interface{ Fd() uintptr }); ok {
			tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}

	return &Printer{
		out:     opts.Output,
		width:   opts.Width,
		tty:     tty,
		lastPct: -1,
	}
}

// Update records progress and redraws when needed. It matches Func.
func (p *Printer) Update(current, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current, p.total = current, total

	if p.tty {
		fmt.Fprint(p.out, "\r"+Bar(current, total, p.width))
		p.drawn = true
		p.printed = true
		return
	}

	// Without a terminal, print one line per percent so logs stay short.
	if total <= 0 {
		p.printed = false
		return
	}
	if pct := percent(current, total); pct != p.lastPct {
		p.lastPct = pct
		fmt.Fprintln(p.out, Bar(current, total, p.width))
		p.printed = true
	}
}

// Done prints the last state if it was not shown and ends the line.
// Further calls do nothing.
func (p *Printer) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.finished {
		return
	}
	p.finished = true

	switch {
	case p.tty && p.drawn:
		fmt.Fprintln(p.out)
	case !p.tty && !p.printed && (p.current > 0 || p.total > 0):
		fmt.Fprintln(p.out, Bar(p.current, p.total, p.width))
	}
}
