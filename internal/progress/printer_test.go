package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(Options{Output: &buf, Width: 20})

	var update Func = p.Update
	update(0, 10)
	update(0, 10) // same percent, no new line
	update(5, 10)
	update(10, 10)
	update(10, 10)
	p.Done()
	p.Done()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"  0% [    ] 0.00 / 0.00 MB",
		" 50% [..  ] 0.00 / 0.00 MB",
		"100% [....] 0.00 / 0.00 MB",
	}, lines)
}

func TestPrinterPlainUnknownTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(Options{Output: &buf, Terminal: TerminalNever})

	p.Update(100, 0)
	p.Update(250, 0)
	assert.Empty(t, buf.String())

	p.Done()
	assert.Equal(t, "250 / unknown\n", buf.String())
}

func TestPrinterTerminalRedraws(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(Options{Output: &buf, Width: 20, Terminal: TerminalAlways})

	p.Update(0, 10)
	p.Update(10, 10)
	p.Done()

	assert.Equal(t, "\r  0% [    ] 0.00 / 0.00 MB\r100% [....] 0.00 / 0.00 MB\n", buf.String())
}

func TestPrinterDoneWithoutUpdates(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(Options{Output: &buf}).Done()
	assert.Empty(t, buf.String())
}
