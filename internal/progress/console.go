// Package progress renders transfer events on the terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"gdsync/internal/models"
)

// Console shows a progress bar with the run log above it when attached to a
// terminal, and plain lines otherwise.
type Console struct {
	out         io.Writer
	interactive bool

	mu    sync.Mutex
	bar   *progressbar.ProgressBar
	total int
}

// NewConsole writes to f, drawing a bar only when f is a terminal.
func NewConsole(f *os.File) *Console {
	return NewConsoleWriter(f, term.IsTerminal(int(f.Fd())))
}

func NewConsoleWriter(w io.Writer, interactive bool) *Console {
	return &Console{out: w, interactive: interactive}
}

// Handle renders one event.
func (c *Console) Handle(ev models.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Kind {
	case models.EventProgress:
		c.progress(ev)
	case models.EventLog:
		c.log(ev)
	case models.EventCompleted:
		c.finish()
	}
}

// Finish completes any bar still on screen.
func (c *Console) Finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finish()
}

func (c *Console) progress(ev models.Event) {
	if !c.interactive {
		if ev.File != "" {
			fmt.Fprintf(c.out, "[%d/%d] %s\n", ev.Current+1, ev.Total, ev.File)
		}
		return
	}

	if ev.Total <= 0 {
		return
	}

	if c.bar == nil || c.total != ev.Total {
		c.total = ev.Total
		c.bar = progressbar.NewOptions(ev.Total,
			progressbar.OptionSetWriter(c.out),
			progressbar.OptionSetDescription("Starting"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(c.out, "\n")
			}),
			progressbar.OptionSetRenderBlankState(true),
		)
	}

	if ev.File != "" {
		c.bar.Describe(ev.File)
	}
	_ = c.bar.Set(ev.Current)
}

func (c *Console) log(ev models.Event) {
	if c.bar != nil {
		_ = c.bar.Clear()
	}

	switch ev.Level {
	case models.LogLevelError:
		fmt.Fprintf(c.out, "ERROR %s\n", ev.Message)
	case models.LogLevelWarn:
		fmt.Fprintf(c.out, "WARN  %s\n", ev.Message)
	default:
		fmt.Fprintf(c.out, "%s\n", ev.Message)
	}
}

func (c *Console) finish() {
	if c.bar == nil {
		return
	}
	if !c.bar.IsFinished() {
		_ = c.bar.Finish()
	}
	c.bar = nil
	c.total = 0
}
