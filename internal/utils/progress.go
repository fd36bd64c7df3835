package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"
)

// Progress wraps a single mpb bar that is only drawn on a terminal
type Progress struct {
	container   *mpb.Progress
	bar         *mpb.Bar
	enabled     bool

	mu          sync.Mutex
	description string
}

var descLength = 12

// NewProgress creates a progress bar for total steps, titled with title.
// The bar is a no-op when disabled or when stderr is not a terminal.
func NewProgress(total int, title string, enabled bool) *Progress {
	p := &Progress{enabled: enabled && isTerminal(os.Stderr)}
	if !p.enabled {
		return p
	}

	fmt.Fprintln(os.Stderr)

	p.container = mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithWidth(64),
		mpb.WithRefreshRate(100*time.Millisecond),
	)

	p.bar = p.container.New(int64(total),
		mpb.BarStyle().Lbound("[").Filler("█").Tip("█").Padding("░").Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(title, decor.WC{C: decor.DindentRight}),
			decor.Any(func(decor.Statistics) string {
				return p.shortDescription()
			}, decor.WC{W: descLength, C: decor.DindentRight}),
			decor.CountersNoUnit("%d/%d", decor.WC{C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	return p
}

// Enabled reports whether the bar is drawn
func (p *Progress) Enabled() bool {
	return p.enabled
}

// Update sets the current count and the description shown next to the bar
func (p *Progress) Update(current int, description string) {
	if !p.enabled {
		return
	}

	p.mu.Lock()
	p.description = description
	p.mu.Unlock()

	if p.bar != nil {
		p.bar.SetCurrent(int64(current))
	}
}

// shortDescription is read from the render goroutine
func (p *Progress) shortDescription() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.description) > descLength {
		return p.description[:descLength-2] + ".."
	}
	return p.description
}

// Finish completes the bar and waits for the final render
func (p *Progress) Finish() {
	if !p.enabled || p.container == nil {
		return
	}

	p.bar.SetTotal(-1, true)
	p.container.Wait()

	fmt.Fprintln(os.Stderr)
}

// isTerminal checks if w is a terminal (TTY)
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
