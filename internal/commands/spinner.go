package commands

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	spinInterval = 80 * time.Millisecond
	hideCursor   = "\033[?25l"
	showCursor   = "\033[?25h"
	clearLine    = "\r\033[K"
)

var spinGlyphs = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// spinner redraws a one-line busy indicator on w until halted
type spinner struct {
	w     io.Writer
	label string

	once sync.Once
	quit chan struct{}
	done chan struct{}
}

func newSpinner(w io.Writer, label string) *spinner {
	return &spinner{
		w:     w,
		label: label,
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (s *spinner) start() {
	go s.run()
}

func (s *spinner) run() {
	defer close(s.done)

	fmt.Fprint(s.w, hideCursor)
	ticker := time.NewTicker(spinInterval)
	defer ticker.Stop()

	for n := 0; ; n++ {
		select {
		case <-s.quit:
			fmt.Fprint(s.w, clearLine+showCursor)
			return
		case <-ticker.C:
			fmt.Fprint(s.w, clearLine+s.frame(n))
		}
	}
}

// frame renders animation step n
func (s *spinner) frame(n int) string {
	color := spinColors[n%len(spinColors)]
	glyph := lipgloss.NewStyle().Foreground(color).Bold(true).Render(spinGlyphs[n%len(spinGlyphs)])

	lit := (n / 3) % 4
	dots := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("●", lit)) +
		lipgloss.NewStyle().Foreground(colorTextMute).Render(strings.Repeat("○", 3-lit))

	return glyph + " " + lipgloss.NewStyle().Foreground(colorText).Render(s.label) + " " + dots
}

// halt stops the animation and waits until its line is cleared.
// Only valid after start; repeated calls return immediately.
func (s *spinner) halt() {
	s.once.Do(func() { close(s.quit) })
	<-s.done
}
