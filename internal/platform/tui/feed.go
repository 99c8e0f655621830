package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geomerge/internal/location"
)

// sampleMsg carries one location sample into the Bubble Tea loop,
// tagged with the channel it came from.
type sampleMsg struct {
	sample location.Sample
	ch     <-chan location.Sample
}

// feedClosedMsg signals that a feed channel closed (subscription ended).
// It carries the channel so a stale close from a previous subscription
// cannot be mistaken for the current one.
type feedClosedMsg struct {
	ch <-chan location.Sample
}

// startWalkMsg asks the model to enable walk mode on startup.
type startWalkMsg struct{}

// waitForSample returns a command that blocks on the next feed sample.
// Bubble Tea runs it off the UI goroutine, so the model itself stays
// single-threaded: samples enter the game as ordinary messages.
func waitForSample(ch <-chan location.Sample) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return feedClosedMsg{ch: ch}
		}
		return sampleMsg{sample: s, ch: ch}
	}
}
