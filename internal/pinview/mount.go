package pinview

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// mountTask is the one-shot command that gives the panel its initial focus.
// Closing the panel cancels it; a message that still slips through is
// dropped by Update because closed is checked there as well.
type mountTask struct {
	panelID string
	delay   time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
	closed  atomic.Bool
}

func newMountTask(panelID string, delay time.Duration) *mountTask {
	ctx, cancel := context.WithCancel(context.Background())
	return &mountTask{
		panelID: panelID,
		delay:   delay,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// cmd returns the command Init hands to the runtime
func (t *mountTask) cmd() tea.Cmd {
	return func() tea.Msg {
		if t.delay > 0 {
			timer := time.NewTimer(t.delay)
			defer timer.Stop()
			select {
			case <-t.ctx.Done():
				return nil
			case <-timer.C:
			}
		}
		if t.ctx.Err() != nil {
			return nil
		}
		return mountedMsg{panelID: t.panelID}
	}
}

// accepts reports whether a mounted message should still be applied
func (t *mountTask) accepts(msg mountedMsg) bool {
	return msg.panelID == t.panelID && !t.closed.Load()
}

func (t *mountTask) close() {
	t.closed.Store(true)
	t.cancel()
}
