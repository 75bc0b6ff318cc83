package session

import (
	"time"

	"github.com/ratel-online/uno/uno/game"
)

// deadlineKey identifies the decision a deadline waits for. A deadline whose key no longer
// matches the game has been overtaken by player input and is ignored when it fires.
type deadlineKey struct {
	phase         game.Phase
	turnID        int
	awaitingColor bool
}

type deadline struct {
	key   deadlineKey
	timer *time.Timer
}

// schedule arms a timer that reports key on fired unless done closes first.
func schedule(key deadlineKey, after time.Duration, fired chan<- deadlineKey, done <-chan struct{}) *deadline {
	return &deadline{
		key: key,
		timer: time.AfterFunc(after, func() {
			select {
			case fired <- key:
			case <-done:
			}
		}),
	}
}

func (d *deadline) stop() {
	if d != nil {
		d.timer.Stop()
	}
}
