package sender

import (
	"bugbot/internal/core/domain"
	"sync"
)

type pendingWait struct {
	userID int64
	ch     chan domain.Response
}

// pendingResponses tracks delivered prompts whose interactive response has
// not arrived yet. Each wait resolves at most once.
type pendingResponses struct {
	mu    sync.Mutex
	waits map[domain.MessageHandle]*pendingWait
}

func newPendingResponses() *pendingResponses {
	return &pendingResponses{waits: make(map[domain.MessageHandle]*pendingWait)}
}

func (p *pendingResponses) add(handle domain.MessageHandle, userID int64) *pendingWait {
	wait := &pendingWait{userID: userID, ch: make(chan domain.Response, 1)}

	p.mu.Lock()
	p.waits[handle] = wait
	p.mu.Unlock()

	return wait
}

func (p *pendingResponses) remove(handle domain.MessageHandle) {
	p.mu.Lock()
	delete(p.waits, handle)
	p.mu.Unlock()
}

// resolve routes a button press to the wait registered for its message.
// Presses by anyone but the wait's target user, or on messages nobody is
// waiting on, are ignored and leave the wait pending.
func (p *pendingResponses) resolve(handle domain.MessageHandle, userID int64, optionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	wait, ok := p.waits[handle]
	if !ok || wait.userID != userID {
		return false
	}

	delete(p.waits, handle)
	wait.ch <- domain.Response{OptionID: optionID, UserID: userID}

	return true
}
