package service

import (
	"bugbot/internal/core/port"
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	MinPollingInterval     = 10 * time.Second
	DefaultPollingInterval = 60 * time.Second
)

// ReminderPoller periodically scans the store for due reminders and fires
// one NotificationSession per hit. Ticks run on a fixed wall-clock cadence
// and never wait for sessions from earlier ticks to finish, so a single
// unresponsive user cannot stall the scheduler.
type ReminderPoller struct {
	scanner *DueScanner
	store   port.ReminderStore
	sender  port.DirectSender
	names   *NameResolver
	timeout time.Duration

	mu       sync.Mutex
	interval time.Duration
	stop     chan struct{}
}

func NewReminderPoller(store port.ReminderStore, sender port.DirectSender, names *NameResolver,
	responseTimeout time.Duration) *ReminderPoller {
	if responseTimeout <= 0 {
		responseTimeout = ResponseTimeout
	}

	return &ReminderPoller{
		scanner:  NewDueScanner(store),
		store:    store,
		sender:   sender,
		names:    names,
		timeout:  responseTimeout,
		interval: DefaultPollingInterval,
	}
}

// SetPollingInterval changes how often the store is polled. The interval is
// only changeable while polling is not active.
func (p *ReminderPoller) SetPollingInterval(interval time.Duration) {
	if interval < MinPollingInterval {
		log.Warn().
			Dur("interval", interval).
			Dur("minimum", MinPollingInterval).
			Msg("polling interval below minimum, keeping current interval")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		log.Warn().Msg("trying to change polling interval while polling is active, interval unchanged")
		return
	}

	p.interval = interval
}

func (p *ReminderPoller) PollingInterval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.interval
}

// StartPolling schedules one immediate poll and then recurring polls at the
// configured interval. Calling it while already polling does nothing.
func (p *ReminderPoller) StartPolling() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		return
	}

	p.stop = make(chan struct{})

	log.Info().Dur("interval", p.interval).Msg("starting reminder polling")
	go p.pollLoop(p.stop, p.interval)
}

// StopPolling cancels future ticks, including a still-pending immediate one.
// Sessions already in flight run to their own terminal state.
func (p *ReminderPoller) StopPolling() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop == nil {
		return
	}

	log.Info().Msg("stopping reminder polling")
	close(p.stop)
	p.stop = nil
}

func (p *ReminderPoller) pollLoop(stop <-chan struct{}, interval time.Duration) {
	select {
	case <-stop:
		return
	default:
	}

	p.pollForReminders()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.pollForReminders()
		case <-stop:
			return
		}
	}
}

func (p *ReminderPoller) pollForReminders() {
	ctx := context.Background()
	now := time.Now()

	log.Debug().Msg("looking for reminders that are due")

	due, err := p.scanner.Scan(ctx, now)
	if err != nil {
		log.Warn().Err(err).Msg("due reminder scan failed, skipping this tick")
		return
	}

	if len(due) == 0 {
		return
	}

	log.Info().Int("count", len(due)).Msg("found due reminders")

	for _, reminder := range due {
		session := NewNotificationSession(reminder, p.store, p.sender, p.names, p.timeout)

		// Sessions are not joined and outlive StopPolling.
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Interface("panic", r).
						Str("reminderId", reminder.ID).
						Msg("notification session panicked")
				}
			}()

			session.Run(context.Background())
		}()
	}
}
