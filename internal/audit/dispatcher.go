package audit

import (
	"sync"

	"go.uber.org/zap"
)

const (
	ActionLogin              = "session_login"
	ActionRegister           = "session_register"
	ActionGuest              = "session_guest"
	ActionLogout             = "session_logout"
	ActionProfileUpdated     = "profile_updated"
	ActionAppointmentCreated = "appointment_created"
	ActionAppointmentCancel  = "appointment_cancelled"
	ActionRewardRedeemed     = "reward_redeemed"
	ActionPaymentCaptured    = "payment_captured"
)

type Event struct {
	DeviceID string
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

const queueSize = 100

type Dispatcher struct {
	logger *Logger
	warn   *zap.Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		warn:   log,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(
			ev.DeviceID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.warn.Warn("audit error", zap.Error(err), zap.String("action", ev.Action))
		}
	}
}

// Dispatch never blocks. A full queue drops the event. A nil dispatcher
// ignores it.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.warn.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until the queued ones are written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

// Actor is who triggered an event.
type Actor struct {
	DeviceID string
	UserID   string
}

func (a Actor) Event(action, entity, entityID string, metadata any) Event {
	return Event{
		DeviceID: a.DeviceID,
		UserID:   a.UserID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	}
}
