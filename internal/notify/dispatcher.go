package notify

import (
	"context"
	"sync"
	"time"

	"github.com/summitit/appointments/internal/appointments"
	"github.com/summitit/appointments/internal/observability/metrics"
	"github.com/summitit/appointments/pkg/logging"
)

// sendTimeout bounds a single outbound email so a slow provider cannot pile
// up goroutines.
const sendTimeout = 10 * time.Second

// Dispatcher sends appointment lifecycle email off the request path.
// Dispatch failures are logged and swallowed: a notification must never fail
// the booking or confirmation that triggered it.
type Dispatcher struct {
	sender       EmailSender
	contactEmail string
	metrics      *metrics.EmailMetrics
	logger       *logging.Logger

	wg sync.WaitGroup
}

// NewDispatcher creates a notification dispatcher.
func NewDispatcher(sender EmailSender, contactEmail string, m *metrics.EmailMetrics, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	if sender == nil {
		sender = NewStubEmailSender(logger)
	}
	return &Dispatcher{
		sender:       sender,
		contactEmail: contactEmail,
		metrics:      m,
		logger:       logger,
	}
}

// AppointmentReceived sends the "request received" email to the requester.
// Fire-and-forget.
func (d *Dispatcher) AppointmentReceived(appt *appointments.Appointment) {
	d.dispatch("request_received", requestReceivedEmail(appt, d.contactEmail))
}

// AppointmentConfirmed sends the confirmation email to the requester.
// Fire-and-forget. This is also the integration point for any future
// calendar booking side effect.
func (d *Dispatcher) AppointmentConfirmed(appt *appointments.Appointment) {
	d.dispatch("confirmed", confirmationEmail(appt, d.contactEmail))
}

func (d *Dispatcher) dispatch(event string, msg EmailMessage) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := d.sender.Send(ctx, msg); err != nil {
			d.logger.Error("notification dispatch failed", "event", event, "to", msg.To, "error", err)
			d.metrics.ObserveDispatch(event, "error")
			return
		}
		d.metrics.ObserveDispatch(event, "ok")
	}()
}

// Wait blocks until all in-flight dispatches finish. Used during shutdown
// and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Ensure interface compliance
var _ appointments.Notifier = (*Dispatcher)(nil)
