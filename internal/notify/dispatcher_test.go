package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/summitit/appointments/internal/appointments"
	"github.com/summitit/appointments/pkg/logging"
)

// captureSender records every message it is asked to send.
type captureSender struct {
	mu   sync.Mutex
	sent []EmailMessage
	err  error
}

func (s *captureSender) Send(ctx context.Context, msg EmailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *captureSender) messages() []EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]EmailMessage(nil), s.sent...)
}

func sampleAppointment() *appointments.Appointment {
	now := time.Now().UTC()
	return &appointments.Appointment{
		ID:            "a-1",
		Name:          "John Smith",
		Email:         "john@x.com",
		Phone:         "555-0123",
		ServiceType:   "PC Repair",
		Location:      "Downtown",
		PreferredDate: "2024-01-15",
		PreferredTime: "10:00",
		Status:        appointments.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestAppointmentReceived(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, "support@summitit.com", nil, logging.Default())

	d.AppointmentReceived(sampleAppointment())
	d.Wait()

	msgs := sender.messages()
	if len(msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(msgs))
	}
	msg := msgs[0]
	if msg.To != "john@x.com" {
		t.Errorf("To = %q", msg.To)
	}
	if !strings.Contains(msg.Subject, "New Appointment Request") {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "PC Repair") || !strings.Contains(msg.Body, "2024-01-15") {
		t.Error("body missing appointment details")
	}
	if !strings.Contains(msg.Body, "support@summitit.com") {
		t.Error("body missing contact email")
	}
	if msg.HTML == "" {
		t.Error("expected an HTML body")
	}
}

func TestAppointmentConfirmed_PrefersConfirmedSlot(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, "support@summitit.com", nil, logging.Default())

	appt := sampleAppointment()
	appt.Status = appointments.StatusConfirmed
	appt.ConfirmedDate = "2024-01-20"
	appt.ConfirmedTime = "14:00"
	appt.AdminNotes = "bring the old router"

	d.AppointmentConfirmed(appt)
	d.Wait()

	msgs := sender.messages()
	if len(msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(msgs))
	}
	msg := msgs[0]
	if !strings.Contains(msg.Subject, "2024-01-20") {
		t.Errorf("subject should carry the confirmed date, got %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "14:00") {
		t.Error("body should carry the confirmed time")
	}
	if !strings.Contains(msg.Body, "bring the old router") {
		t.Error("body should include admin notes when present")
	}
}

func TestAppointmentConfirmed_FallsBackToPreferredSlot(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, "support@summitit.com", nil, logging.Default())

	appt := sampleAppointment()
	appt.Status = appointments.StatusConfirmed

	d.AppointmentConfirmed(appt)
	d.Wait()

	msgs := sender.messages()
	if len(msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0].Subject, "2024-01-15") {
		t.Errorf("subject should fall back to the preferred date, got %q", msgs[0].Subject)
	}
}

func TestDispatchFailureIsSwallowed(t *testing.T) {
	sender := &captureSender{err: errors.New("provider down")}
	d := NewDispatcher(sender, "support@summitit.com", nil, logging.Default())

	// Must not panic or surface anything to the caller.
	d.AppointmentReceived(sampleAppointment())
	d.Wait()

	if len(sender.messages()) != 0 {
		t.Error("no message should have been recorded on failure")
	}
}

func TestNilSenderDefaultsToStub(t *testing.T) {
	d := NewDispatcher(nil, "support@summitit.com", nil, logging.Default())
	d.AppointmentReceived(sampleAppointment())
	d.Wait()
}
