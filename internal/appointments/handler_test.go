package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/summitit/appointments/pkg/logging"
)

// recordingNotifier captures dispatched lifecycle events.
type recordingNotifier struct {
	mu        sync.Mutex
	received  []string
	confirmed []string
}

func (n *recordingNotifier) AppointmentReceived(appt *Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.received = append(n.received, appt.ID)
}

func (n *recordingNotifier) AppointmentConfirmed(appt *Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmed = append(n.confirmed, appt.ID)
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := NewInMemoryRepository()
	notifier := &recordingNotifier{}
	handler := NewHandler(repo, notifier, logging.Default())

	body, _ := json.Marshal(validCreateRequest())
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var appt Appointment
	if err := json.NewDecoder(w.Body).Decode(&appt); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if appt.Status != StatusPending {
		t.Errorf("status = %q, want pending", appt.Status)
	}
	if appt.Name != "John Smith" {
		t.Errorf("name = %q, want John Smith", appt.Name)
	}
	if len(notifier.received) != 1 || notifier.received[0] != appt.ID {
		t.Errorf("expected one request-received notification for %s, got %v", appt.ID, notifier.received)
	}
}

func TestCreateAppointment_MissingField(t *testing.T) {
	repo := NewInMemoryRepository()
	notifier := &recordingNotifier{}
	handler := NewHandler(repo, notifier, logging.Default())

	body, _ := json.Marshal(map[string]string{
		"name":  "Test User",
		"email": "test@test.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if len(notifier.received) != 0 {
		t.Error("notification dispatched for a rejected booking")
	}
	appts, _ := repo.List(context.Background())
	if len(appts) != 0 {
		t.Errorf("store has %d records after rejected booking, want 0", len(appts))
	}
}

func TestCreateAppointment_InvalidJSON(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), nil, logging.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader("{"))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestListAppointments(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, nil, logging.Default())

	created, err := repo.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var appts []Appointment
	if err := json.NewDecoder(w.Body).Decode(&appts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(appts) != 1 || appts[0].ID != created.ID {
		t.Errorf("expected the seeded appointment, got %v", appts)
	}
}

func newUpdateRequest(t *testing.T, id string, patch any) *http.Request {
	t.Helper()
	body, _ := json.Marshal(patch)
	req := httptest.NewRequest(http.MethodPut, "/api/appointments/"+id, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateAppointment_Confirm(t *testing.T) {
	repo := NewInMemoryRepository()
	notifier := &recordingNotifier{}
	handler := NewHandler(repo, notifier, logging.Default())

	created, err := repo.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	w := httptest.NewRecorder()
	handler.Update(w, newUpdateRequest(t, created.ID, map[string]string{
		"status":         StatusConfirmed,
		"admin_notes":    "Confirmed for next week",
		"confirmed_date": "2024-01-15",
		"confirmed_time": "10:00",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var appt Appointment
	if err := json.NewDecoder(w.Body).Decode(&appt); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if appt.Status != StatusConfirmed {
		t.Errorf("status = %q, want confirmed", appt.Status)
	}
	if appt.AdminNotes != "Confirmed for next week" {
		t.Errorf("admin_notes = %q", appt.AdminNotes)
	}
	if len(notifier.confirmed) != 1 || notifier.confirmed[0] != created.ID {
		t.Errorf("expected one confirmation notification, got %v", notifier.confirmed)
	}
}

func TestUpdateAppointment_NonConfirmingPatchSendsNothing(t *testing.T) {
	repo := NewInMemoryRepository()
	notifier := &recordingNotifier{}
	handler := NewHandler(repo, notifier, logging.Default())

	created, err := repo.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	w := httptest.NewRecorder()
	handler.Update(w, newUpdateRequest(t, created.ID, map[string]string{"admin_notes": "called the customer"}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if len(notifier.confirmed) != 0 {
		t.Error("confirmation notification sent for a notes-only patch")
	}
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), nil, logging.Default())

	w := httptest.NewRecorder()
	handler.Update(w, newUpdateRequest(t, "does-not-exist", map[string]string{"status": StatusCancelled}))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestUpdateAppointment_RejectsUnknownStatus(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, nil, logging.Default())

	created, err := repo.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	w := httptest.NewRecorder()
	handler.Update(w, newUpdateRequest(t, created.ID, map[string]string{"status": "approved"}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
