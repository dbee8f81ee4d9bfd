package appointments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/summitit/appointments/pkg/logging"
)

// Notifier receives lifecycle events for outbound customer email. Both
// methods are best-effort: implementations must never block the request or
// surface a failure to the handler.
type Notifier interface {
	AppointmentReceived(appt *Appointment)
	AppointmentConfirmed(appt *Appointment)
}

// Handler handles HTTP requests for appointments
type Handler struct {
	repo     Repository
	notifier Notifier
	logger   *logging.Logger
}

// NewHandler creates a new appointments handler
func NewHandler(repo Repository, notifier Notifier, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Create handles POST /appointments requests
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode appointment request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	appt, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		if IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to create appointment", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("appointment created", "id", appt.ID, "service_type", appt.ServiceType)
	if h.notifier != nil {
		h.notifier.AppointmentReceived(appt)
	}

	writeJSON(w, http.StatusOK, appt)
}

// List handles GET /appointments requests (admin only, guarded upstream)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	appts, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list appointments", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, appts)
}

// Update handles PUT /appointments/{id} requests (admin only, guarded upstream)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing appointment id", http.StatusBadRequest)
		return
	}

	var patch UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Error("failed to decode appointment patch", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	appt, err := h.repo.Update(r.Context(), id, &patch)
	if err != nil {
		switch {
		case IsValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrAppointmentNotFound):
			http.Error(w, "Appointment not found", http.StatusNotFound)
		default:
			h.logger.Error("failed to update appointment", "error", err, "id", id)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("appointment updated", "id", appt.ID, "status", appt.Status)
	if h.notifier != nil && patch.Status != nil && *patch.Status == StatusConfirmed {
		h.notifier.AppointmentConfirmed(appt)
	}

	writeJSON(w, http.StatusOK, appt)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
