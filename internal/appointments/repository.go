package appointments

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for appointment storage
type Repository interface {
	Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error)
	List(ctx context.Context) ([]*Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, id string, patch *UpdateAppointmentRequest) (*Appointment, error)
}

// InMemoryRepository keeps appointments in process memory. Used in tests and
// when no DATABASE_URL is configured.
type InMemoryRepository struct {
	mu           sync.RWMutex
	appointments map[string]*Appointment
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		appointments: make(map[string]*Appointment),
	}
}

// Create stores a new appointment in the pending state.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	appt := &Appointment{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceType:   req.ServiceType,
		Location:      req.Location,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Description:   req.Description,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	r.mu.Lock()
	r.appointments[appt.ID] = appt
	r.mu.Unlock()

	return appt, nil
}

// List returns every stored appointment, newest first.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Appointment, 0, len(r.appointments))
	for _, appt := range r.appointments {
		cp := *appt
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID retrieves an appointment by id
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	cp := *appt
	return &cp, nil
}

// Update applies a partial patch to the stored record and bumps updated_at.
func (r *InMemoryRepository) Update(ctx context.Context, id string, patch *UpdateAppointmentRequest) (*Appointment, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	if patch.Status != nil {
		appt.Status = *patch.Status
	}
	if patch.AdminNotes != nil {
		appt.AdminNotes = *patch.AdminNotes
	}
	if patch.ConfirmedDate != nil {
		appt.ConfirmedDate = *patch.ConfirmedDate
	}
	if patch.ConfirmedTime != nil {
		appt.ConfirmedTime = *patch.ConfirmedTime
	}
	appt.UpdatedAt = time.Now().UTC()

	cp := *appt
	return &cp, nil
}
