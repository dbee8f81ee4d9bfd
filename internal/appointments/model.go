package appointments

import (
	"strings"
	"time"
)

// Appointment statuses. Status is a closed set: updates carrying any other
// value are rejected before they reach the store.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment is a customer service request tracked through
// pending/confirmed/completed/cancelled states.
type Appointment struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceType   string    `json:"service_type"`
	Location      string    `json:"location"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	AdminNotes    string    `json:"admin_notes"`
	ConfirmedDate string    `json:"confirmed_date,omitempty"`
	ConfirmedTime string    `json:"confirmed_time,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DisplayDate returns the confirmed date when set, otherwise the
// requester's preferred date.
func (a *Appointment) DisplayDate() string {
	if a.ConfirmedDate != "" {
		return a.ConfirmedDate
	}
	return a.PreferredDate
}

// DisplayTime returns the confirmed time when set, otherwise the
// requester's preferred time.
func (a *Appointment) DisplayTime() string {
	if a.ConfirmedTime != "" {
		return a.ConfirmedTime
	}
	return a.PreferredTime
}

// CreateAppointmentRequest represents the public booking request body
type CreateAppointmentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ServiceType   string `json:"service_type"`
	Location      string `json:"location"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Description   string `json:"description"`
}

// Validate checks that every required field is present and non-empty.
// Description is the only optional field.
func (r *CreateAppointmentRequest) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"service_type", r.ServiceType},
		{"location", r.Location},
		{"preferred_date", r.PreferredDate},
		{"preferred_time", r.PreferredTime},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// UpdateAppointmentRequest is the admin partial-update body. Nil fields are
// left untouched on the stored record.
type UpdateAppointmentRequest struct {
	Status        *string `json:"status"`
	AdminNotes    *string `json:"admin_notes"`
	ConfirmedDate *string `json:"confirmed_date"`
	ConfirmedTime *string `json:"confirmed_time"`
}

// Validate rejects unrecognized status values. Date and time stay free-form
// strings, matching the booking form contract.
func (r *UpdateAppointmentRequest) Validate() error {
	if r.Status == nil {
		return nil
	}
	switch *r.Status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return nil
	}
	return ErrInvalidStatus
}
