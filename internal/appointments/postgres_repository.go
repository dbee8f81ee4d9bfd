package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// appointmentsDB defines the database interface needed by PostgresRepository
type appointmentsDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores appointments in the relational database.
type PostgresRepository struct {
	db appointmentsDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("appointments: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db appointmentsDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const appointmentColumns = `id, name, email, phone, service_type, location,
	preferred_date, preferred_time, description, status, admin_notes,
	confirmed_date, confirmed_time, created_at, updated_at`

// Create inserts a new pending appointment row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	query := `
		INSERT INTO appointments (id, name, email, phone, service_type, location,
			preferred_date, preferred_time, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING created_at, updated_at
	`
	appt := &Appointment{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceType:   req.ServiceType,
		Location:      req.Location,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Description:   req.Description,
		Status:        StatusPending,
	}
	if err := r.db.QueryRow(ctx, query,
		id,
		req.Name,
		req.Email,
		req.Phone,
		req.ServiceType,
		req.Location,
		req.PreferredDate,
		req.PreferredTime,
		req.Description,
		StatusPending,
		now,
	).Scan(&appt.CreatedAt, &appt.UpdatedAt); err != nil {
		return nil, fmt.Errorf("appointments: insert failed: %w", err)
	}

	return appt, nil
}

// List returns every appointment in the store.
func (r *PostgresRepository) List(ctx context.Context) ([]*Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("appointments: select failed: %w", err)
	}
	defer rows.Close()

	out := []*Appointment{}
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("appointments: scan failed: %w", err)
		}
		out = append(out, appt)
	}
	return out, rows.Err()
}

// GetByID fetches a single appointment.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	appt, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("appointments: select failed: %w", err)
	}
	return appt, nil
}

// Update applies the non-nil patch fields and bumps updated_at. Returns
// ErrAppointmentNotFound when no row matches the id. Concurrent updates to
// the same id race with last-write-wins semantics.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch *UpdateAppointmentRequest) (*Appointment, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	set := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}
	add := func(column string, value string) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.AdminNotes != nil {
		add("admin_notes", *patch.AdminNotes)
	}
	if patch.ConfirmedDate != nil {
		add("confirmed_date", *patch.ConfirmedDate)
	}
	if patch.ConfirmedTime != nil {
		add("confirmed_time", *patch.ConfirmedTime)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE appointments SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), appointmentColumns)

	appt, err := scanAppointment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("appointments: update failed: %w", err)
	}
	return appt, nil
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var appt Appointment
	if err := row.Scan(
		&appt.ID,
		&appt.Name,
		&appt.Email,
		&appt.Phone,
		&appt.ServiceType,
		&appt.Location,
		&appt.PreferredDate,
		&appt.PreferredTime,
		&appt.Description,
		&appt.Status,
		&appt.AdminNotes,
		&appt.ConfirmedDate,
		&appt.ConfirmedTime,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &appt, nil
}

// Ensure both repositories satisfy the storage contract
var (
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*InMemoryRepository)(nil)
)
