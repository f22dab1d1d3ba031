package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/services/auth"
)

// collection maps a role to its identity table. The four collections are
// disjoint; there is no cross-table uniqueness constraint.
var collections = map[models.Role]string{
	models.RoleSuperAdmin: "super_admins",
	models.RoleAdmin:      "admins",
	models.RoleDoctor:     "doctors",
	models.RolePatient:    "patients",
}

// IdentityRepo is the Postgres-backed credential store
type IdentityRepo struct {
	db *sqlx.DB
}

// NewIdentityRepo creates a new identity repository
func NewIdentityRepo(db *sqlx.DB) *IdentityRepo {
	return &IdentityRepo{db: db}
}

// GetByEmail looks up an identity in the collection matching role
func (r *IdentityRepo) GetByEmail(ctx context.Context, role models.Role, email string) (*models.Identity, error) {
	table, ok := collections[role]
	if !ok {
		return nil, fmt.Errorf("no identity collection for role %q", role)
	}

	switch role {
	case models.RoleDoctor:
		return r.getDoctorByField(ctx, "email", email)
	case models.RolePatient:
		return r.getPatientByField(ctx, "email", email)
	default:
		return r.getStaffByEmail(ctx, table, role, email)
	}
}

// getStaffByEmail reads the admin-shaped collections (super_admins, admins)
func (r *IdentityRepo) getStaffByEmail(ctx context.Context, table string, role models.Role, email string) (*models.Identity, error) {
	query := fmt.Sprintf(`
		SELECT id, email, full_name, password_hash, created_at, updated_at
		FROM %s
		WHERE email = $1
	`, table)

	var identity models.Identity
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&identity.ID,
		&identity.Email,
		&identity.FullName,
		&identity.PasswordHash,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s record: %w", table, err)
	}

	identity.Role = role
	return &identity, nil
}

func (r *IdentityRepo) getDoctorByField(ctx context.Context, field, value string) (*models.Identity, error) {
	query := fmt.Sprintf(`
		SELECT id, email, phone, full_name, password_hash, status, specialty, created_at, updated_at
		FROM doctors
		WHERE %s = $1
	`, field)

	var identity models.Identity
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&identity.ID,
		&identity.Email,
		&identity.Phone,
		&identity.FullName,
		&identity.PasswordHash,
		&identity.Status,
		&identity.Specialty,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	identity.Role = models.RoleDoctor
	return &identity, nil
}

func (r *IdentityRepo) getPatientByField(ctx context.Context, field, value string) (*models.Identity, error) {
	query := fmt.Sprintf(`
		SELECT id, email, phone, full_name, password_hash, created_at, updated_at
		FROM patients
		WHERE %s = $1
	`, field)

	var identity models.Identity
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&identity.ID,
		&identity.Email,
		&identity.Phone,
		&identity.FullName,
		&identity.PasswordHash,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	identity.Role = models.RolePatient
	return &identity, nil
}

// GetPatientByPhone retrieves a patient by phone number
func (r *IdentityRepo) GetPatientByPhone(ctx context.Context, phone string) (*models.Identity, error) {
	return r.getPatientByField(ctx, "phone", phone)
}

// GetDoctorByID retrieves a doctor by ID
func (r *IdentityRepo) GetDoctorByID(ctx context.Context, id uuid.UUID) (*models.Identity, error) {
	return r.getDoctorByField(ctx, "id", id.String())
}

// CreatePatient creates a new patient record
func (r *IdentityRepo) CreatePatient(ctx context.Context, patient *models.Identity) error {
	patient.ID = uuid.New()
	now := time.Now()
	patient.CreatedAt = now
	patient.UpdatedAt = now
	patient.Role = models.RolePatient

	query := `
		INSERT INTO patients (id, email, phone, full_name, password_hash, created_at, updated_at)
		VALUES (:id, :email, :phone, :full_name, :password_hash, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, patient)
	if err != nil {
		if isUniqueViolation(err) {
			return auth.ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to insert patient: %w", err)
	}

	return nil
}

// CreateDoctor creates a new doctor record. Status defaults to pending when
// the caller has not set one.
func (r *IdentityRepo) CreateDoctor(ctx context.Context, doctor *models.Identity) error {
	doctor.ID = uuid.New()
	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	doctor.Role = models.RoleDoctor
	if doctor.Status == "" {
		doctor.Status = models.DoctorStatusPending
	}

	query := `
		INSERT INTO doctors (id, email, phone, full_name, password_hash, status, specialty, created_at, updated_at)
		VALUES (:id, :email, :phone, :full_name, :password_hash, :status, :specialty, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, doctor)
	if err != nil {
		if isUniqueViolation(err) {
			return auth.ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to insert doctor: %w", err)
	}

	return nil
}

// UpdateDoctorStatus transitions a doctor's approval status, guarded on the
// expected current status so terminal states stay terminal under races.
func (r *IdentityRepo) UpdateDoctorStatus(ctx context.Context, id uuid.UUID, from, to models.DoctorStatus) error {
	query := `
		UPDATE doctors
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, to, time.Now(), id, from)
	if err != nil {
		return fmt.Errorf("failed to update doctor status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return auth.ErrInvalidTransition
	}

	return nil
}

// ListDoctorsByStatus lists doctors in the given approval status
func (r *IdentityRepo) ListDoctorsByStatus(ctx context.Context, status models.DoctorStatus) ([]*models.Identity, error) {
	query := `
		SELECT id, email, phone, full_name, password_hash, status, specialty, created_at, updated_at
		FROM doctors
		WHERE status = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer rows.Close()

	var doctors []*models.Identity
	for rows.Next() {
		var identity models.Identity
		if err := rows.Scan(
			&identity.ID,
			&identity.Email,
			&identity.Phone,
			&identity.FullName,
			&identity.PasswordHash,
			&identity.Status,
			&identity.Specialty,
			&identity.CreatedAt,
			&identity.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan doctor row: %w", err)
		}
		identity.Role = models.RoleDoctor
		doctors = append(doctors, &identity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate doctor rows: %w", err)
	}

	return doctors, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
