package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the flat role enumeration used for access checks. Roles are
// independent surfaces; there is no implied hierarchy between them.
type Role string

const (
	RoleSuperAdmin    Role = "superadmin"
	RoleAdmin         Role = "admin"
	RoleDoctor        Role = "doctor"
	RolePendingDoctor Role = "pending_doctor"
	RolePatient       Role = "patient"
)

// LoginRoles are the roles a caller may claim on the password login endpoint.
// RolePendingDoctor is never claimable; it is derived from doctor status.
var LoginRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleDoctor, RolePatient}

// IsLoginRole reports whether r can be claimed on a login request.
func IsLoginRole(r Role) bool {
	for _, lr := range LoginRoles {
		if r == lr {
			return true
		}
	}
	return false
}

// DoctorStatus is the approval state of a doctor record.
type DoctorStatus string

const (
	DoctorStatusPending  DoctorStatus = "pending"
	DoctorStatusApproved DoctorStatus = "approved"
	DoctorStatusRejected DoctorStatus = "rejected"
)

// ApprovalDecision is an admin action on a pending doctor.
type ApprovalDecision string

const (
	DecisionApprove ApprovalDecision = "approve"
	DecisionReject  ApprovalDecision = "reject"
)

// Identity is one record in a role collection. The four collections
// (super_admins, admins, doctors, patients) share this shape; fields that a
// collection does not carry stay zero. Uniqueness of Email/Phone is enforced
// per collection, not globally.
type Identity struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	Email        string       `json:"email" db:"email"`
	Phone        string       `json:"phone,omitempty" db:"phone"`
	FullName     string       `json:"full_name" db:"full_name"`
	PasswordHash string       `json:"-" db:"password_hash"`
	Role         Role         `json:"role" db:"-"`
	Status       DoctorStatus `json:"status,omitempty" db:"status"`
	Specialty    string       `json:"specialty,omitempty" db:"specialty"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// SessionRole returns the role claim a token minted for this identity must
// carry. Doctor records map through their approval status so an unapproved
// doctor can never hold a doctor-role token.
func (i *Identity) SessionRole() Role {
	if i.Role == RoleDoctor && i.Status != DoctorStatusApproved {
		return RolePendingDoctor
	}
	return i.Role
}
