package domain

import "time"

// AgencyRole is a user's role within an agency.
type AgencyRole string

const (
	// AgencyRoleStaff may record, edit and delete ledger transactions.
	AgencyRoleStaff AgencyRole = "staff"

	// AgencyRoleMember has read-only access to the agency's ledgers.
	AgencyRoleMember AgencyRole = "member"
)

// IsValid checks if the role is recognized.
func (r AgencyRole) IsValid() bool {
	return r == AgencyRoleStaff || r == AgencyRoleMember
}

// CanRecord checks if the role may mutate ledger state.
func (r AgencyRole) CanRecord() bool {
	return r == AgencyRoleStaff
}

// AgencyUser is a user's membership in an agency.
type AgencyUser struct {
	ID        string
	UserID    string
	AgencyID  string
	Role      AgencyRole
	CreatedAt time.Time
}
