package models

// ApprovalState tracks a single sign-off decision on a team
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// IsValid checks if the ApprovalState is valid
func (s ApprovalState) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// ApprovalType selects which sign-off field an approval call targets
type ApprovalType string

const (
	ApprovalTypeManager  ApprovalType = "manager"
	ApprovalTypeDirector ApprovalType = "director"
)

// IsValid checks if the ApprovalType is valid
func (t ApprovalType) IsValid() bool {
	switch t {
	case ApprovalTypeManager, ApprovalTypeDirector:
		return true
	}
	return false
}

// Gender is the member gender enum
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// IsValid checks if the Gender is valid
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// UserRole represents the role of an authenticated user
type UserRole string

const (
	RoleManager  UserRole = "manager"
	RoleDirector UserRole = "director"
	RoleMember   UserRole = "member"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleManager, RoleDirector, RoleMember:
		return true
	}
	return false
}

// CanApprove reports whether the role may change approval state
func (r UserRole) CanApprove() bool {
	return r == RoleManager || r == RoleDirector
}
