package user

type Role string

const (
	RoleBusinessOwner Role = "BUSINESS_OWNER"
	RoleCustomer      Role = "CUSTOMER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleBusinessOwner, RoleCustomer:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
