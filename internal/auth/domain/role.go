package domain

// Role is the closed set of access levels. Comparisons go through Allows so
// the hierarchy lives in exactly one place.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

var roleRank = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperadmin: 3,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Allows reports whether an account holding r may perform an operation that
// requires at least required. Unknown roles never pass.
func (r Role) Allows(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	want, ok := roleRank[required]
	if !ok {
		return false
	}
	return have >= want
}

// DeriveInitialRole assigns the role for a newly registered account based on
// how many accounts already exist: the first account becomes superadmin, the
// second admin, everyone after that a regular user. The assignment happens
// once at creation and is never re-derived.
func DeriveInitialRole(existingCount int) Role {
	switch existingCount {
	case 0:
		return RoleSuperadmin
	case 1:
		return RoleAdmin
	default:
		return RoleUser
	}
}
