package enum

// Role is the upstream-assigned role of an authenticated user.
// The upstream serializes roles as plain strings, so the type stays
// string-backed rather than integer-backed.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleCashier Role = "Cashier"
)

// Valid reports whether the role is one the gateway knows how to route.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCashier
}

func (r Role) String() string {
	return string(r)
}
