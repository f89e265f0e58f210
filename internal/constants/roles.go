package constants

import (
	"database/sql/driver"
	"fmt"
)

// Role mirrors the Postgres ENUM 'user_role'
type Role string

const (
	RolePastor    Role = "pastor"
	RoleTreasurer Role = "treasurer"
	RoleDeacon    Role = "deacon"
	RoleMember    Role = "member"
	RoleVisitor   Role = "visitor"
)

// Stringer for fmt and logs
func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePastor, RoleTreasurer, RoleDeacon, RoleMember, RoleVisitor:
		return true
	}
	return false
}

// In reports whether r is contained in allowed.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

/* ---------- DB adapters so GORM (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
