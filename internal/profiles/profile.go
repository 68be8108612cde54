// Package profiles provides user profile management and acts as the role
// directory for the signature workflow: workflow steps are bound to
// concrete signers by resolving the active holders of a role here.
package profiles

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role identifies an administrative function within the faculty.
type Role string

// Administrative roles.
const (
	RoleSAF            Role = "saf"
	RoleAppariteur     Role = "appariteur"
	RoleLibraire       Role = "libraire"
	RoleComptable      Role = "comptable"
	RoleBibliothecaire Role = "bibliothecaire"
	RoleDoyen          Role = "doyen"
	RoleCP             Role = "cp"
	RoleSGAC           Role = "sgac"
	RoleSGAD           Role = "sgad"
	RoleAB             Role = "ab"
	RoleRecteur        Role = "recteur"
	RoleCaissiere      Role = "caissiere"
	RoleDircab         Role = "dircab"
	RoleReceptionniste Role = "receptionniste"
)

// Roles lists every supported role.
var Roles = []Role{
	RoleSAF,
	RoleAppariteur,
	RoleLibraire,
	RoleComptable,
	RoleBibliothecaire,
	RoleDoyen,
	RoleCP,
	RoleSGAC,
	RoleSGAD,
	RoleAB,
	RoleRecteur,
	RoleCaissiere,
	RoleDircab,
	RoleReceptionniste,
}

// Validate checks that the role is one of the supported roles.
func (r Role) Validate() error {
	for _, role := range Roles {
		if r == role {
			return nil
		}
	}
	return fmt.Errorf("unknown role: %s", r)
}

// Profile represents a user of the document management service.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the profile's full name for attestations and
// notification messages.
func (p *Profile) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// CreateCommand contains the data required to create a new profile.
type CreateCommand struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      Role   `json:"role" validate:"required"`
}

// UpdateCommand contains the fields that can be modified on an existing profile.
type UpdateCommand struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      Role   `json:"role" validate:"required"`
}
