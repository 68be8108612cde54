package documents

import (
	"github.com/akilimali/parapheur/internal/profiles"
	"github.com/google/uuid"
)

// viewRoles maps each document type to the roles allowed to view it
// regardless of participation in its signature chain.
var viewRoles = map[DocumentType][]profiles.Role{
	TypeReleveNotes: {
		profiles.RoleSAF, profiles.RoleDoyen, profiles.RoleAppariteur, profiles.RoleComptable,
	},
	TypeLettreHonoraires: {
		profiles.RoleSAF, profiles.RoleDoyen, profiles.RoleSGAD, profiles.RoleSGAC,
		profiles.RoleAB, profiles.RoleRecteur, profiles.RoleCaissiere,
	},
	TypePVConseil: {
		profiles.RoleSAF, profiles.RoleDoyen, profiles.RoleSGAC, profiles.RoleRecteur,
	},
	TypeCorrespondance: {
		profiles.RoleSAF, profiles.RoleDoyen, profiles.RoleSGAC, profiles.RoleSGAD,
		profiles.RoleRecteur, profiles.RoleDircab,
	},
}

// Permissions describes what a user may do with a document.
type Permissions struct {
	CanView     bool `json:"can_view"`
	CanEdit     bool `json:"can_edit"`
	CanSign     bool `json:"can_sign"`
	CanDownload bool `json:"can_download"`
}

// HasViewRole reports whether a role may view documents of the given type.
func HasViewRole(role profiles.Role, documentType DocumentType) bool {
	for _, r := range viewRoles[documentType] {
		if r == role {
			return true
		}
	}
	return false
}

// EvaluatePermissions computes a user's permissions on a document from
// their role, ownership, and current-signer position.
func EvaluatePermissions(userID uuid.UUID, role profiles.Role, doc *Document) Permissions {
	isCreator := doc.CreatedBy == userID
	isCurrentSigner := doc.CurrentSigner != nil && *doc.CurrentSigner == userID
	hasViewRole := HasViewRole(role, doc.DocumentType)

	return Permissions{
		CanView:     isCreator || isCurrentSigner || hasViewRole,
		CanEdit:     isCreator && doc.Status == StatusDraft,
		CanSign:     isCurrentSigner && doc.Status == StatusPendingSignature,
		CanDownload: isCreator || hasViewRole,
	}
}
