package documents_test

import (
	"testing"

	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/internal/profiles"
	"github.com/google/uuid"
)

func TestHasViewRole(t *testing.T) {
	tests := []struct {
		name string
		role profiles.Role
		typ  documents.DocumentType
		want bool
	}{
		{"saf views releve_notes", profiles.RoleSAF, documents.TypeReleveNotes, true},
		{"comptable views releve_notes", profiles.RoleComptable, documents.TypeReleveNotes, true},
		{"caissiere does not view releve_notes", profiles.RoleCaissiere, documents.TypeReleveNotes, false},
		{"caissiere views lettre_honoraires", profiles.RoleCaissiere, documents.TypeLettreHonoraires, true},
		{"appariteur does not view lettre_honoraires", profiles.RoleAppariteur, documents.TypeLettreHonoraires, false},
		{"recteur views pv_conseil", profiles.RoleRecteur, documents.TypePVConseil, true},
		{"dircab views correspondance", profiles.RoleDircab, documents.TypeCorrespondance, true},
		{"dircab does not view pv_conseil", profiles.RoleDircab, documents.TypePVConseil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := documents.HasViewRole(tt.role, tt.typ); got != tt.want {
				t.Errorf("HasViewRole(%s, %s) = %v, want %v", tt.role, tt.typ, got, tt.want)
			}
		})
	}
}

func TestEvaluatePermissions(t *testing.T) {
	creator := uuid.New()
	signer := uuid.New()
	stranger := uuid.New()

	doc := func(status documents.Status, current *uuid.UUID) *documents.Document {
		return &documents.Document{
			ID:            uuid.New(),
			DocumentType:  documents.TypeReleveNotes,
			Status:        status,
			CurrentSigner: current,
			CreatedBy:     creator,
		}
	}

	tests := []struct {
		name   string
		userID uuid.UUID
		role   profiles.Role
		doc    *documents.Document
		want   documents.Permissions
	}{
		{
			"creator on own draft",
			creator,
			profiles.RoleLibraire,
			doc(documents.StatusDraft, nil),
			documents.Permissions{CanView: true, CanEdit: true, CanSign: false, CanDownload: true},
		},
		{
			"creator after submission",
			creator,
			profiles.RoleLibraire,
			doc(documents.StatusPendingSignature, &signer),
			documents.Permissions{CanView: true, CanEdit: false, CanSign: false, CanDownload: true},
		},
		{
			"current signer",
			signer,
			profiles.RoleLibraire,
			doc(documents.StatusPendingSignature, &signer),
			documents.Permissions{CanView: true, CanEdit: false, CanSign: true, CanDownload: false},
		},
		{
			"former signer after completion",
			signer,
			profiles.RoleLibraire,
			doc(documents.StatusCompleted, nil),
			documents.Permissions{CanView: false, CanEdit: false, CanSign: false, CanDownload: false},
		},
		{
			"view role holder",
			stranger,
			profiles.RoleDoyen,
			doc(documents.StatusPendingSignature, &signer),
			documents.Permissions{CanView: true, CanEdit: false, CanSign: false, CanDownload: true},
		},
		{
			"unrelated user",
			stranger,
			profiles.RoleCaissiere,
			doc(documents.StatusPendingSignature, &signer),
			documents.Permissions{},
		},
		{
			"creator cannot sign own pending document unless bound",
			creator,
			profiles.RoleLibraire,
			doc(documents.StatusPendingSignature, &signer),
			documents.Permissions{CanView: true, CanEdit: false, CanSign: false, CanDownload: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := documents.EvaluatePermissions(tt.userID, tt.role, tt.doc)
			if got != tt.want {
				t.Errorf("EvaluatePermissions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEvaluatePermissions_SignerWhoCreated(t *testing.T) {
	// A creator bound as current signer can both edit nothing and sign.
	user := uuid.New()
	doc := &documents.Document{
		DocumentType:  documents.TypeReleveNotes,
		Status:        documents.StatusPendingSignature,
		CurrentSigner: &user,
		CreatedBy:     user,
	}

	got := documents.EvaluatePermissions(user, profiles.RoleSAF, doc)
	want := documents.Permissions{CanView: true, CanEdit: false, CanSign: true, CanDownload: true}
	if got != want {
		t.Errorf("EvaluatePermissions() = %+v, want %+v", got, want)
	}
}
