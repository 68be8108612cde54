package documents_test

import (
	"net/url"
	"testing"

	"github.com/akilimali/parapheur/internal/documents"
	"github.com/google/uuid"
)

func TestFiltersFromQuery(t *testing.T) {
	creator := uuid.New()
	signer := uuid.New()

	t.Run("empty query", func(t *testing.T) {
		f := documents.FiltersFromQuery(url.Values{})
		if f.DocumentType != nil || f.Status != nil || f.CreatedBy != nil || f.CurrentSigner != nil {
			t.Errorf("FiltersFromQuery(empty) = %+v, want zero filters", f)
		}
	})

	t.Run("all parameters", func(t *testing.T) {
		values := url.Values{
			"type":       {"releve_notes"},
			"status":     {"pending_signature"},
			"created_by": {creator.String()},
			"signer":     {signer.String()},
		}

		f := documents.FiltersFromQuery(values)

		if f.DocumentType == nil || *f.DocumentType != documents.TypeReleveNotes {
			t.Errorf("DocumentType = %v, want releve_notes", f.DocumentType)
		}
		if f.Status == nil || *f.Status != documents.StatusPendingSignature {
			t.Errorf("Status = %v, want pending_signature", f.Status)
		}
		if f.CreatedBy == nil || *f.CreatedBy != creator {
			t.Errorf("CreatedBy = %v, want %s", f.CreatedBy, creator)
		}
		if f.CurrentSigner == nil || *f.CurrentSigner != signer {
			t.Errorf("CurrentSigner = %v, want %s", f.CurrentSigner, signer)
		}
	})

	t.Run("malformed ids ignored", func(t *testing.T) {
		values := url.Values{
			"created_by": {"not-a-uuid"},
			"signer":     {"also-not-a-uuid"},
		}

		f := documents.FiltersFromQuery(values)

		if f.CreatedBy != nil {
			t.Errorf("CreatedBy = %v, want nil for malformed id", f.CreatedBy)
		}
		if f.CurrentSigner != nil {
			t.Errorf("CurrentSigner = %v, want nil for malformed id", f.CurrentSigner)
		}
	})
}
