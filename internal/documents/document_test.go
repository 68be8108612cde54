package documents_test

import (
	"testing"

	"github.com/akilimali/parapheur/internal/documents"
)

func TestDocumentType_Validate(t *testing.T) {
	for _, dt := range documents.DocumentTypes {
		if err := dt.Validate(); err != nil {
			t.Errorf("Validate(%s) failed: %v", dt, err)
		}
	}

	if err := documents.DocumentType("memo_interne").Validate(); err == nil {
		t.Error("Validate() accepted unknown document type")
	}
	if err := documents.DocumentType("").Validate(); err == nil {
		t.Error("Validate() accepted empty document type")
	}
}

func TestStatus_Terminal(t *testing.T) {
	tests := []struct {
		status documents.Status
		want   bool
	}{
		{documents.StatusDraft, false},
		{documents.StatusPendingSignature, false},
		{documents.StatusCompleted, true},
		{documents.StatusRejected, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %v, want %v", got, tt.want)
			}
		})
	}
}
