// Package templates exposes the document template catalog and generates
// draft documents from template files held in blob storage. Placeholder
// values are recorded with the generated draft; substitution inside the
// binary template itself is left to the editing workflow.
package templates

import (
	"github.com/akilimali/parapheur/internal/documents"
	"github.com/google/uuid"
)

// Template describes one generatable document model.
type Template struct {
	Name         string                 `json:"name"`
	DocumentType documents.DocumentType `json:"document_type"`
	StorageKey   string                 `json:"storage_key"`
	Placeholders []string               `json:"placeholders"`
	Available    bool                   `json:"available"`
}

// GenerateCommand contains the data required to generate a draft from a template.
type GenerateCommand struct {
	DocumentType documents.DocumentType `json:"document_type" validate:"required"`
	Title        string                 `json:"title" validate:"required"`
	Description  *string                `json:"description,omitempty"`
	Values       map[string]string      `json:"values,omitempty"`
	CreatedBy    uuid.UUID              `json:"-" validate:"required"`
}

var commonPlaceholders = []string{"{{date}}", "{{annee_academique}}"}

// catalog maps each document type to its template definition. Storage
// keys follow the templates/ prefix convention of the blob store.
var catalog = map[documents.DocumentType]Template{
	documents.TypeReleveNotes: {
		Name:         "Relevé de notes",
		DocumentType: documents.TypeReleveNotes,
		StorageKey:   "templates/releve_notes.pdf",
		Placeholders: append(commonPlaceholders, "{{nom_etudiant}}", "{{numero_etudiant}}", "{{faculte}}", "{{promotion}}"),
	},
	documents.TypeLettreHonoraires: {
		Name:         "Lettre d'honoraires",
		DocumentType: documents.TypeLettreHonoraires,
		StorageKey:   "templates/lettre_honoraires.pdf",
		Placeholders: append(commonPlaceholders, "{{nom_enseignant}}", "{{matiere}}", "{{heures}}", "{{montant}}"),
	},
	documents.TypePVConseil: {
		Name:         "Procès-verbal du conseil",
		DocumentType: documents.TypePVConseil,
		StorageKey:   "templates/pv_conseil.pdf",
		Placeholders: append(commonPlaceholders, "{{date_reunion}}", "{{participants}}", "{{ordre_jour}}"),
	},
	documents.TypeCorrespondance: {
		Name:         "Correspondance",
		DocumentType: documents.TypeCorrespondance,
		StorageKey:   "templates/correspondance.pdf",
		Placeholders: append(commonPlaceholders, "{{titre}}", "{{contenu}}"),
	},
}
