package workflow

import (
	"github.com/akilimali/parapheur/internal/documents"
	"github.com/google/uuid"
)

// ChainStatus is the overall chain state derived from the steps alone.
type ChainStatus string

const (
	ChainPending   ChainStatus = "pending"
	ChainCompleted ChainStatus = "completed"
	ChainRejected  ChainStatus = "rejected"
)

// View is the chain projection for a document: the ordered steps, the
// index of the active step, and the overall status derived from step
// states. DocumentStatus is the persisted document lifecycle status;
// the two agree except in the recoverable window between the last
// signature and successful finalization.
type View struct {
	DocumentID     uuid.UUID        `json:"document_id"`
	DocumentStatus documents.Status `json:"document_status"`
	CurrentStep    int              `json:"current_step"`
	ChainStatus    ChainStatus      `json:"chain_status"`
	Steps          []StepView       `json:"steps"`
}

func buildView(doc *documents.Document, steps []StepView) *View {
	current := len(steps)
	for i, step := range steps {
		if step.State == StepPending {
			current = i + 1
			break
		}
	}

	return &View{
		DocumentID:     doc.ID,
		DocumentStatus: doc.Status,
		CurrentStep:    current,
		ChainStatus:    deriveChainStatus(steps),
		Steps:          steps,
	}
}

func deriveChainStatus(steps []StepView) ChainStatus {
	if len(steps) == 0 {
		return ChainPending
	}

	allSigned := true
	for _, step := range steps {
		switch step.State {
		case StepRejected:
			return ChainRejected
		case StepSigned:
		default:
			allSigned = false
		}
	}

	if allSigned {
		return ChainCompleted
	}
	return ChainPending
}
