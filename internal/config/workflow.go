package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// EnvWorkflowAttestation overrides the default attestation text.
	EnvWorkflowAttestation = "WORKFLOW_ATTESTATION"

	// EnvWorkflowMissingSignerPolicy overrides the missing-signer policy.
	EnvWorkflowMissingSignerPolicy = "WORKFLOW_MISSING_SIGNER_POLICY"

	// EnvWorkflowDownloadRoles overrides the completion notification roles (comma-separated).
	EnvWorkflowDownloadRoles = "WORKFLOW_DOWNLOAD_ROLES"
)

// Missing-signer policy values. "omit" silently drops a chain step whose
// role has no active holder; "fail" rejects the submission instead.
const (
	MissingSignerOmit = "omit"
	MissingSignerFail = "fail"
)

// RoleCreator is the sentinel chain role substituted with the document
// creator's own role at workflow initialization.
const RoleCreator = "createur"

// ChainStep is one step of a configured signature chain.
type ChainStep struct {
	Role     string `toml:"role"`
	Optional bool   `toml:"optional,omitempty"`
}

// WorkflowConfig contains the signature workflow configuration. Chains
// map document types to their ordered approval steps; the configuration
// is loaded once at startup and treated as immutable afterwards.
type WorkflowConfig struct {
	Attestation         string                 `toml:"attestation"`
	MissingSignerPolicy string                 `toml:"missing_signer_policy"`
	DownloadRoles       []string               `toml:"download_roles"`
	Chains              map[string][]ChainStep `toml:"chains"`
}

// Finalize applies defaults, loads environment overrides, and validates the workflow configuration.
func (c *WorkflowConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.Attestation != "" {
		c.Attestation = overlay.Attestation
	}
	if overlay.MissingSignerPolicy != "" {
		c.MissingSignerPolicy = overlay.MissingSignerPolicy
	}
	if overlay.DownloadRoles != nil {
		c.DownloadRoles = overlay.DownloadRoles
	}
	if overlay.Chains != nil {
		c.Chains = overlay.Chains
	}
}

func (c *WorkflowConfig) loadDefaults() {
	if c.Attestation == "" {
		c.Attestation = "OK SIGNÉ"
	}
	if c.MissingSignerPolicy == "" {
		c.MissingSignerPolicy = MissingSignerOmit
	}
	if len(c.DownloadRoles) == 0 {
		c.DownloadRoles = []string{"saf", "appariteur", "receptionniste", "bibliothecaire"}
	}
	if c.Chains == nil {
		c.Chains = map[string][]ChainStep{
			"releve_notes": {
				{Role: RoleCreator},
				{Role: "libraire"},
				{Role: "comptable"},
				{Role: "bibliothecaire"},
				{Role: "doyen"},
			},
			"lettre_honoraires": {
				{Role: "cp", Optional: true},
				{Role: "doyen"},
				{Role: "sgac"},
			},
		}
	}
}

func (c *WorkflowConfig) loadEnv() {
	if v := os.Getenv(EnvWorkflowAttestation); v != "" {
		c.Attestation = v
	}
	if v := os.Getenv(EnvWorkflowMissingSignerPolicy); v != "" {
		c.MissingSignerPolicy = v
	}
	if v := os.Getenv(EnvWorkflowDownloadRoles); v != "" {
		roles := strings.Split(v, ",")
		c.DownloadRoles = make([]string, 0, len(roles))
		for _, role := range roles {
			if trimmed := strings.TrimSpace(role); trimmed != "" {
				c.DownloadRoles = append(c.DownloadRoles, trimmed)
			}
		}
	}
}

func (c *WorkflowConfig) validate() error {
	switch c.MissingSignerPolicy {
	case MissingSignerOmit, MissingSignerFail:
	default:
		return fmt.Errorf("invalid missing_signer_policy: %s (must be omit or fail)", c.MissingSignerPolicy)
	}

	for docType, steps := range c.Chains {
		if len(steps) == 0 {
			return fmt.Errorf("chain for %s has no steps", docType)
		}
		for i, step := range steps {
			if step.Role == "" {
				return fmt.Errorf("chain for %s: step %d has no role", docType, i+1)
			}
		}
	}

	return nil
}
