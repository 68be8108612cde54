package config_test

import (
	"strings"
	"testing"

	"github.com/akilimali/parapheur/internal/config"
)

func TestWorkflowConfig_Defaults(t *testing.T) {
	cfg := &config.WorkflowConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Attestation != "OK SIGNÉ" {
		t.Errorf("Attestation = %q, want default", cfg.Attestation)
	}
	if cfg.MissingSignerPolicy != config.MissingSignerOmit {
		t.Errorf("MissingSignerPolicy = %q, want omit", cfg.MissingSignerPolicy)
	}

	wantRoles := []string{"saf", "appariteur", "receptionniste", "bibliothecaire"}
	if len(cfg.DownloadRoles) != len(wantRoles) {
		t.Fatalf("DownloadRoles = %v, want %v", cfg.DownloadRoles, wantRoles)
	}
	for i, role := range wantRoles {
		if cfg.DownloadRoles[i] != role {
			t.Errorf("DownloadRoles[%d] = %q, want %q", i, cfg.DownloadRoles[i], role)
		}
	}

	releve, ok := cfg.Chains["releve_notes"]
	if !ok {
		t.Fatal("default chains missing releve_notes")
	}
	if len(releve) != 5 {
		t.Errorf("releve_notes chain = %d steps, want 5", len(releve))
	}
	if releve[0].Role != config.RoleCreator {
		t.Errorf("releve_notes first role = %q, want createur sentinel", releve[0].Role)
	}

	honoraires, ok := cfg.Chains["lettre_honoraires"]
	if !ok {
		t.Fatal("default chains missing lettre_honoraires")
	}
	if len(honoraires) != 3 {
		t.Errorf("lettre_honoraires chain = %d steps, want 3", len(honoraires))
	}
	if !honoraires[0].Optional {
		t.Error("lettre_honoraires cp step not optional")
	}
}

func TestWorkflowConfig_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvWorkflowAttestation, "VU ET APPROUVÉ")
	t.Setenv(config.EnvWorkflowMissingSignerPolicy, config.MissingSignerFail)
	t.Setenv(config.EnvWorkflowDownloadRoles, "saf, doyen ,sgac")

	cfg := &config.WorkflowConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Attestation != "VU ET APPROUVÉ" {
		t.Errorf("Attestation = %q, want env override", cfg.Attestation)
	}
	if cfg.MissingSignerPolicy != config.MissingSignerFail {
		t.Errorf("MissingSignerPolicy = %q, want fail", cfg.MissingSignerPolicy)
	}
	if strings.Join(cfg.DownloadRoles, ",") != "saf,doyen,sgac" {
		t.Errorf("DownloadRoles = %v, want trimmed env roles", cfg.DownloadRoles)
	}
}

func TestWorkflowConfig_Merge(t *testing.T) {
	cfg := &config.WorkflowConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	overlay := &config.WorkflowConfig{
		Attestation: "APPROUVÉ",
		Chains: map[string][]config.ChainStep{
			"pv_conseil": {{Role: "doyen"}, {Role: "recteur"}},
		},
	}
	cfg.Merge(overlay)

	if cfg.Attestation != "APPROUVÉ" {
		t.Errorf("Attestation = %q, want overlay value", cfg.Attestation)
	}
	if cfg.MissingSignerPolicy != config.MissingSignerOmit {
		t.Errorf("MissingSignerPolicy = %q, want untouched default", cfg.MissingSignerPolicy)
	}
	if _, ok := cfg.Chains["pv_conseil"]; !ok {
		t.Error("overlay chains not applied")
	}
	if _, ok := cfg.Chains["releve_notes"]; ok {
		t.Error("overlay chains should replace the chain map, not extend it")
	}
}

func TestWorkflowConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.WorkflowConfig)
		wantErr bool
	}{
		{
			"valid defaults",
			func(c *config.WorkflowConfig) {},
			false,
		},
		{
			"invalid missing signer policy",
			func(c *config.WorkflowConfig) { c.MissingSignerPolicy = "ignore" },
			true,
		},
		{
			"empty chain",
			func(c *config.WorkflowConfig) {
				c.Chains = map[string][]config.ChainStep{"releve_notes": {}}
			},
			true,
		},
		{
			"step without role",
			func(c *config.WorkflowConfig) {
				c.Chains = map[string][]config.ChainStep{
					"releve_notes": {{Role: "doyen"}, {Role: ""}},
				}
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.WorkflowConfig{}
			if err := cfg.Finalize(); err != nil {
				t.Fatalf("Finalize() failed: %v", err)
			}

			tt.mutate(cfg)

			err := cfg.Finalize()
			if tt.wantErr && err == nil {
				t.Error("Finalize() succeeded, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Finalize() failed: %v", err)
			}
		})
	}
}
