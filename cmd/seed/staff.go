package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/akilimali/parapheur/internal/profiles"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&StaffSeeder{})
}

// StaffSeedData represents the JSON structure for staff seed files.
type StaffSeedData struct {
	Staff []StaffSeed `json:"staff"`
}

// StaffSeed is one seeded staff profile.
type StaffSeed struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Role      profiles.Role `json:"role"`
	IsActive  bool          `json:"is_active"`
}

// StaffSeeder seeds one active staff profile per administrative role so
// every configured signature chain can resolve its signers.
type StaffSeeder struct {
	file string
}

// Name returns "staff" as the seeder identifier.
func (s *StaffSeeder) Name() string {
	return "staff"
}

// Description returns a human-readable description of this seeder.
func (s *StaffSeeder) Description() string {
	return "Seeds staff profiles covering every administrative role"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *StaffSeeder) SetFile(path string) {
	s.file = path
}

// Seed loads staff data and upserts each profile by email, so repeated
// runs are idempotent.
func (s *StaffSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for _, staff := range data.Staff {
		if err := staff.Role.Validate(); err != nil {
			return fmt.Errorf("staff %s: %w", staff.Email, err)
		}

		if err := s.saveStaff(ctx, tx, staff); err != nil {
			return fmt.Errorf("save staff %s: %w", staff.Email, err)
		}
	}

	return nil
}

func (s *StaffSeeder) loadSeedData() (*StaffSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/staff.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data StaffSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}

func (s *StaffSeeder) saveStaff(ctx context.Context, tx *sql.Tx, staff StaffSeed) error {
	const query = `
		INSERT INTO profiles (first_name, last_name, email, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			role = EXCLUDED.role,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()`

	_, err := tx.ExecContext(ctx, query,
		staff.FirstName, staff.LastName, staff.Email, staff.Role, staff.IsActive,
	)
	return err
}
