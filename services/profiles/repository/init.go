package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

// ProfileRepo implements the profile repository interface
type ProfileRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewProfileRepo creates a new profile repository instance
func NewProfileRepo(cfg *models.Config, db *sqlx.DB) *ProfileRepo {
	return &ProfileRepo{
		cfg: cfg,
		db:  db,
	}
}

// VerificationRepo implements the verification repository interface
type VerificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewVerificationRepo creates a new verification repository instance
func NewVerificationRepo(cfg *models.Config, db *sqlx.DB) *VerificationRepo {
	return &VerificationRepo{
		cfg: cfg,
		db:  db,
	}
}
