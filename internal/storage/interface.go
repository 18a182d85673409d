package storage

import (
	"errors"

	"github.com/julianstephens/bodysoul/internal/models"
)

var (
	// ErrProfileNotFound is returned by LoadProfile when no profile has been saved yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNotInitialized is returned by Load when the backing store does not exist.
	ErrNotInitialized = errors.New("storage not initialized, run 'bodysoul init' first")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	LoadProfile() (*models.UserProfile, error)
	SaveProfile(*models.UserProfile) error
	DeleteProfile() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by stores with a versioned SQL schema.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	PendingMigrations() (int, error)
}
