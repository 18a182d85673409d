package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/storage"
)

func (s *Store) LoadProfile() (*models.UserProfile, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var value []byte
	err := s.db.QueryRow("SELECT value FROM records WHERE key = $1", constants.ProfileKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProfileNotFound
		}
		return nil, err
	}

	return storage.DecodeProfile(value)
}

func (s *Store) SaveProfile(p *models.UserProfile) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := storage.EncodeProfile(p)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO records (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, constants.ProfileKey, string(data))
	return err
}

func (s *Store) DeleteProfile() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec("DELETE FROM records WHERE key = $1", constants.ProfileKey)
	return err
}
