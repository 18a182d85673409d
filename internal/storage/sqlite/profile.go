package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/bodysoul/internal/constants"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/storage"
)

func (s *Store) LoadProfile() (*models.UserProfile, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", constants.ProfileKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProfileNotFound
		}
		return nil, err
	}

	return storage.DecodeProfile([]byte(value))
}

func (s *Store) SaveProfile(p *models.UserProfile) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := storage.EncodeProfile(p)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO records (key, value, updated_at) VALUES (?, ?, ?)",
		constants.ProfileKey, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) DeleteProfile() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec("DELETE FROM records WHERE key = ?", constants.ProfileKey)
	return err
}
