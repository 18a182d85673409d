package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/bodysoul/internal/storage"
	"github.com/julianstephens/bodysoul/internal/storage/postgres"
	"github.com/julianstephens/bodysoul/internal/storage/sqlite"
	"github.com/julianstephens/bodysoul/internal/utils"
)

// ErrEmbeddedCredentials is returned for a command-line connection string with a password.
var ErrEmbeddedCredentials = errors.New("PostgreSQL connection strings with embedded credentials are not allowed on the command line; " +
	"store it with 'bodysoul keyring set' or use .pgpass instead")

// OpenStore picks the backend for config: a PostgreSQL connection string, a .json file or a
// SQLite database. Connection strings from the keyring are trusted to carry a password.
func OpenStore(config string, fromKeyring bool) (storage.Provider, error) {
	config = strings.TrimSpace(config)
	if utils.IsPostgresConnString(config) {
		if _, err := postgres.ValidateConnString(config); err != nil {
			if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, err
			}
			if !fromKeyring {
				return nil, ErrEmbeddedCredentials
			}
		}
		return postgres.New(config), nil
	}

	path, err := utils.ExpandPath(config)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return storage.NewJSONStore(path), nil
	}
	return sqlite.NewStore(path), nil
}
