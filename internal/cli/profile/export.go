package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/models"
	"github.com/julianstephens/bodysoul/internal/storage"
)

type ExportCmd struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format (json, yaml)."`
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.Store.LoadProfile()
	if errors.Is(err, storage.ErrProfileNotFound) {
		return errors.New("no profile to export")
	}
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	data, err := Encode(profile, c.Format)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("✓ Profile exported to %s\n", c.Output)
	return nil
}

// Encode renders the profile as indented JSON or as YAML with the same field names.
func Encode(p *models.UserProfile, format string) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	switch format {
	case "", "json":
		return append(data, '\n'), nil
	case "yaml":
		var doc map[string]interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to encode profile: %w", err)
		}
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
