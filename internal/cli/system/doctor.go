package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/bodysoul/internal/backup"
	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/keyring"
	"github.com/julianstephens/bodysoul/internal/storage"
	"github.com/julianstephens/bodysoul/internal/utils"
	"github.com/julianstephens/bodysoul/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsStore checks are skipped when the store cannot be loaded.
	needsStore bool
	// warnOnly failures do not fail the run.
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Migrations complete", needsStore: true, run: checkMigrationsComplete},
	{name: "Profile readable", needsStore: true, run: checkProfileReadable},
	{name: "Profile integrity", needsStore: true, run: checkProfileIntegrity},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Clock/timezone", needsStore: true, run: checkClockTimezone},
	{name: "OS keyring", warnOnly: true, run: checkKeyring},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	for _, c := range checks {
		if c.needsStore && !storeReachable {
			fmt.Printf("⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	migrator, ok := ctx.Store.(storage.Migrator)
	if !ok {
		// JSON stores are upgraded on load
		return nil
	}
	pending, err := migrator.PendingMigrations()
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}
	if pending > 0 {
		return fmt.Errorf("%d migration(s) pending, run 'bodysoul migrate'", pending)
	}
	return nil
}

func checkProfileReadable(ctx *cli.Context) error {
	_, err := ctx.Store.LoadProfile()
	if err != nil && !errors.Is(err, storage.ErrProfileNotFound) {
		return err
	}
	return nil
}

func checkProfileIntegrity(ctx *cli.Context) error {
	profile, err := ctx.Store.LoadProfile()
	if errors.Is(err, storage.ErrProfileNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	result := validation.New().ValidateProfile(profile)
	if result.HasConflicts() {
		return errors.New(result.FormatReport())
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, err := backup.NewManager(ctx.Store.GetConfigPath())
	if errors.Is(err, backup.ErrUnsupportedStore) {
		return fmt.Errorf("backups are not managed for this store; use the database's own tooling")
	}
	if err != nil {
		return err
	}

	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'bodysoul backup create'")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	tz := ctx.Settings().Timezone
	if !utils.ValidateTimezone(tz) {
		return fmt.Errorf("timezone setting %q is not a valid IANA timezone", tz)
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}
