package profile

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/cli"
)

type ResetCmd struct {
	Yes bool `short:"y" help:"Reset without asking for confirmation."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This deletes your profile, points, badges and every daily log.")
		fmt.Println("Settings are kept. A backup is created first when the store supports it.")
		ok, err := ctx.Confirm("Start over?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := engine.StartOver(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	fmt.Println("✓ Profile reset. Run 'bodysoul register' to start again.")
	return nil
}
