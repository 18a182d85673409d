package tracker

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/cli"
)

type PointsCmd struct {
	Limit int `default:"20" help:"Number of most recent awards to show (0 for all)."`
}

func (c *PointsCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	p := engine.Profile()
	fmt.Printf("Total points: %g\n", p.Points)
	if len(p.PointsLog) == 0 {
		fmt.Println("No points yet.")
		return nil
	}

	entries := p.PointsLog
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[len(entries)-c.Limit:]
	}

	fmt.Println()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Printf("  %s  %+6g  %s\n", e.AwardedAt.Local().Format("2006-01-02 15:04"), e.Amount, e.Reason)
	}
	return nil
}
