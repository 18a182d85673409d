package tracker

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/tui/components/month"
)

type CalendarCmd struct {
	Offset int `help:"Months from the current one (negative for earlier months)."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	completed := func(date string) bool {
		log := engine.Profile().DailyLogs[date]
		return log != nil && log.DayCompleted
	}
	m := month.New(ctx.Clock(), completed, ctx.Settings().DarkMode)
	m.Offset = c.Offset

	fmt.Println(m.View())
	return nil
}
