package tracker

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/challenge"
	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/constants"
)

type QuitProgramCmd struct {
	Field string `arg:"" enum:"behavior,trigger,substitution" help:"Which stage to set (behavior, trigger, substitution)."`
	Value string `arg:"" help:"The behavior to quit, its trigger, or the substitution."`
}

func (c *QuitProgramCmd) Run(ctx *cli.Context) error {
	return ctx.Dispatch(challenge.SetQuitProgram{Field: c.Field, Value: c.Value})
}

type HideCmd struct {
	Task string `arg:"" enum:"sleep,weightControl,exercise,peaceOfMind,makeMeQuit" help:"Completed task to hide."`
}

func (c *HideCmd) Run(ctx *cli.Context) error {
	if err := ctx.Dispatch(challenge.HideTask{Task: constants.TaskKey(c.Task)}); err != nil {
		return err
	}
	fmt.Printf("Hid %s.\n", constants.TaskTitles[constants.TaskKey(c.Task)])
	return nil
}

type ShowCmd struct {
	Task string `arg:"" enum:"sleep,weightControl,exercise,peaceOfMind,makeMeQuit" help:"Hidden task to show again."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	return ctx.Dispatch(challenge.ShowTask{Task: constants.TaskKey(c.Task)})
}

type CompleteDayCmd struct{}

func (c *CompleteDayCmd) Run(ctx *cli.Context) error {
	return ctx.Dispatch(challenge.CompleteDay{})
}
