package profile

import (
	"fmt"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/validation"
)

type RegisterCmd struct {
	Name   string  `required:"" help:"Your name."`
	Age    int     `required:"" help:"Age in years."`
	Gender string  `required:"" enum:"female,male,other" help:"Gender used for the calorie estimate (female, male, other)."`
	Weight float64 `required:"" help:"Current weight in kg."`
	Height float64 `required:"" help:"Height in cm."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	in := validation.RegistrationInput{
		Name:          c.Name,
		Age:           c.Age,
		Gender:        c.Gender,
		InitialWeight: c.Weight,
		Height:        c.Height,
	}
	if err := engine.Register(in); err != nil {
		return err
	}

	p := engine.Profile()
	fmt.Printf("Welcome, %s!\n", p.Name)
	fmt.Printf("Ideal weight for your height: %.1f kg\n", p.IdealWeight)
	if !p.HasCompletedBaseline {
		fmt.Println("Next: run 'bodysoul baseline' to record your fitness baseline and start the challenge.")
	}
	return nil
}
