package coaching

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/coach"
	"github.com/julianstephens/bodysoul/internal/education"
)

const defaultWidth = 80

type MotivateCmd struct {
	Area string `default:"general" enum:"general,sleep,weightControl,exercise,peaceOfMind,makeMeQuit" help:"Topic of the message."`
}

func (c *MotivateCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	area, err := coach.ParseArea(c.Area)
	if err != nil {
		return err
	}

	req := coach.NewRequest(engine.Profile(), "", area)
	reply := ctx.Coach.Motivate(context.Background(), req)
	printReply(reply)
	return nil
}

type ChatCmd struct {
	Message []string `arg:"" help:"What you want to ask the coach."`
	Area    string   `default:"peaceOfMind" enum:"general,sleep,weightControl,exercise,peaceOfMind,makeMeQuit" help:"Topic used for the offline reply."`
}

func (c *ChatCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	area, err := coach.ParseArea(c.Area)
	if err != nil {
		return err
	}

	msg := strings.TrimSpace(strings.Join(c.Message, " "))
	if msg == "" {
		return fmt.Errorf("message cannot be empty")
	}

	req := coach.NewRequest(engine.Profile(), msg, area)
	reply := ctx.Coach.Chat(context.Background(), req)
	fmt.Print(education.Render(reply.Text, width(), ctx.Settings().DarkMode))
	if reply.Fallback {
		fmt.Println("(offline reply)")
	}
	return nil
}

type LearnCmd struct {
	Topic string `arg:"" optional:"" help:"Topic to read about. Omit to list topics."`
}

func (c *LearnCmd) Run(ctx *cli.Context) error {
	if c.Topic == "" {
		fmt.Println("Topics:")
		for _, slug := range education.Slugs() {
			t, _ := education.Lookup(slug)
			fmt.Printf("  %-12s %s\n", slug, t.Title)
		}
		return nil
	}

	topic, err := education.Lookup(c.Topic)
	if err != nil {
		return err
	}
	fmt.Print(education.Render(topic.Markdown(), width(), ctx.Settings().DarkMode))
	return nil
}

func printReply(reply coach.Reply) {
	fmt.Println(reply.Text)
	if reply.Fallback {
		fmt.Println("(offline reply)")
	}
}

func width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return min(w, 120)
}
