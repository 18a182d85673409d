package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/bodysoul/internal/cli"
	"github.com/julianstephens/bodysoul/internal/cli/backups"
	"github.com/julianstephens/bodysoul/internal/cli/coaching"
	"github.com/julianstephens/bodysoul/internal/cli/profile"
	"github.com/julianstephens/bodysoul/internal/cli/settings"
	"github.com/julianstephens/bodysoul/internal/cli/system"
	"github.com/julianstephens/bodysoul/internal/cli/tracker"
	"github.com/julianstephens/bodysoul/internal/coach"
	"github.com/julianstephens/bodysoul/internal/constants"
	bserrors "github.com/julianstephens/bodysoul/internal/errors"
	"github.com/julianstephens/bodysoul/internal/keyring"
	"github.com/julianstephens/bodysoul/internal/logger"
	"github.com/julianstephens/bodysoul/internal/notifier"
	"github.com/julianstephens/bodysoul/internal/utils"
)

var CLI struct {
	Version       kong.VersionFlag
	Config        string `help:"Database path (.db or .json) or PostgreSQL connection string. Credentials must NOT be embedded in the connection string; use 'bodysoul keyring set' or .pgpass instead." type:"string" env:"BODYSOUL_CONFIG"`
	Debug         bool   `help:"Enable debug logging to stderr." env:"BODYSOUL_DEBUG"`
	MotivationURL string `help:"Override the motivation endpoint." name:"motivation-url" env:"BODYSOUL_MOTIVATION_URL"`
	ChatURL       string `help:"Override the chat endpoint." name:"chat-url" env:"BODYSOUL_CHAT_URL"`

	Init    system.InitCmd    `cmd:"" help:"Initialize bodysoul storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Notify  system.NotifyCmd  `cmd:"" help:"Remind you to finish today's tasks (for cron)."`

	Register profile.RegisterCmd `cmd:"" help:"Register your profile."`
	Baseline profile.BaselineCmd `cmd:"" help:"Complete the baseline assessment and start the challenge."`
	Status   profile.StatusCmd   `cmd:"" help:"Show your challenge progress."`
	Reset    profile.ResetCmd    `cmd:"" help:"Delete your profile and start over."`
	Export   profile.ExportCmd   `cmd:"" help:"Export your profile."`

	Today       tracker.TodayCmd       `cmd:"" help:"Show today's tasks."`
	Log         tracker.LogCmd         `cmd:"" help:"Log today's tasks."`
	QuitProgram tracker.QuitProgramCmd `cmd:"" name:"quit-program" help:"Set the behavior, trigger or substitution of the make-me-quit program."`
	Hide        tracker.HideCmd        `cmd:"" help:"Hide a completed task card."`
	Show        tracker.ShowCmd        `cmd:"" help:"Show a hidden task card."`
	CompleteDay tracker.CompleteDayCmd `cmd:"" name:"complete-day" help:"Complete today once all five tasks are done."`
	Calendar    tracker.CalendarCmd    `cmd:"" help:"Show the month calendar of completed days."`
	Points      tracker.PointsCmd      `cmd:"" help:"Show the points history."`

	Motivate coaching.MotivateCmd `cmd:"" help:"Get a motivational message."`
	Chat     coaching.ChatCmd     `cmd:"" help:"Ask your coach a question."`
	Learn    coaching.LearnCmd    `cmd:"" help:"Read an education card."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Body and Soul Challenge: a 10-week habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config, fromKeyring := resolveConfig(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	store, err := cli.OpenStore(config, fromKeyring)
	if err != nil {
		bserrors.Fatal(err)
	}

	// init creates the store and keyring never touches it. Doctor reports a failed load itself.
	command := strings.Fields(ctx.Command())[0]
	if command != "init" && command != "keyring" {
		if err := store.Load(); err != nil && command != "doctor" {
			bserrors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Store:    store,
		Notifier: notifier.New(),
	}
	appCtx.Coach = newCoach(appCtx)

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	if err != nil {
		bserrors.Fatal(err)
	}
}

// resolveConfig falls back to a connection string stored in the keyring, then to the default
// database path, when --config is not given.
func resolveConfig(flag string) (string, bool) {
	if flag != "" {
		return flag, false
	}
	connStr, err := keyring.GetConnectionString()
	if err == nil {
		return connStr, true
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup failed", "error", err)
	}
	return constants.DefaultConfigPath, false
}

// configDir is where logs go: next to a database file, or the default config directory for
// PostgreSQL.
func configDir(config string) string {
	path := config
	if utils.IsPostgresConnString(config) {
		path = constants.DefaultConfigPath
	}
	expanded, err := utils.ExpandPath(path)
	if err != nil {
		return os.TempDir()
	}
	return filepath.Dir(expanded)
}

// newCoach prefers the endpoint flags over the stored settings.
func newCoach(ctx *cli.Context) *coach.Client {
	motivation, chat := CLI.MotivationURL, CLI.ChatURL
	if motivation == "" || chat == "" {
		s := ctx.Settings()
		if motivation == "" {
			motivation = s.MotivationEndpoint
		}
		if chat == "" {
			chat = s.ChatEndpoint
		}
	}
	return coach.New(motivation, chat)
}
