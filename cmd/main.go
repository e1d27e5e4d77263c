package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/trainingops/dealsync/internal/cmd"
	"github.com/trainingops/dealsync/internal/config"
	"github.com/trainingops/dealsync/internal/theme"
	"github.com/trainingops/dealsync/version"
)

func main() {
	os.Exit(run())
}

// run returns the exit code so deferred cleanup happens before os.Exit
func run() int {
	// A missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	settings, err := config.LoadSettings(config.GetSettingsPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created lazily by commands after input validation
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("dealsync"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}
