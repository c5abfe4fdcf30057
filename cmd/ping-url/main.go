package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

func main() {
	// Variables already in the environment take precedence over .env.
	dotEnvLoaded := godotenv.Load() == nil

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("ping-url"),
		kong.Description("Poll a URL until it answers 200 or the retry budget runs out"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	ctx, stop := setupSignalHandler()
	defer stop()

	err := cli.Run(ctx, Env{
		Stdout:       os.Stdout,
		DotEnvLoaded: dotEnvLoaded,
	})
	kctx.FatalIfErrorf(err)
}
