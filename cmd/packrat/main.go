package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "packrat",
		Usage:   "instrumented scratch storage CLI",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "redis connection URL: redis://<user>:<pass>@<hostname>:6379/<db>",
			Value:   "redis://localhost:6379/0",
			EnvVars: []string{"PACKRAT_REDIS_URL"},
		},
	}
	app.Commands = []*cli.Command{
		cmdStore,
		cmdGet,
		cmdCount,
		cmdReplay,
		cmdFetch,
		cmdInsert,
		cmdLogStats,
		cmdReset,
	}
	return app.Run(args)
}
