package commands

import (
	"organizer/version"

	"github.com/urfave/cli/v3"
)

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "taskctl",
		Usage:   "Organizer CLI - manage tasks",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Usage: "Organizer server URL",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format (json or pretty)",
				Value: "json",
			},
		},
		Commands: []*cli.Command{
			TaskCommand(),
		},
	}
}
