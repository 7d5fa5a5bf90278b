package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

func DebugCommand() *cli.Command {
	return &cli.Command{
		Name:        "debug",
		Usage:       "Troubleshooting helpers",
		Description: "Commands for diagnosing the CLI setup. Subcommands: config, brokers.",
		Commands: []*cli.Command{
			ConfigCommand(),
			BrokersCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowSubcommandHelp(cmd)
		},
	}
}
