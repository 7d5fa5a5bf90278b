package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/commands"
	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/util"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "wave-splitter",
		Usage:       "Split WAVE audio into equal segments and encode messages from them",
		Description: "Split the audio data of a canonical RIFF/WAVE file into equal segment files, encode a message as a sequence of those segments, and inspect WAVE headers.",
		Flags:       util.GlobalFlags(),
		Commands: []*cli.Command{
			commands.SplitCommand(),
			commands.EncodeCommand(),
			commands.InspectCommand(),
			commands.DebugCommand(),
			commands.VersionCommand(),
		},
		Action: func(c context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(util.ExitCode(err))
	}
}
