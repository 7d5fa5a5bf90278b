package commands

import (
	"context"
	"slices"

	"github.com/urfave/cli/v3"
)

func SplitCommand() *cli.Command {
	return &cli.Command{
		Name:  "split",
		Usage: "Split the audio data of a WAVE file into equal segment files",
		Description: "Reads the canonical 44-byte RIFF/WAVE header of the input, divides the audio data into --count equal segments " +
			"and writes each one as its own WAVE file (chunk0.wav, chunk1.wav, ...). Trailing bytes that do not fill a whole segment are dropped. " +
			"When --message is given, the segments are also concatenated into encoded.wav in the order spelled by the message.",
		Flags: slices.Concat([]cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"c", "n"},
				Usage:   "Number of segments to split the audio data into (default: profile count)",
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "Optional message (space and A-Z) to encode into a single output file",
			},
		}, outputFlags(), publishFlags()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count, err := resolveCount(cmd, 0)
			if err != nil {
				return err
			}
			return runSegmentation(ctx, cmd, runOptions{
				count:   count,
				message: cmd.String("message"),
				encode:  cmd.IsSet("message"),
			})
		},
	}
}
