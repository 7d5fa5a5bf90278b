package commands

import (
	"context"
	"slices"
	"strings"

	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/util"
	"github.com/lolocompany/wave-splitter/pkg"
	"github.com/urfave/cli/v3"
)

func EncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Encode a message as a sequence of audio segments",
		ArgsUsage: "[MESSAGE]",
		Description: "Splits the input like the split command and writes encoded.wav, the concatenation of the segments selected by the message. " +
			"Space selects segment 0 and the letters A to Z (case-insensitive) select segments 1 to 26. " +
			"Any other character, or a letter beyond the segment count, selects segment 0. " +
			"The message is taken from --message or from the remaining arguments.",
		Flags: slices.Concat([]cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"c", "n"},
				Usage:   "Number of segments to split the audio data into (default: profile count or 27)",
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "Message to encode (space and A-Z)",
			},
		}, outputFlags(), publishFlags()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count, err := resolveCount(cmd, pkg.SymbolCount)
			if err != nil {
				return err
			}
			message := cmd.String("message")
			if !cmd.IsSet("message") {
				message = strings.Join(cmd.Args().Slice(), " ")
			}
			return runSegmentation(ctx, cmd, runOptions{
				count:   count,
				message: message,
				encode:  true,
			})
		},
	}
}

// resolveCount returns --count, falling back to the profile count and then to fallback
func resolveCount(cmd *cli.Command, fallback int) (int, error) {
	if cmd.IsSet("count") {
		return cmd.Int("count"), nil
	}
	profile, err := util.ResolveProfile(cmd)
	if err != nil {
		return 0, err
	}
	if profile.Count > 0 {
		return profile.Count, nil
	}
	return fallback, nil
}
