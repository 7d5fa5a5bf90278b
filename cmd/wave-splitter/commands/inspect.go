package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/output"
	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/util"
	"github.com/lolocompany/wave-splitter/pkg"
	"github.com/urfave/cli/v3"
)

func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:        "inspect",
		Aliases:     []string{"info"},
		Usage:       "Show the RIFF/WAVE header of one or more files",
		Description: "Decodes the 44-byte header of each file and checks that the chunk size and data size fields agree with the file length.",
		ArgsUsage:   "FILE [FILE...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return fmt.Errorf("at least one input file required")
			}

			results := make([]pkg.InspectOutput, 0, len(files))
			for _, file := range files {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				result, err := pkg.Inspect(file)
				if err != nil {
					return err
				}
				results = append(results, *result)
			}

			format, err := output.ParseFormat(util.GetFormat(cmd), output.IsTTY(os.Stdout))
			if err != nil {
				return err
			}
			enc := output.NewEncoder(format, os.Stdout)
			if format != output.FormatTable {
				return output.EncodeSlice(enc, results)
			}

			for i, r := range results {
				if i > 0 {
					fmt.Fprintln(os.Stdout)
				}
				rows := [][]string{
					{"File", r.File},
					{"File size", fmt.Sprintf("%d", r.FileSize)},
				}
				for _, f := range r.Header.Fields() {
					rows = append(rows, []string{f[0], f[1]})
				}
				rows = append(rows,
					[]string{"Audio data bytes", fmt.Sprintf("%d", r.PayloadBytes)},
					[]string{"Chunk size consistent", consistency(r.ChunkSizeMatches, fmt.Sprintf("expected %d", r.ExpectedChunkSize))},
					[]string{"Data size consistent", consistency(r.DataSizeMatches, fmt.Sprintf("file holds %d bytes", r.PayloadBytes))},
				)
				if err := enc.EncodeTable([]string{"FIELD", "VALUE"}, rows); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func consistency(ok bool, detail string) string {
	if ok {
		return "yes"
	}
	return "no (" + detail + ")"
}
