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

func BrokersCommand() *cli.Command {
	return &cli.Command{
		Name:        "brokers",
		Aliases:     []string{"broker"},
		Usage:       "Check that the brokers used by --publish are reachable",
		Description: "Connects to the resolved brokers and lists every configured and advertised broker with its reachability.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			brokers, err := util.ResolveBrokers(cmd)
			if err != nil {
				return err
			}
			result, err := pkg.ListBrokers(ctx, brokers)
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(util.GetFormat(cmd), output.IsTTY(os.Stdout))
			if err != nil {
				return err
			}
			enc := output.NewEncoder(format, os.Stdout)
			if format == output.FormatTable {
				rows := make([][]string, 0, len(result))
				for _, b := range result {
					id := "-"
					if b.ID != 0 || !b.Configured {
						id = fmt.Sprintf("%d", b.ID)
					}
					rows = append(rows, []string{id, b.Address, fmt.Sprintf("%t", b.Reachable), fmt.Sprintf("%t", b.Configured)})
				}
				return enc.EncodeTable([]string{"ID", "ADDRESS", "REACHABLE", "CONFIGURED"}, rows)
			}
			return output.EncodeSlice(enc, result)
		},
	}
}
