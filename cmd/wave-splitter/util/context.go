package util

import (
	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/config"
	"github.com/urfave/cli/v3"
)

// GlobalFlags returns the flags shared by every command. They are declared on the root
// command and may be given before or after the subcommand name.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to the YAML config file (default: ./" + config.LocalConfigName + " or ~/.config/wave-splitter/config.yaml)",
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "Config profile to use (default: default_profile from the config file)",
		},
		&cli.StringSliceFlag{
			Name:  "brokers",
			Usage: "Kafka broker address(es) used for publishing (overrides the profile and " + config.EnvBrokers + ")",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output format for structured results: table, json or yaml (default: table on a terminal, json otherwise)",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Suppress status output and progress",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Print header fields, plan figures and every created file",
		},
	}
}

// Quiet returns true if the global --quiet flag is set. When true, commands
// should suppress all status logging (progress, "Splitting...", etc.).
func Quiet(cmd *cli.Command) bool {
	return cmd.Bool("quiet")
}

// Verbose returns true if the global --verbose flag is set
func Verbose(cmd *cli.Command) bool {
	return cmd.Bool("verbose")
}

// GetFormat returns the global --format flag value from the command.
// It may be empty if not set; callers should use output.ParseFormat with a
// default (e.g. from TTY detection).
func GetFormat(cmd *cli.Command) string {
	return cmd.String("format")
}

// LoadConfigForCmd loads the config file using the --config path from the command.
func LoadConfigForCmd(cmd *cli.Command) (config.Config, error) {
	return config.LoadConfig(cmd.String("config"))
}

// ResolveProfile loads the config and returns the profile selected by --profile or the config default
func ResolveProfile(cmd *cli.Command) (config.Profile, error) {
	c, err := LoadConfigForCmd(cmd)
	if err != nil {
		return config.Profile{}, err
	}
	return c.Profile(cmd.String("profile"))
}

// ResolveBrokers returns the broker list for the current invocation by reading
// --config, --profile, and --brokers from the command.
func ResolveBrokers(cmd *cli.Command) ([]string, error) {
	c, err := LoadConfigForCmd(cmd)
	if err != nil {
		return nil, err
	}
	return config.ResolveBrokers(cmd.StringSlice("brokers"), cmd.String("profile"), c)
}
