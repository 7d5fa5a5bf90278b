package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/config"
	"github.com/lolocompany/wave-splitter/pkg"
	"github.com/urfave/cli/v3"
)

func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:        "config",
		Aliases:     []string{"cfg", "conf"},
		Usage:       "Show resolved configuration and where each value comes from",
		Description: "Resolves and displays the config currently in use: config file path, profile, output defaults, brokers and topic. Shows the source of each value and whether it is overridden by a higher-priority source.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeConfig(os.Stdout, cmd)
		},
	}
}

func writeConfig(w io.Writer, cmd *cli.Command) error {
	configPathFlag := cmd.String("config")
	actualPath := configPathFlag
	sourceNote := ""
	if actualPath == "" {
		resolved, err := config.ResolveConfigPath()
		if err != nil {
			actualPath = "(could not resolve path: " + err.Error() + ")"
		} else {
			actualPath = resolved
			if actualPath == config.DefaultConfigPath() {
				sourceNote = " (default)"
			} else {
				sourceNote = " (current directory)"
			}
		}
	}

	cfg, err := config.LoadConfig(configPathFlag)
	if err != nil {
		return err
	}

	configFileLine := actualPath + sourceNote
	if _, err := os.Stat(actualPath); err == nil {
		configFileLine += " [file exists]"
	} else {
		configFileLine += " [file not found; using empty config]"
	}
	fmt.Fprintf(w, "config file:   %s\n", configFileLine)

	// Resolve profile: --profile > config default_profile
	profileFlag := cmd.String("profile")
	profileName := cfg.ProfileName(profileFlag)
	switch {
	case profileFlag != "":
		fmt.Fprintf(w, "profile:       %s  [from --profile (overrides config default)]\n", profileName)
	case profileName != "":
		fmt.Fprintf(w, "profile:       %s  [from config default_profile]\n", profileName)
	default:
		fmt.Fprintf(w, "profile:       (none)\n")
	}
	profile, err := cfg.Profile(profileFlag)
	if err != nil {
		return err
	}
	fromProfile := "from config profile \"" + profileName + "\""

	writeSetting(w, "output_dir:", profile.OutputDir, fromProfile, ".")
	writeSetting(w, "name_pattern:", profile.NamePattern, fromProfile, pkg.DefaultNamePattern)
	writeSetting(w, "encoded_name:", profile.EncodedName, fromProfile, pkg.DefaultEncodedName)
	if profile.Count > 0 {
		writeSetting(w, "count:", fmt.Sprintf("%d", profile.Count), fromProfile, "")
	} else {
		fmt.Fprintf(w, "%-14s (none)  [split requires --count; encode uses %d]\n", "count:", pkg.SymbolCount)
	}

	// Resolve brokers: --brokers > profile from config > env
	brokersFlag := cmd.StringSlice("brokers")
	envBrokers := config.SplitBrokers(os.Getenv(config.EnvBrokers))
	var brokers []string
	var brokersSource string
	var overrides []string
	switch {
	case len(brokersFlag) > 0:
		brokers = brokersFlag
		brokersSource = "from --brokers"
		if len(profile.Brokers) > 0 {
			overrides = append(overrides, "config profile \""+profileName+"\"")
		}
		if len(envBrokers) > 0 {
			overrides = append(overrides, "env "+config.EnvBrokers)
		}
	case len(profile.Brokers) > 0:
		brokers = profile.Brokers
		brokersSource = fromProfile
		if len(envBrokers) > 0 {
			overrides = append(overrides, "env "+config.EnvBrokers)
		}
	case len(envBrokers) > 0:
		brokers = envBrokers
		brokersSource = "from env " + config.EnvBrokers
	}

	if brokers == nil {
		fmt.Fprintf(w, "brokers:       (none)  [set --brokers, a profile with brokers, or %s]\n", config.EnvBrokers)
	} else {
		fmt.Fprintf(w, "brokers:       %s  [%s", strings.Join(brokers, ", "), brokersSource)
		if len(overrides) > 0 {
			fmt.Fprintf(w, "; overrides: %s", strings.Join(overrides, ", "))
		}
		fmt.Fprintf(w, "]\n")
	}

	writeSetting(w, "topic:", profile.Topic, fromProfile, "")
	return nil
}

func writeSetting(w io.Writer, label, value, source, fallback string) {
	switch {
	case value != "":
		fmt.Fprintf(w, "%-14s %s  [%s]\n", label, value, source)
	case fallback != "":
		fmt.Fprintf(w, "%-14s %s  [default]\n", label, fallback)
	default:
		fmt.Fprintf(w, "%-14s (none)\n", label)
	}
}
