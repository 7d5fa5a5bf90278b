package commands

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/config"
	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/output"
	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/util"
	"github.com/lolocompany/wave-splitter/pkg"
	"github.com/lolocompany/wave-splitter/pkg/kafka"
	"github.com/urfave/cli/v3"
)

// runOptions carries what differs between the split and encode commands
type runOptions struct {
	count   int
	message string
	encode  bool
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i", "f"},
			Usage:    "Input RIFF/WAVE file with a canonical 44-byte header",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Directory the output files are written to (default: profile output_dir or the current directory)",
		},
		&cli.StringFlag{
			Name:  "name-pattern",
			Usage: "Segment file name pattern with one integer verb (default: profile name_pattern or " + pkg.DefaultNamePattern + ")",
		},
		&cli.StringFlag{
			Name:  "encoded-name",
			Usage: "File name of the message-encoded output (default: profile encoded_name or " + pkg.DefaultEncodedName + ")",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Read the input and plan the segments without writing or publishing any file",
		},
	}
}

func publishFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "publish",
			Usage: "Also publish every produced WAVE file to Kafka, keyed by file name",
		},
		&cli.StringFlag{
			Name:    "topic",
			Aliases: []string{"t"},
			Usage:   "Kafka topic to publish to (default: profile topic)",
		},
		&cli.IntFlag{
			Name:  "publish-rate",
			Usage: "Files per second to publish (0 for maximum speed)",
			Value: 0,
		},
		&cli.BoolFlag{
			Name:  "create-topic",
			Usage: "Create the topic if it doesn't exist",
		},
		&cli.BoolFlag{
			Name:  "no-ack",
			Usage: "Don't wait for broker acknowledgment (faster but less reliable)",
		},
	}
}

func runSegmentation(ctx context.Context, cmd *cli.Command, opts runOptions) error {
	if opts.count <= 0 || opts.count > math.MaxUint32 {
		return fmt.Errorf("%w: got %d", pkg.ErrInvalidCount, opts.count)
	}
	if opts.encode && opts.message == "" {
		return pkg.ErrEmptyMessage
	}

	profile, err := util.ResolveProfile(cmd)
	if err != nil {
		return err
	}
	input := cmd.String("input")
	outputDir := firstNonEmpty(cmd.String("output-dir"), profile.OutputDir, ".")
	namePattern := firstNonEmpty(cmd.String("name-pattern"), profile.NamePattern, pkg.DefaultNamePattern)
	encodedName := firstNonEmpty(cmd.String("encoded-name"), profile.EncodedName, pkg.DefaultEncodedName)
	dryRun := cmd.Bool("dry-run")
	quiet := util.Quiet(cmd)
	verbose := util.Verbose(cmd)

	if err := validateNamePattern(namePattern); err != nil {
		return err
	}

	var destination pkg.Destination = pkg.DirDestination{Dir: outputDir}
	if dryRun {
		destination = pkg.DiscardDestination{}
	}

	var publisher *pkg.PublishDestination
	if cmd.Bool("publish") {
		var closeProducer func()
		publisher, closeProducer, err = newPublisher(ctx, cmd, profile, quiet, dryRun)
		if err != nil {
			return err
		}
		defer closeProducer()
		if publisher != nil {
			destination = pkg.MultiDestination{destination, publisher}
		}
	}

	if !quiet {
		if dryRun {
			fmt.Fprintln(os.Stderr, "DRY RUN MODE: No files will be written")
		}
		fmt.Fprintf(os.Stderr, "Splitting '%s' into %d segments\n", input, opts.count)
		fmt.Fprintf(os.Stderr, "Output directory: %s\n", outputDir)
		if opts.encode {
			fmt.Fprintf(os.Stderr, "Encoding message of %d characters into %s\n", len([]rune(opts.message)), encodedName)
		}
	}

	cfg := pkg.RunConfig{
		InputPath:   input,
		Count:       uint32(opts.count),
		Message:     opts.message,
		Encode:      opts.encode,
		Destination: destination,
		NamePattern: namePattern,
		EncodedName: encodedName,
	}
	if verbose {
		cfg.Reporter = pkg.NewLogReporter(os.Stderr)
	}

	var spinner *util.ProgressSpinner
	if !quiet && !verbose {
		spinner = util.NewProgressSpinner("Reading input")
		cfg.WrapSource = func(source io.ReadSeeker, size int64) io.ReadSeeker {
			return util.CountingReadSeeker(source, spinner)
		}
	}

	result, err := pkg.Run(ctx, cfg)
	spinner.Close()
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "Wrote %d segment files of %d bytes each", len(result.Segments), result.Plan.SegmentBytes)
		if rem := result.Plan.Remainder(); rem > 0 {
			fmt.Fprintf(os.Stderr, " (%d trailing bytes dropped)", rem)
		}
		fmt.Fprintln(os.Stderr)
		if result.EncodedName != "" {
			fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes of audio data)\n", result.EncodedName, result.EncodedBytes)
		}
		if publisher != nil {
			fmt.Fprintf(os.Stderr, "Published %d files\n", publisher.Published())
		}
	}

	return printResult(cmd, result)
}

// newPublisher resolves brokers and topic, checks connectivity and returns a publishing destination.
// In dry-run mode only the checks run and the returned destination is nil.
func newPublisher(ctx context.Context, cmd *cli.Command, profile config.Profile, quiet, dryRun bool) (*pkg.PublishDestination, func(), error) {
	noop := func() {}
	topic := firstNonEmpty(cmd.String("topic"), profile.Topic)
	if topic == "" {
		return nil, noop, fmt.Errorf("--publish requires --topic or a profile topic")
	}
	brokers, err := util.ResolveBrokers(cmd)
	if err != nil {
		return nil, noop, err
	}
	createTopic := cmd.Bool("create-topic")
	if err := kafka.CheckTopic(ctx, brokers, topic, createTopic); err != nil {
		return nil, noop, err
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "Publishing to topic '%s' on brokers %v\n", topic, brokers)
		if rate := cmd.Int("publish-rate"); rate > 0 {
			fmt.Fprintf(os.Stderr, "Rate limit: %d files/second\n", rate)
		}
	}
	if dryRun {
		return nil, noop, nil
	}

	producer := kafka.NewProducer(brokers, topic, createTopic, cmd.Bool("no-ack"))
	closeProducer := func() { producer.Close() }
	return pkg.NewPublishDestination(ctx, producer, cmd.Int("publish-rate")), closeProducer, nil
}

// printResult writes the run result to stdout when a structured --format was requested
func printResult(cmd *cli.Command, result *pkg.RunResult) error {
	if util.GetFormat(cmd) == "" {
		return nil
	}
	format, err := output.ParseFormat(util.GetFormat(cmd), output.IsTTY(os.Stdout))
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		rows := make([][]string, 0, len(result.Segments)+1)
		for i, name := range result.Segments {
			rows = append(rows, []string{name, fmt.Sprint(result.Offsets[i]), fmt.Sprint(result.Plan.SegmentBytes)})
		}
		if result.EncodedName != "" {
			rows = append(rows, []string{result.EncodedName, "-", fmt.Sprint(result.EncodedBytes)})
		}
		return output.NewEncoder(format, os.Stdout).EncodeTable([]string{"FILE", "SOURCE OFFSET", "DATA BYTES"}, rows)
	}
	return output.NewEncoder(format, os.Stdout).Encode(result)
}

// validateNamePattern checks the pattern renders distinct names for distinct ordinals
func validateNamePattern(pattern string) error {
	a, b := pkg.SegmentName(pattern, 0), pkg.SegmentName(pattern, 1)
	if a == b || strings.Contains(a, "%!") {
		return fmt.Errorf("invalid --name-pattern %q: it must contain exactly one integer verb such as %%d", pattern)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
