package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"crosswarped.com/interlock"
	"crosswarped.com/interlock/internal"
)

type options struct {
	file         string
	words        []string
	request      string
	excludedFile string

	minWordLength int
	maxWordLength int

	maxLength int
	maxHeight int
	maxArea   int

	sideBySide     bool
	headByHead     bool
	sideByHead     bool
	cornerByCorner bool

	firstOnly bool
	doAll     bool
	output    string
	format    string
	timeout   time.Duration
	noPrune   bool

	profile           bool
	profileFile       string
	memoryProfileFile string

	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	defaults := interlock.DefaultSettings().Compatibility

	cmd := &cobra.Command{
		Use:   "xwcli",
		Short: "Generate every crossword that interlocks a set of words",
		Long: `Generate every crossword that interlocks a set of words.

Examples:
  xwcli --words hello,local,cat --all
  xwcli --file words.txt --max-length 13 --side-by-head
  xwcli --request request.yaml --first --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.file, "file", "", "The file to load words from")
	f.StringSliceVar(&opts.words, "words", nil, "Comma separated words to interlock")
	f.StringVar(&opts.request, "request", "", "A JSON or YAML request file with words and settings")
	f.StringVar(&opts.excludedFile, "excluded", "", "The file to load excluded words from")

	f.IntVar(&opts.minWordLength, "min-length", 2, "The minimum word length")
	f.IntVar(&opts.maxWordLength, "max-length-word", 0, "The maximum word length (0 for no limit)")

	f.IntVar(&opts.maxLength, "max-length", 0, "The maximum crossword width (0 for no limit)")
	f.IntVar(&opts.maxHeight, "max-height", 0, "The maximum crossword height (0 for no limit)")
	f.IntVar(&opts.maxArea, "max-area", 0, "The maximum crossword area (0 for no limit)")

	f.BoolVar(&opts.sideBySide, "side-by-side", defaults.SideBySide, "Allow parallel words in adjacent rows or columns")
	f.BoolVar(&opts.headByHead, "head-by-head", defaults.HeadByHead, "Allow parallel words to touch end to end")
	f.BoolVar(&opts.sideByHead, "side-by-head", defaults.SideByHead, "Allow a word end to touch the side of another word")
	f.BoolVar(&opts.cornerByCorner, "corner-by-corner", defaults.CornerByCorner, "Allow words to touch at a corner")

	f.BoolVar(&opts.firstOnly, "first", false, "Only generate the first crossword")
	f.BoolVar(&opts.doAll, "all", false, "Generate all crosswords")
	f.StringVarP(&opts.output, "output", "o", "", "Write crosswords to this file instead of stdout")
	f.StringVar(&opts.format, "format", string(internal.OutputText), "Output format: text, json or yaml")
	f.DurationVar(&opts.timeout, "timeout", 1*time.Minute, "The timeout for the generator")
	f.BoolVar(&opts.noPrune, "no-prune", false, "Disable explored-base pruning (slower, same results)")

	f.BoolVar(&opts.profile, "profile", false, "Profile the generator")
	f.StringVar(&opts.profileFile, "profile-file", "cpu.pprof", "The file to write the CPU profile to")
	f.StringVar(&opts.memoryProfileFile, "memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log search statistics")

	cmd.MarkFlagsMutuallyExclusive("first", "all")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := buildRequest(ctx, cmd, opts, log)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"words":       len(req.Words),
		"constraints": req.Settings.Crossword.SizeConstraints,
	}).Info("Generating crosswords")
	log.WithField("settings", fmt.Sprintf("%+v", req.Settings.Compatibility)).Debug("Word compatibility")

	format, err := internal.ParseOutputFormat(opts.format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	rw, err := internal.NewResultWriter(out, format)
	if err != nil {
		return err
	}

	var mf *os.File
	if opts.profile {
		f, err := os.Create(opts.profileFile)
		if err != nil {
			return fmt.Errorf("creating profile file: %w", err)
		}
		defer f.Close()

		mf, err = os.Create(opts.memoryProfileFile)
		if err != nil {
			return fmt.Errorf("creating memory profile file: %w", err)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	gen := interlock.CreateGenerator(req, interlock.GeneratorParams{
		DisableBasePruning: opts.noPrune,
	})

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	start := time.Now()
	in := bufio.NewReader(cmd.InOrStdin())
	it := gen.Iterator()
	for {
		cw, ok := it.Next(ctx)
		if !ok {
			break
		}
		if err := rw.Write(cw); err != nil {
			return err
		}

		if opts.firstOnly {
			break
		}
		if opts.doAll {
			continue
		}

		// Wait for user input and determine if they want to continue.
		// Continue (any key), or stop (n)
		fmt.Fprint(cmd.ErrOrStderr(), "Continue? [Y/n]: ")
		input, err := in.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "s" || input == "S" {
			fmt.Fprintln(cmd.ErrOrStderr(), cw.Grid().DebugString())
		}
		if input == "n" || input == "N" || err != nil {
			break
		}
	}

	if err := rw.Close(); err != nil {
		return err
	}

	stats := it.Stats()
	entry := log.WithFields(logrus.Fields{
		"crosswords":     rw.Count(),
		"elapsed":        time.Since(start).Round(time.Millisecond),
		"nodes":          stats.Nodes,
		"pruned_by_size": stats.PrunedBySize,
		"pruned_by_base": stats.PrunedByBase,
		"duplicates":     stats.Duplicates,
		"bases":          stats.Bases,
	})
	if err := it.Err(); err != nil {
		entry.WithError(err).Warn("Generation stopped early")
	} else {
		entry.Debug("Done")
	}

	if mf != nil {
		if err := pprof.WriteHeapProfile(mf); err != nil {
			return fmt.Errorf("writing memory profile: %w", err)
		}
	}
	return nil
}

// buildRequest merges the request file, word files and flags into one
// request. Compatibility flags only override the request file when they are
// set explicitly.
func buildRequest(ctx context.Context, cmd *cobra.Command, opts *options, log logrus.FieldLogger) (interlock.Request, error) {
	settings := interlock.DefaultSettings()
	words := append([]string(nil), opts.words...)

	if opts.request != "" {
		log.WithField("path", opts.request).Debug("Loading request file")
		rf, err := internal.LoadRequestFile(ctx, opts.request)
		if err != nil {
			return interlock.Request{}, err
		}
		settings = rf.Settings
		words = append(words, rf.Words...)
	}

	if opts.file != "" {
		log.WithField("path", opts.file).Debug("Loading words from file")
		fileWords, err := internal.LoadWordFile(ctx, opts.file)
		if err != nil {
			return interlock.Request{}, err
		}
		words = append(words, fileWords...)
	}

	var excluded []string
	if opts.excludedFile != "" {
		log.WithField("path", opts.excludedFile).Debug("Loading excluded words from file")
		var err error
		if excluded, err = internal.LoadWordFile(ctx, opts.excludedFile); err != nil {
			return interlock.Request{}, err
		}
	}

	flags := cmd.Flags()
	compat := &settings.Compatibility
	if flags.Changed("side-by-side") {
		compat.SideBySide = opts.sideBySide
	}
	if flags.Changed("head-by-head") {
		compat.HeadByHead = opts.headByHead
	}
	if flags.Changed("side-by-head") {
		compat.SideByHead = opts.sideByHead
	}
	if flags.Changed("corner-by-corner") {
		compat.CornerByCorner = opts.cornerByCorner
	}

	constraints := &settings.Crossword.SizeConstraints
	if opts.maxLength > 0 {
		*constraints = append(*constraints, interlock.MaxLength(opts.maxLength))
	}
	if opts.maxHeight > 0 {
		*constraints = append(*constraints, interlock.MaxHeight(opts.maxHeight))
	}
	if opts.maxArea > 0 {
		*constraints = append(*constraints, interlock.MaxArea(opts.maxArea))
	}
	if err := internal.ValidateSettings(settings); err != nil {
		return interlock.Request{}, err
	}

	normalized, err := internal.NormalizeWordList(internal.WordListParams{
		Words:         words,
		ExcludedWords: excluded,
		MinWordLength: &opts.minWordLength,
		MaxWordLength: &opts.maxWordLength,
	})
	if err != nil {
		return interlock.Request{}, err
	}
	log.WithFields(logrus.Fields{
		"words":    len(normalized),
		"excluded": len(excluded),
	}).Debug("Loaded words")

	return interlock.Request{Words: normalized, Settings: settings}, nil
}
