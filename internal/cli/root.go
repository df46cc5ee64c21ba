// Package cli implements the tilewfc command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilewfc/internal/config"
	"github.com/katalvlaran/tilewfc/loader"
	"github.com/katalvlaran/tilewfc/pattern"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	flags  flagValues
	cfg    config.RunConfig
	logger *slog.Logger
	runID  string
}

// flagValues are the raw command-line values; only flags the user set
// override the configuration file.
type flagValues struct {
	configPath string
	patterns   string
	strict     bool
	logLevel   string
	logFormat  string
	noColor    bool

	width         int
	height        int
	judge         string
	seed          int64
	attempts      int
	earlyStopping bool
	output        string

	count       int
	concurrency int
	dir         string
	metrics     string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	def := config.Default()

	root := &cobra.Command{
		Use:   "tilewfc",
		Short: "Generate tile grids with Wave Function Collapse",
		Long: `tilewfc fills a grid with pattern groups so that every pair of
adjacent cells satisfies the adjacency rules of a pattern document.

Examples:
  tilewfc validate -p patterns.yaml
  tilewfc generate -p patterns.yaml --width 20 --height 10 --seed 7
  tilewfc batch -p patterns.yaml -n 32 --concurrency 8 --dir out`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "Run configuration file (YAML)")
	pf.StringVarP(&a.flags.patterns, "patterns", "p", "", "Pattern document (YAML or JSON)")
	pf.BoolVar(&a.flags.strict, "strict", false, "Fail on asymmetric adjacency rules")
	pf.StringVar(&a.flags.logLevel, "log-level", def.Log.Level, "Log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", def.Log.Format, "Log format: text or json")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "Disable colored grid output")

	root.AddCommand(
		a.newGenerateCmd(def),
		a.newValidateCmd(),
		a.newBatchCmd(def),
		a.newShowCmd(),
		a.newStatsCmd(),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup merges defaults, file, environment and flags, validates the result
// and builds the run logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	a.applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.runID = uuid.NewString()
	a.logger = logger.With(slog.String("run_id", a.runID), slog.String("command", cmd.Name()))
	return nil
}

func (a *app) applyFlags(cmd *cobra.Command, cfg *config.RunConfig) {
	f := a.flags
	changed := cmd.Flags().Changed
	if changed("patterns") {
		cfg.Patterns = f.patterns
	}
	if changed("strict") {
		cfg.Strict = f.strict
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if changed("width") {
		cfg.Width = f.width
	}
	if changed("height") {
		cfg.Height = f.height
	}
	if changed("judge") {
		cfg.Judge = f.judge
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("attempts") {
		cfg.Attempts = f.attempts
	}
	if changed("early-stopping") {
		cfg.EarlyStopping = f.earlyStopping
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("count") {
		cfg.Batch.Count = f.count
	}
	if changed("concurrency") {
		cfg.Batch.Concurrency = f.concurrency
	}
	if changed("dir") {
		cfg.Batch.Dir = f.dir
	}
	if changed("metrics") {
		cfg.Batch.Metrics = f.metrics
	}
}

// addGridFlags registers the flags shared by generate and batch.
func (a *app) addGridFlags(cmd *cobra.Command, def config.RunConfig) {
	fs := cmd.Flags()
	fs.IntVar(&a.flags.width, "width", def.Width, "Grid width in cells")
	fs.IntVar(&a.flags.height, "height", def.Height, "Grid height in cells")
	fs.StringVar(&a.flags.judge, "judge", def.Judge, "Selection strategy: random or greedy")
	fs.Int64Var(&a.flags.seed, "seed", def.Seed, "Seed of the random judge (0 = default seed)")
	fs.BoolVar(&a.flags.earlyStopping, "early-stopping", def.EarlyStopping, "Stop a run at the first contradiction")
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", lc.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// loadRepository reads the pattern document and builds its repository.
func (a *app) loadRepository() (*pattern.Repository, pattern.ValidationReport, error) {
	doc, err := loader.ReadFile(a.cfg.Patterns)
	if err != nil {
		return nil, pattern.ValidationReport{}, err
	}
	return doc.Build(loader.WithLogger(a.logger), loader.WithStrict(a.cfg.Strict))
}

// stdoutFile returns the command output as a file when it is one.
func stdoutFile(cmd *cobra.Command) (*os.File, bool) {
	f, ok := cmd.OutOrStdout().(*os.File)
	return f, ok
}
