package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilewfc/grid"
	"github.com/katalvlaran/tilewfc/internal/config"
	"github.com/katalvlaran/tilewfc/judge"
	"github.com/katalvlaran/tilewfc/wfc"
)

// ErrNotCollapsed is returned when every attempt of a generation failed.
var ErrNotCollapsed = errors.New("grid did not collapse")

func (a *app) newGenerateCmd(def config.RunConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one grid",
		Long: `Generate one grid from a pattern document and print it.

A failed run is restarted from scratch up to --attempts times, each attempt
with a seed derived from --seed. Placements are never undone within a run.

Examples:
  tilewfc generate -p patterns.yaml --width 16 --height 9
  tilewfc generate -p patterns.yaml --attempts 5 -o grid.txt`,
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}
	a.addGridFlags(cmd, def)
	cmd.Flags().IntVar(&a.flags.attempts, "attempts", def.Attempts, "Runs to try before giving up")
	cmd.Flags().StringVarP(&a.flags.output, "output", "o", "", "Write the collapsed grid dump to this file")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	repo, _, err := a.loadRepository()
	if err != nil {
		return err
	}
	g, err := grid.New(a.cfg.Width, a.cfg.Height, repo)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < a.cfg.Attempts; attempt++ {
		seed := attemptSeed(a.cfg.Seed, attempt)
		e, err := a.newEngine(g, seed, slog.Int("attempt", attempt))
		if err != nil {
			return err
		}
		if e.Run() {
			printGrid(cmd.OutOrStdout(), g, fmt.Sprintf("%d×%d, seed %d", g.Width(), g.Height(), seed), a.useColor(cmd))
			if a.cfg.Output != "" {
				if err := g.Dump(a.cfg.Output); err != nil {
					return err
				}
				a.logger.Info("grid written", slog.String("path", a.cfg.Output))
			}
			return nil
		}
		lastErr = e.Err()
	}

	printGrid(cmd.ErrOrStderr(), g, "partial grid", a.useColor(cmd))
	return fmt.Errorf("generate: %d attempts: %w: %w", a.cfg.Attempts, ErrNotCollapsed, lastErr)
}

// attemptSeed keeps the configured seed for the first attempt and derives
// an independent one for every restart.
func attemptSeed(seed int64, attempt int) int64 {
	if attempt == 0 {
		return seed
	}
	return judge.DeriveSeed(seed, uint64(attempt))
}

func newJudge(name string, seed int64) judge.Judge {
	if name == config.JudgeGreedy {
		return judge.NewGreedy()
	}
	return judge.NewRandom(seed)
}

// newEngine builds an engine over g with the configured judge and logger.
func (a *app) newEngine(g *grid.Grid, seed int64, attrs slog.Attr, opts ...wfc.Option) (*wfc.Engine, error) {
	logger := a.logger.With(attrs, slog.Int64("seed", seed))
	opts = append([]wfc.Option{
		wfc.WithLogger(logger),
		wfc.WithEarlyStopping(a.cfg.EarlyStopping),
	}, opts...)
	return wfc.New(g, newJudge(a.cfg.Judge, seed), opts...)
}
