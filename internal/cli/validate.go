package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilewfc/loader"
)

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a pattern document and the symmetry of its rules",
		Long: `Load a pattern document, resolve every rule reference and report each
asymmetric rule: group A allowing B on one side while B does not allow A
on the opposite side. Exits non-zero when any violation is found.`,
		Args: cobra.NoArgs,
		RunE: a.runValidate,
	}
}

func (a *app) runValidate(cmd *cobra.Command, _ []string) error {
	doc, err := loader.ReadFile(a.cfg.Patterns)
	if err != nil {
		return err
	}
	repo, report, err := doc.Build(loader.WithLogger(a.logger))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d groups\n", a.cfg.Patterns, repo.Len())
	fmt.Fprintln(out, report)
	if !report.OK() {
		return fmt.Errorf("validate: %d violations: %w", len(report.Violations), loader.ErrInconsistentRules)
	}
	return nil
}
