package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilewfc/grid"
	"github.com/katalvlaran/tilewfc/region"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <dump>",
		Short: "Print a grid dump",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShow,
	}
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrid(args[0])
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s: %d×%d, %d placed", args[0], g.Width(), g.Height(), g.PlacedCount())
	printGrid(cmd.OutOrStdout(), g, title, a.useColor(cmd))
	return nil
}

func (a *app) loadGrid(path string) (*grid.Grid, error) {
	repo, _, err := a.loadRepository()
	if err != nil {
		return nil, err
	}
	return grid.Load(path, repo)
}

func (a *app) newStatsCmd() *cobra.Command {
	var (
		tags  []string
		conn8 bool
	)
	cmd := &cobra.Command{
		Use:   "stats <dump>",
		Short: "Count the contiguous regions of a grid dump",
		Long: `Print, for every group in the grid, its cell count, the number of
contiguous regions it forms and the size of the largest one. --tag adds the
same figures for cells sharing a tag.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			opts := region.DefaultOptions()
			if conn8 {
				opts.Conn = region.Conn8
			}
			regions, err := region.Components(g, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %-12s %6s %8s %8s\n", "uid", "name", "cells", "regions", "largest")
			for _, s := range region.Summarize(regions, g.Repository()) {
				fmt.Fprintf(out, "%-4d %-12s %6d %8d %8d\n", s.UID, s.Name, s.Cells, s.Regions, s.Largest)
			}
			for _, tag := range tags {
				trs, err := region.TagComponents(g, tag, opts)
				if err != nil {
					return err
				}
				cells, largest := 0, 0
				for _, r := range trs {
					cells += r.Size()
					largest = max(largest, r.Size())
				}
				fmt.Fprintf(out, "tag %-8s %6d %8d %8d\n", tag, cells, len(trs), largest)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Also report regions of cells carrying this tag")
	cmd.Flags().BoolVar(&conn8, "diagonal", false, "Count diagonal neighbors as connected")
	return cmd
}
