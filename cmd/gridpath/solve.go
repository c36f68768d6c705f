package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/textmap"
)

type solveFlags struct {
	style         string
	maxExpansions int
	showInitial   bool
	conn4         bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <map-file>",
		Short: "Search a map file and draw the path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.style, "style", "boxes", "drawing style: boxes|compact")
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "stop after this many expansions (0 = unlimited)")
	cmd.Flags().BoolVar(&f.showInitial, "show-initial", false, "draw the grid before searching")
	cmd.Flags().BoolVar(&f.conn4, "conn4", false, "move only horizontally and vertically")
	return cmd
}

func runSolve(cmd *cobra.Command, path string, f solveFlags) error {
	style, err := render.ParseStyle(f.style)
	if err != nil {
		return err
	}
	conn := grid.Conn8
	if f.conn4 {
		conn = grid.Conn4
	}

	g, err := textmap.Load(path, grid.WithConnectivity(conn))
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"file": path, "width": g.Width, "height": g.Height}).Debug("map loaded")

	out := cmd.OutOrStdout()
	if f.showInitial {
		if err = render.Render(out, g, render.WithStyle(style)); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	res, err := astar.FindPath(g,
		astar.WithContext(cmd.Context()),
		astar.WithMaxExpansions(f.maxExpansions),
	)
	if err != nil {
		log.WithError(err).WithField("expanded", res.Expanded).Error("search failed")
		return err
	}

	if err = render.Render(out, g, render.WithStyle(style)); err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintf(out, "no path exists (%d cells expanded)\n", res.Expanded)
		return nil
	}
	fmt.Fprintf(out, "path: %v\ncost: %d, steps: %d, expanded: %d\n",
		res.Path, res.Cost, len(res.Path)-1, res.Expanded)
	return nil
}
