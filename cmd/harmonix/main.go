// Command harmonix reorders a DJ playlist into a harmonically smooth set.
//
// It reads a CSV/TSV export (Rekordbox, Serato, Engine DJ), clusters the
// tracks by Camelot wheel position, plans a minimal-clash route across
// the occupied positions and writes the resequenced playlist back out.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/velvetcue/harmonix/flow"
	"github.com/velvetcue/harmonix/internal/config"
	"github.com/velvetcue/harmonix/playlist"
)

var (
	colorAccent  lipgloss.Color = "#89b4fa"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorWarning lipgloss.Color = "#f9e2af"

	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	stylePath    = lipgloss.NewStyle().Foreground(colorAccent)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleWarn    = lipgloss.NewStyle().Foreground(colorWarning)
)

func main() {
	app := &cli.App{
		Name:  "harmonix",
		Usage: "Harmonix resequences DJ playlists along the Camelot wheel for smooth key transitions.",
		Commands: []*cli.Command{
			{
				Name:      "optimize",
				Usage:     "Reorder a playlist export into a harmonic sequence",
				ArgsUsage: "[--in playlist.csv] [--out sorted.csv]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Required: true, Usage: "playlist export to read (CSV or TSV)"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the reordered playlist here (default: stdout summary only)"},
					&cli.StringFlag{Name: "direction", Aliases: []string{"d"}, Usage: "tempo trajectory: ascending, descending or wave"},
					&cli.Float64Flag{Name: "smooth", Usage: "flag tempo jumps above this BPM delta at cluster boundaries (0 = off)"},
					&cli.StringFlag{Name: "start", Usage: "pin the opening Camelot position, e.g. 8A"},
				},
				Action: runOptimize,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runOptimize(c *cli.Context) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	// flags override file/env configuration
	if c.IsSet("direction") {
		loaded.Flow.Direction = c.String("direction")
	}
	if c.IsSet("smooth") {
		loaded.Flow.BoundaryBPM = c.Float64("smooth")
	}
	if c.IsSet("start") {
		loaded.Flow.Start = c.String("start")
	}

	cfg, err := loaded.Resolve()
	if err != nil {
		return err
	}

	pl, err := playlist.ReadFile(c.String("in"))
	if err != nil {
		return err
	}
	for _, w := range pl.Warnings {
		line := fmt.Sprintf("row %d: %s %q skipped", w.Row, w.Field, w.Value)
		if w.Suggestion != "" {
			line += fmt.Sprintf(" (did you mean %s?)", w.Suggestion)
		}
		fmt.Fprintln(os.Stderr, styleWarn.Render(line))
	}

	res, err := flow.Optimize(pl.Tracks, cfg)
	if err != nil {
		return err
	}

	printSummary(res, len(pl.Warnings))

	if out := c.String("out"); out != "" {
		if werr := playlist.WriteFile(out, pl.Columns, res.Tracks); werr != nil {
			return werr
		}
		fmt.Println(styleMuted.Render("wrote " + out))
	}

	return nil
}

func printSummary(res flow.Result, skipped int) {
	fmt.Println(styleHeading.Render("harmonic route"))

	steps := make([]string, len(res.Path))
	for i, p := range res.Path {
		steps[i] = p.String()
	}
	fmt.Println(stylePath.Render(strings.Join(steps, " -> ")))

	detail := fmt.Sprintf("%d tracks, %d clusters, clash cost %d", len(res.Tracks), len(res.Path), res.Cost)
	if res.Fallback {
		detail += ", heuristic route"
	}
	if skipped > 0 {
		detail += fmt.Sprintf(", %d rows skipped", skipped)
	}
	fmt.Println(styleMuted.Render(detail))

	for _, b := range res.Boundaries {
		fmt.Println(styleWarn.Render(fmt.Sprintf(
			"tempo jump %.0f BPM at %s -> %s (track %s)",
			b.Delta, b.From, b.To, b.ToID)))
	}
}
