package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/level"
	"go-grid-defense/internal/termview"
	"go-grid-defense/pkg/gridmap"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errLevelsInvalid = errors.New("some levels have errors")

func validateCmd() *cobra.Command {
	var defsPath string

	cmd := &cobra.Command{
		Use:   "validate [level-file...]",
		Short: "Check level files for broken paths, unknown spawns and unknown enemy kinds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), defsPath, args)
		},
	}
	cmd.Flags().StringVarP(&defsPath, "defs", "d", "", "enemy and tower definitions (.json)")
	return cmd
}

func runValidate(out io.Writer, defsPath string, paths []string) error {
	lib := defs.DefaultLibrary()
	if defsPath != "" {
		loaded, err := defs.LoadLibrary(defsPath)
		if err != nil {
			return err
		}
		lib = loaded
	}
	known := func(kind string) bool {
		_, ok := lib.Enemies[kind]
		return ok
	}

	failed := false
	for _, path := range paths {
		data, err := level.Load(path)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failed = true
			continue
		}
		issues := level.Validate(data, known)
		if len(issues) == 0 {
			fmt.Fprintf(out, "%s: ok\n", path)
			continue
		}
		for _, i := range issues {
			fmt.Fprintf(out, "%s: %s\n", path, i)
		}
		if gridmap.HasErrors(issues) {
			failed = true
		}
	}
	if failed {
		return errLevelsInvalid
	}
	return nil
}

// report is the machine-readable result of a simulate run.
type report struct {
	Level       string  `json:"level" yaml:"level"`
	WavesPlayed int     `json:"waves_played" yaml:"waves_played"`
	Waves       int     `json:"waves" yaml:"waves"`
	Finished    bool    `json:"finished" yaml:"finished"`
	SimTime     float64 `json:"sim_time" yaml:"sim_time"`
	Towers      int     `json:"towers" yaml:"towers"`
	Killed      int     `json:"killed" yaml:"killed"`
	Leaked      int     `json:"leaked" yaml:"leaked"`
	Stalled     int     `json:"stalled" yaml:"stalled"`
	Skipped     int     `json:"skipped_spawns" yaml:"skipped_spawns"`
	Bounty      int     `json:"bounty" yaml:"bounty"`
}

type simFlags struct {
	levelPath string
	defsPath  string
	dt        float64
	maxTime   float64
	autoBuild int
	tower     string
}

func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.levelPath, "level", "l", "", "level file; built-in level if empty")
	cmd.Flags().StringVarP(&f.defsPath, "defs", "d", "", "enemy and tower definitions (.json)")
	cmd.Flags().IntVar(&f.autoBuild, "auto-build", 0, "place this many towers along the path first")
	cmd.Flags().StringVar(&f.tower, "tower", "ranger", "tower kind used by --auto-build")
}

func (f *simFlags) newGame() (*app.Game, error) {
	lvl, lib, err := app.LoadAssets(f.levelPath, f.defsPath)
	if err != nil {
		return nil, err
	}
	g, err := app.NewGame(lvl, lib, nil)
	if err != nil {
		return nil, err
	}
	if f.autoBuild > 0 {
		if _, err := g.AutoBuild(f.tower, f.autoBuild); err != nil {
			g.Dispose()
			return nil, err
		}
	}
	return g, nil
}

func simulateCmd() *cobra.Command {
	var (
		flags  simFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play every wave headlessly and report what happened",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := flags.newGame()
			if err != nil {
				return err
			}
			defer g.Dispose()

			res := g.Simulate(app.SimOptions{DeltaTime: flags.dt, MaxTime: flags.maxTime})
			r := report{
				Level:       g.Level.Data().Metadata.ID,
				WavesPlayed: res.WavesPlayed,
				Waves:       g.WaveManager.WaveCount(),
				Finished:    res.Finished,
				SimTime:     res.SimTime,
				Towers:      len(g.Towers()),
				Killed:      res.Stats.Killed,
				Leaked:      res.Stats.Leaked,
				Stalled:     res.Stats.Stalled,
				Skipped:     g.WaveManager.SkippedSpawns(),
				Bounty:      res.Stats.Bounty,
			}
			return writeReport(cmd.OutOrStdout(), format, r)
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64Var(&flags.dt, "dt", 1.0/60, "simulated seconds per tick")
	cmd.Flags().Float64Var(&flags.maxTime, "max-time", 600, "give up after this many simulated seconds")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}

func writeReport(out io.Writer, format string, r report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(r)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return fmt.Errorf("unknown format %q", format)
}

func watchCmd() *cobra.Command {
	var (
		flags     simFlags
		autoStart bool
		stay      bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Play a level in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := flags.newGame()
			if err != nil {
				return err
			}
			defer g.Dispose()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("opening terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing terminal: %w", err)
			}
			defer screen.Fini()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			err = termview.Run(ctx, screen, g, autoStart, !stay)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&autoStart, "auto-start", true, "start each wave as soon as possible")
	cmd.Flags().BoolVar(&stay, "stay", false, "keep the view open after the last wave")
	return cmd
}
