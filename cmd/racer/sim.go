package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var (
	flagSimRuns      int
	flagSimTicks     int
	flagSimAutopilot bool
	flagSimRecord    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless races with the autopilot",
	Long: `Run races without a display, as fast as the CPU allows.

Each run uses seed+N, so a fixed --seed reproduces the same races.
A run ends at the first crash or after --ticks frames.

Examples:
  racer sim --seed 42
  racer sim --seed 42 --runs 10 --difficulty hard
  racer sim --autopilot=false --ticks 600
  racer sim --runs 3 --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of races to run")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*10, "Frame limit per race")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", true, "Steer with the autopilot (off = never steer)")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save runs and best score to the database")
}

// simResult is the outcome of one headless race.
type simResult struct {
	Seed    int64
	Score   int
	Coins   int
	Hits    int
	Frames  int
	Crashed bool
	NewBest bool
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, cleanup, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	racerCfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSimRuns <= 0 {
		return fmt.Errorf("--runs must be positive")
	}

	var scores *storage.GameScores
	if flagSimRecord {
		if store := openStore(logger); store != nil {
			defer store.Close()
			scores = store.ForGame(racer.GameID)
		}
	}

	seed := resolveSeed()
	results := make([]simResult, 0, flagSimRuns)
	for i := 0; i < flagSimRuns; i++ {
		res := simulate(racerCfg, seed+int64(i), flagSimTicks, flagSimAutopilot, scores, logger)
		results = append(results, res)

		if scores != nil && res.Score > 0 {
			runID, err := scores.RecordRun(storage.Run{
				Score:      res.Score,
				Coins:      res.Coins,
				Frames:     res.Frames,
				Difficulty: string(racerCfg.Difficulty),
			})
			if err != nil {
				logger.Warn("could not record run", "error", err)
			} else {
				logger.Debug("run recorded", "run", runID)
			}
		}
	}

	fmt.Println(renderSimResults(results, racerCfg.Difficulty))
	return nil
}

// simulate plays one race from start to crash or frame limit.
func simulate(cfg config.RacerConfig, seed int64, ticks int, autopilot bool, scores *storage.GameScores, logger *log.Logger) simResult {
	opts := []racer.Option{
		racer.WithSeed(seed),
		racer.WithLogger(logger),
	}
	if scores != nil {
		opts = append(opts, racer.WithStore(scores))
	}
	game := racer.New(cfg, opts...)
	game.Handle(core.ActionStart)

	res := simResult{Seed: seed}
	s := game.Session()
	for i := 0; i < ticks && s.Running(); i++ {
		in := core.NewInputFrame()
		if autopilot {
			in.Set(racer.Autopilot(s.Snapshot()))
		}
		d := game.Step(in)
		res.Hits += d.Hits
		if d.Over {
			res.Crashed = true
			res.NewBest = d.NewBest
		}
	}
	if s.Running() {
		prevBest := s.BestScore()
		s.Stop()
		res.NewBest = s.Score() > prevBest
	}

	snap := s.Snapshot()
	res.Score = snap.Score
	res.Coins = snap.CoinCount
	res.Frames = snap.Frame

	logger.Info("race finished",
		"seed", seed,
		"score", res.Score,
		"frames", res.Frames,
		"crashed", res.Crashed,
	)
	return res
}

// renderSimResults formats the runs as a table with a summary line.
func renderSimResults(results []simResult, difficulty config.DifficultyPreset) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Run", "Seed", "Score", "Coins", "Hits", "Frames", "End")

	best, total := 0, 0
	for i, r := range results {
		end := "timeout"
		if r.Crashed {
			end = "crash"
		}
		if r.NewBest {
			end += " *"
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Coins),
			strconv.Itoa(r.Hits),
			strconv.Itoa(r.Frames),
			end,
		)
		best = max(best, r.Score)
		total += r.Score
	}

	summary := fmt.Sprintf("%d run(s) on %s  best %d  avg %.1f",
		len(results), difficulty, best, float64(total)/float64(len(results)))
	return t.String() + "\n" + summary
}
