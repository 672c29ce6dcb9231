package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golife/model"
	"golife/sdl"
	"golife/utils"
)

func main() {
	// SDL rendering must stay on the main OS thread.
	runtime.LockOSThread()

	var (
		configPath  = flag.String("config", "config.json", "path to the JSON config file")
		width       = flag.Int("w", 0, "override the grid width")
		height      = flag.Int("h", 0, "override the grid height")
		turns       = flag.Int("turns", 0, "override the maximum number of generations")
		patternFile = flag.String("pattern", "", "pattern file to load as the initial state")
		ruleName    = flag.String("rule", "", "rule set to apply (conway, highlife)")
		snapshotDir = flag.String("snapshots", "", "directory receiving a text snapshot per generation")
		useSDL      = flag.Bool("sdl", false, "render in an SDL window instead of the terminal")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	applyFlagOverrides(&config, *width, *height, *turns, *patternFile, *ruleName, *snapshotDir, *useSDL)

	if err := run(config); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(config *utils.Config, width, height, turns int, patternFile, ruleName, snapshotDir string, useSDL bool) {
	if width > 0 {
		config.Width = width
	}
	if height > 0 {
		config.Height = height
	}
	if turns > 0 {
		config.MaxGenerations = turns
	}
	if patternFile != "" {
		config.PatternFile = patternFile
	}
	if ruleName != "" {
		config.RuleName = ruleName
	}
	if snapshotDir != "" {
		config.SnapshotDir = snapshotDir
	}
	if useSDL {
		config.UseSDL = true
	}
}

func run(config utils.Config) error {
	// Initialize game
	engine, pool, renderer, stats, err := initializeGame(config)
	if err != nil {
		return err
	}

	var viewer *sdl.Viewer
	if config.UseSDL {
		if viewer, err = sdl.NewViewer(config.Width, config.Height, config.SDLScale); err != nil {
			return err
		}
		defer viewer.Close()
	}

	displayGameInfo(config, engine)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Main game loop
	var (
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
		snapshotTS     = time.Now().Format("20060102_150405")
		snapshotBase   = snapshotBaseName(config)
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				engine.Generation(), time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return nil
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		grid := engine.Grid()

		if viewer != nil {
			if viewer.PollQuit() {
				fmt.Println("\n🛑 Window closed, shutting down...")
				return nil
			}
			viewer.Render(grid)
		} else {
			renderer.Clear()
		}

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(engine, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		if viewer == nil {
			displayGameStatus(engine.Generation(), livingCells, density, status, stats, lastRestartGen)
			renderer.Display(grid)
		}

		if config.SnapshotDir != "" {
			if err = saveGenerationSnapshot(config, grid, snapshotBase, snapshotTS, engine.Generation()); err != nil {
				return err
			}
		}

		// Check for max generations limit
		if config.MaxGenerations > 0 && engine.Generation() >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, engine.Generation(), config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)

			// Return old grid to pool if using memory pooling
			model.GridToPool(grid, pool)

			newGrid, restartErr := restartGame(config)
			if restartErr != nil {
				return restartErr
			}
			engine.Reset(newGrid)
			lastRestartGen = 0
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			engine.Grid().InjectRandomLife(config.InjectionCount)
		}

		// Calculate next generation; the previous grid goes back to the pool
		prev := engine.Grid()
		engine.Step()
		model.GridToPool(prev, pool)

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
	model.GridToPool(engine.Grid(), pool)
	return nil
}
