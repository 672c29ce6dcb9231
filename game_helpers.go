package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golife/model"
	"golife/patterns"
	"golife/rules"
	"golife/sim"
	"golife/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*sim.Engine,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid, err := seedGrid(config)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	rule, err := rules.Get(config.RuleName)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	engine := sim.NewEngine(grid, rule, sim.WithPool(pool))
	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return engine, pool, renderer, stats, nil
}

// seedGrid builds the initial grid from the configured pattern file, or
// falls back to built-in patterns plus random life.
func seedGrid(config utils.Config) (*model.Grid, error) {
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, err
	}

	if config.PatternFile != "" {
		if err = patterns.Load(config.PatternFile, grid); err != nil {
			return nil, err
		}
		return grid, nil
	}

	grid.ResetWithInterestingPatterns(config)
	return grid, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, engine *sim.Engine) {
	grid := engine.Grid()
	fmt.Printf("Rule: %s | Memory Pool: %v | SDL: %v\n",
		config.RuleName, config.UseMemoryPool, config.UseSDL)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	engine *sim.Engine,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	grid := engine.Grid()
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	// Update performance stats
	stats.Update(engine.Generation(), livingCells, time.Since(lastFrameTime))

	// Check for stagnation
	isStagnant := engine.IsStagnant()

	// Display status
	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", engine.Generation())
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame handles the game restart logic
func restartGame(config utils.Config) (*model.Grid, error) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	grid, err := seedGrid(config)
	if err != nil {
		return nil, err
	}

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", grid.CountLivingCells())
	time.Sleep(2 * time.Second)

	return grid, nil
}

// snapshotBaseName derives the snapshot file prefix from the pattern file
// name, or "random" for randomly seeded boards.
func snapshotBaseName(config utils.Config) string {
	if config.PatternFile == "" {
		return "random"
	}
	base := filepath.Base(config.PatternFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// saveGenerationSnapshot writes the current grid under
// <base>_<rule>_gen<NNNN>_<timestamp>.txt in the snapshot directory.
func saveGenerationSnapshot(
	config utils.Config,
	grid *model.Grid,
	base, timestamp string,
	generation int,
) error {
	name := fmt.Sprintf("%s_%s_gen%04d_%s.txt", base, config.RuleName, generation, timestamp)
	return model.SaveSnapshot(grid, filepath.Join(config.SnapshotDir, name))
}
