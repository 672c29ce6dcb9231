package model

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	snapshotAlive = '*'
	snapshotDead  = '.'

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Get(x, y) {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

// Snapshot serializes the grid as text, one row per line, '*' for alive
// and '.' for dead.
func Snapshot(g *Grid) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Get(x, y) {
				sb.WriteByte(snapshotAlive)
			} else {
				sb.WriteByte(snapshotDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SaveSnapshot writes the grid snapshot to outPath, creating parent
// directories as needed.
func SaveSnapshot(g *Grid, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errors.Wrapf(err, "[SaveSnapshot] failed to create snapshot dir for: %+v", outPath)
	}

	if err := os.WriteFile(outPath, []byte(Snapshot(g)), 0o644); err != nil {
		return errors.Wrapf(err, "[SaveSnapshot] failed to write snapshot: %+v", outPath)
	}

	return nil
}
