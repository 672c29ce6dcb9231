package rules

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// RuleFunc decides the next state of a cell from its live-neighbor count
// and its current state.
type RuleFunc func(neighbors int, alive bool) bool

var (
	registryMu sync.RWMutex
	registry   = map[string]RuleFunc{}
)

// Register makes a rule available under the given name. Registering the
// same name twice replaces the earlier rule.
func Register(name string, rule RuleFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = rule
}

// Get returns the rule registered under name.
func Get(name string) (RuleFunc, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	rule, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("[Get] unknown rule set: %q, registered: %v", name, names())
	}
	return rule, nil
}

// Names returns the registered rule names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules (B3/S23): (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// ApplyHighLifeRules applies the HighLife variant (B36/S23): same survival
// rule as Conway, but a dead cell with exactly 6 neighbors is also born.
func ApplyHighLifeRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3 || neighbors == 6
}

func init() {
	Register("conway", ApplyConwayRules)
	Register("highlife", ApplyHighLifeRules)
}
