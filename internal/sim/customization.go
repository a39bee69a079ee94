package sim

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/charsim/internal/game/ability"
	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/ruleset"
)

// Customization adjusts a freshly created character before equipment is applied.
type Customization struct {
	// Alignment requests an alignment; empty keeps the class default.
	Alignment string `yaml:"alignment"`
	// Abilities overrides scores by ability name or three-letter label. The
	// values replace the racially adjusted scores.
	Abilities map[string]int `yaml:"abilities"`
}

// ParseAbilityOverrides parses "name=score" pairs such as "str=15".
func ParseAbilityOverrides(pairs []string) (map[string]int, error) {
	out := make(map[string]int, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("ability override %q: want name=score", p)
		}
		score, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("ability override %q: %w", p, err)
		}
		if _, err := ability.Lookup(name); err != nil {
			return nil, fmt.Errorf("ability override %q: %w", p, err)
		}
		out[strings.TrimSpace(name)] = score
	}
	return out, nil
}

// Apply sets the ability overrides, then requests the alignment through
// Character.SetAlignment. An alignment the race or class forbids is skipped
// with a warning, leaving the current alignment in place.
//
// Precondition: c and logger must be non-nil.
// Postcondition: Returns an error wrapping ability.ErrInvalidAbilityKind or
// ruleset.ErrInvalidAlignment for unparseable input; c is unchanged in that case.
func (cu Customization) Apply(c *character.Character, logger *zap.Logger) error {
	scores := make(map[ability.Kind]int, len(cu.Abilities))
	for name, score := range cu.Abilities {
		k, err := ability.Lookup(name)
		if err != nil {
			return fmt.Errorf("customizing %s: %w", c.Name(), err)
		}
		scores[k] = score
	}
	var alignment ruleset.Alignment
	if cu.Alignment != "" {
		a, err := ruleset.ParseAlignment(cu.Alignment)
		if err != nil {
			return fmt.Errorf("customizing %s: %w", c.Name(), err)
		}
		alignment = a
	}

	kinds := make([]ability.Kind, 0, len(scores))
	for k := range scores {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		if err := c.Abilities().Set(k, scores[k]); err != nil {
			return fmt.Errorf("customizing %s: %w", c.Name(), err)
		}
	}

	if alignment != "" && !c.SetAlignment(alignment) {
		logger.Warn("alignment rejected; keeping current",
			zap.String("character", c.Name()),
			zap.String("requested", string(alignment)),
			zap.String("current", string(c.Alignment())),
			zap.String("race", string(c.Race())),
			zap.String("class", string(c.Class())),
		)
	}
	return nil
}
