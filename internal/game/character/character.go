// Package character defines the Character aggregate: the only mutable entity in
// the engine. A Character composes one race and one class descriptor at
// creation and consults them for armor class, critical range, leveling and
// alignment rules. Attack resolution is delegated to an injected resolver.
package character

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/charsim/internal/game/ability"
	"github.com/cory-johannsen/charsim/internal/game/inventory"
	"github.com/cory-johannsen/charsim/internal/game/ruleset"
)

// ErrEmptyName is returned by New when the character name is empty.
var ErrEmptyName = errors.New("character name must not be empty")

// ErrNoLegalAlignment is returned by New when no alignment satisfies both the
// race and class restrictions.
var ErrNoLegalAlignment = errors.New("no alignment satisfies the race and class restrictions")

// BaseArmorClass is the armor class of an unarmored character with no modifiers.
const BaseArmorClass = 10

// Character is a single player or non-player character.
//
// Invariant: hitPoints >= 0; level >= 1; experience >= 0; alignment satisfies
// the race and class restrictions.
type Character struct {
	id    uuid.UUID
	name  string
	race  *ruleset.RaceTraits
	class *ruleset.ClassTraits

	alignment  ruleset.Alignment
	abilities  ability.Scores
	hitPoints  int
	experience int
	level      int

	weapon    *inventory.Weapon
	armor     *inventory.Armor
	shield    *inventory.Armor
	inventory []*inventory.Item

	// lastAttacker is a non-owning reference to the most recent attacker.
	lastAttacker *Character

	resolver  AttackResolver
	listeners []Listener
}

type options struct {
	registry  *ruleset.Registry
	resolver  AttackResolver
	listeners []Listener
}

// Option configures New.
type Option func(*options)

// WithRegistry selects the trait tables used to resolve race and class tags.
// Defaults to ruleset.DefaultRegistry.
func WithRegistry(reg *ruleset.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithResolver sets the resolver used by Attack.
func WithResolver(r AttackResolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithListener registers l for death and level-up notifications.
func WithListener(l Listener) Option {
	return func(o *options) { o.listeners = append(o.listeners, l) }
}

// New creates a level 1 character. Racial ability adjustments are applied
// exactly once, here.
//
// Postcondition: Returns a Character or an error wrapping ErrEmptyName,
// ruleset.ErrUnknownRace, ruleset.ErrUnknownClass or ErrNoLegalAlignment.
func New(name string, race ruleset.Race, class ruleset.Class, opts ...Option) (*Character, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = ruleset.DefaultRegistry()
	}
	if class == "" {
		class = ruleset.ClassNone
	}

	rt, err := o.registry.Race(race)
	if err != nil {
		return nil, fmt.Errorf("creating character %q: %w", name, err)
	}
	ct, err := o.registry.Class(class)
	if err != nil {
		return nil, fmt.Errorf("creating character %q: %w", name, err)
	}

	scores := ability.NewScores()
	if err := rt.ApplyTo(scores); err != nil {
		return nil, fmt.Errorf("creating character %q: %w", name, err)
	}

	alignment := ct.InitialAlignment()
	if !ruleset.AlignmentAllowed(rt, ct, alignment) {
		alignment = ruleset.Neutral
		if !ruleset.AlignmentAllowed(rt, ct, alignment) {
			return nil, fmt.Errorf("creating character %q (%s %s): %w", name, race, class, ErrNoLegalAlignment)
		}
	}

	return &Character{
		id:        uuid.New(),
		name:      name,
		race:      rt,
		class:     ct,
		alignment: alignment,
		abilities: scores,
		hitPoints: ct.StartingHitPoints,
		level:     1,
		resolver:  o.resolver,
		listeners: o.listeners,
	}, nil
}

// ID returns the character's unique identifier.
func (c *Character) ID() uuid.UUID { return c.id }

// Name returns the character's name.
func (c *Character) Name() string { return c.name }

// Race returns the character's race tag.
func (c *Character) Race() ruleset.Race { return c.race.ID }

// Class returns the character's class tag.
func (c *Character) Class() ruleset.Class { return c.class.ID }

// RaceTraits returns the race descriptor the character was created with.
func (c *Character) RaceTraits() *ruleset.RaceTraits { return c.race }

// ClassTraits returns the class descriptor the character was created with.
func (c *Character) ClassTraits() *ruleset.ClassTraits { return c.class }

// Alignment returns the current alignment.
func (c *Character) Alignment() ruleset.Alignment { return c.alignment }

// Abilities returns the character's ability scores. The returned Scores share
// storage with the character, so Set and Add on it mutate the character.
func (c *Character) Abilities() ability.Scores { return c.abilities }

// AbilityModifier returns the modifier for the named ability.
//
// Postcondition: Returns an error wrapping ability.ErrInvalidAbilityKind for unknown names.
func (c *Character) AbilityModifier(name string) (int, error) {
	k, err := ability.Parse(name)
	if err != nil {
		return 0, err
	}
	return c.abilities.Modifier(k)
}

// HitPoints returns the current hit points.
func (c *Character) HitPoints() int { return c.hitPoints }

// Experience returns the accumulated experience.
func (c *Character) Experience() int { return c.experience }

// Level returns the current level.
func (c *Character) Level() int { return c.level }

// IsDead reports whether hit points have reached zero.
func (c *Character) IsDead() bool { return c.hitPoints == 0 }

// LastAttacker returns the most recent attacker, or nil.
func (c *Character) LastAttacker() *Character { return c.lastAttacker }

// SetLastAttacker records attacker as the most recent attacker. nil clears it.
func (c *Character) SetLastAttacker(attacker *Character) { c.lastAttacker = attacker }

// AddListener registers l for death and level-up notifications.
func (c *Character) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// TakeDamage reduces hit points by amount, flooring at zero. Negative amounts
// are treated as zero. Listeners are notified once, on the transition to zero.
//
// Postcondition: HitPoints() >= 0.
func (c *Character) TakeDamage(amount int) {
	if amount <= 0 || c.hitPoints == 0 {
		return
	}
	c.hitPoints -= amount
	if c.hitPoints <= 0 {
		c.hitPoints = 0
		for _, l := range c.listeners {
			l.CharacterDied(c)
		}
	}
}

// Attack resolves one attack against target and reports whether it hit.
//
// Precondition: target must be non-nil and the character must have been
// created WithResolver.
func (c *Character) Attack(target *Character) bool {
	if target == nil {
		panic("character: Attack precondition violated: target must be non-nil")
	}
	if c.resolver == nil {
		panic("character: Attack precondition violated: no resolver configured for " + c.name)
	}
	return c.resolver.Resolve(c, target)
}

// String returns a one-line summary, e.g. "Gimli (dwarf fighter) L1 HP 10 AC 10".
func (c *Character) String() string {
	return fmt.Sprintf("%s (%s %s) L%d HP %d AC %d", c.name, c.race.ID, c.class.ID, c.level, c.hitPoints, c.ArmorClass())
}
