package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/charsim/internal/game/ability"
	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/character/mocks"
	"github.com/cory-johannsen/charsim/internal/game/combat"
	"github.com/cory-johannsen/charsim/internal/game/dice"
	"github.com/cory-johannsen/charsim/internal/game/inventory"
	"github.com/cory-johannsen/charsim/internal/game/ruleset"
)

func newResolver(t *testing.T, faces ...int) *combat.Resolver {
	t.Helper()
	logger := zaptest.NewLogger(t)
	return combat.NewResolver(dice.NewLoggedRoller(dice.NewSequenceSource(faces...), logger), logger)
}

func mustNew(t *testing.T, name string, race ruleset.Race, class ruleset.Class, opts ...character.Option) *character.Character {
	t.Helper()
	c, err := character.New(name, race, class, opts...)
	require.NoError(t, err)
	return c
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "miss", combat.Miss.String())
	assert.Equal(t, "hit", combat.Hit.String())
	assert.Equal(t, "critical hit", combat.CriticalHit.String())
	assert.Equal(t, "unknown", combat.Outcome(9).String())
}

func TestNewResolver_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { combat.NewResolver(nil, zap.NewNop()) })
}

// A base character with strength 15 rolling 10 against armor class 12 hits
// for 1 + 2 damage.
func TestAttack_BaseCharacterHit(t *testing.T) {
	r := newResolver(t, 10)
	attacker := mustNew(t, "A", ruleset.Human, ruleset.ClassNone)
	require.NoError(t, attacker.Abilities().Set(ability.Strength, 15))
	defender := mustNew(t, "D", ruleset.Human, ruleset.ClassNone)
	defender.EquipArmor(inventory.NewArmor("Leather", 2))
	require.Equal(t, 12, defender.ArmorClass())

	res := r.Attack(attacker, defender)
	assert.Equal(t, 10, res.Roll)
	assert.Equal(t, 2, res.AttackBonus)
	assert.Equal(t, 12, res.TargetArmorClass)
	assert.Equal(t, combat.Hit, res.Outcome)
	assert.Equal(t, 3, res.Damage)
	assert.Equal(t, 2, defender.HitPoints())
	assert.Equal(t, combat.ExperiencePerHit, attacker.Experience())
	assert.Same(t, attacker, defender.LastAttacker())
}

// A natural 20 always hits and a fighter doubles damage.
func TestAttack_FighterCritical(t *testing.T) {
	r := newResolver(t, 20)
	attacker := mustNew(t, "F", ruleset.Human, ruleset.Fighter)
	defender := mustNew(t, "D", ruleset.Human, ruleset.Fighter)
	defender.EquipArmor(inventory.NewArmor("Mithril", 40))

	res := r.Attack(attacker, defender)
	assert.Equal(t, combat.CriticalHit, res.Outcome)
	assert.Equal(t, 2, res.Multiplier)
	assert.Equal(t, 2, res.Damage)
	assert.Equal(t, 8, defender.HitPoints())
}

func TestAttack_MissChangesNothing(t *testing.T) {
	r := newResolver(t, 1)
	attacker := mustNew(t, "A", ruleset.Human, ruleset.ClassNone)
	defender := mustNew(t, "D", ruleset.Human, ruleset.ClassNone)

	res := r.Attack(attacker, defender)
	assert.False(t, res.Hit())
	assert.Equal(t, 0, res.Damage)
	assert.Equal(t, 5, defender.HitPoints())
	assert.Equal(t, 0, attacker.Experience())
	assert.Same(t, attacker, defender.LastAttacker(), "last attacker is recorded on a miss too")
}

func TestAttack_MinimumDamage(t *testing.T) {
	r := newResolver(t, 20)
	attacker := mustNew(t, "Weakling", ruleset.Human, ruleset.ClassNone)
	require.NoError(t, attacker.Abilities().Set(ability.Strength, 3))
	defender := mustNew(t, "D", ruleset.Human, ruleset.ClassNone)

	res := r.Attack(attacker, defender)
	assert.True(t, res.Hit())
	assert.Equal(t, 1, res.Damage)
	assert.Equal(t, 4, defender.HitPoints())
}

func TestAttack_ElfCriticalRange(t *testing.T) {
	r := newResolver(t, 19)
	attacker := mustNew(t, "Legolas", ruleset.Elf, ruleset.Fighter)
	defender := mustNew(t, "D", ruleset.Human, ruleset.ClassNone)
	defender.EquipArmor(inventory.NewArmor("Mithril", 40))

	res := r.Attack(attacker, defender)
	assert.Equal(t, combat.CriticalHit, res.Outcome)

	human := mustNew(t, "H", ruleset.Human, ruleset.Fighter)
	assert.False(t, newResolver(t, 19).Attack(human, defender).Hit())
}

func TestAttack_BaseCharacterUsesWeapon(t *testing.T) {
	axe := inventory.NewWeapon("Greataxe", 6, 1, 1).AddProperty(inventory.PropertyCriticalMultiplier, 3)

	attacker := mustNew(t, "A", ruleset.Human, ruleset.ClassNone)
	attacker.EquipWeapon(axe)
	defender := mustNew(t, "D", ruleset.Human, ruleset.Fighter)
	assert.Equal(t, 1, combat.AttackBonus(attacker, defender))
	assert.Equal(t, 7, combat.BaseDamage(attacker, defender))
	assert.Equal(t, 3, combat.CriticalMultiplier(attacker, defender))

	res := newResolver(t, 20).Attack(attacker, defender)
	assert.Equal(t, 21, res.Damage)
	assert.Equal(t, 0, defender.HitPoints())
	assert.True(t, defender.IsDead())
}

func TestAttack_ClassesIgnoreWeapon(t *testing.T) {
	axe := inventory.NewWeapon("Greataxe", 6, 1, 1).AddProperty(inventory.PropertyCriticalMultiplier, 3)
	defender := mustNew(t, "D", ruleset.Human, ruleset.ClassNone)

	for _, class := range []ruleset.Class{ruleset.Fighter, ruleset.Rogue, ruleset.Monk, ruleset.Paladin} {
		attacker := mustNew(t, "A", ruleset.Human, class)
		before := combat.BaseDamage(attacker, defender)
		attacker.EquipWeapon(axe)
		assert.Equal(t, before, combat.BaseDamage(attacker, defender), class)
	}
}

func TestDamageTable(t *testing.T) {
	defender := mustNew(t, "D", ruleset.Human, ruleset.ClassNone)
	cases := []struct {
		class      ruleset.Class
		damage     int
		multiplier int
		bonus      int
	}{
		{ruleset.ClassNone, 1, 2, 0},
		{ruleset.Fighter, 1, 2, 1},
		{ruleset.Rogue, 1, 3, 0},
		{ruleset.Monk, 3, 2, 0},
		{ruleset.Paladin, 1, 2, 1},
	}
	for _, tc := range cases {
		attacker := mustNew(t, "A", ruleset.Human, tc.class)
		assert.Equal(t, tc.damage, combat.BaseDamage(attacker, defender), tc.class)
		assert.Equal(t, tc.multiplier, combat.CriticalMultiplier(attacker, defender), tc.class)
		assert.Equal(t, tc.bonus, combat.AttackBonus(attacker, defender), tc.class)
	}
}

func TestAttack_PaladinBanesEvil(t *testing.T) {
	paladin := mustNew(t, "Uther", ruleset.Human, ruleset.Paladin)
	villain := mustNew(t, "Arthas", ruleset.Human, ruleset.Fighter)
	require.True(t, villain.SetAlignment(ruleset.Evil))

	assert.Equal(t, 3, combat.BaseDamage(paladin, villain))
	assert.Equal(t, 3, combat.CriticalMultiplier(paladin, villain))

	res := newResolver(t, 20).Attack(paladin, villain)
	assert.Equal(t, 9, res.Damage)
	assert.Equal(t, 1, villain.HitPoints())
}

func TestAttack_RogueBypassesDexterity(t *testing.T) {
	rogue := mustNew(t, "Garrett", ruleset.Human, ruleset.Rogue)
	fighter := mustNew(t, "F", ruleset.Human, ruleset.Fighter)
	nimble := mustNew(t, "N", ruleset.Human, ruleset.ClassNone)
	require.NoError(t, nimble.Abilities().Set(ability.Dexterity, 14))

	assert.Equal(t, 12, nimble.ArmorClass())
	assert.Equal(t, 10, combat.TargetArmorClass(rogue, nimble))
	assert.Equal(t, 12, combat.TargetArmorClass(fighter, nimble))

	clumsy := mustNew(t, "C", ruleset.Human, ruleset.ClassNone)
	require.NoError(t, clumsy.Abilities().Set(ability.Dexterity, 6))
	assert.Equal(t, clumsy.ArmorClass(), combat.TargetArmorClass(rogue, clumsy), "negative dexterity is not subtracted")
}

func TestAttack_DwarfFoeBonusAgainstOrcs(t *testing.T) {
	dwarf := mustNew(t, "Gimli", ruleset.Dwarf, ruleset.ClassNone)
	orc := mustNew(t, "Grok", ruleset.Orc, ruleset.ClassNone)
	human := mustNew(t, "Bob", ruleset.Human, ruleset.ClassNone)

	assert.Equal(t, 2, combat.AttackBonus(dwarf, orc))
	assert.Equal(t, 0, combat.AttackBonus(dwarf, human))

	res := newResolver(t, 10).Attack(dwarf, orc)
	assert.Equal(t, 12, res.TargetArmorClass)
	assert.True(t, res.Hit(), "10 + 2 meets the orc's armor class of 12")
}

func TestAttack_RecordsLastAttackerForWaryBonus(t *testing.T) {
	orc := mustNew(t, "Grok", ruleset.Orc, ruleset.ClassNone)
	elf := mustNew(t, "Legolas", ruleset.Elf, ruleset.ClassNone)
	require.Equal(t, 10, elf.ArmorClass())

	newResolver(t, 1).Attack(orc, elf)
	assert.Equal(t, 12, elf.ArmorClass())
}

func TestAttack_DeathListenerSeesKiller(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mocks.NewMockListener(ctrl)
	killer := mustNew(t, "Grok", ruleset.Orc, ruleset.Fighter)
	victim := mustNew(t, "Bob", ruleset.Human, ruleset.ClassNone, character.WithListener(l))
	victim.TakeDamage(4)

	l.EXPECT().CharacterDied(victim).Do(func(c *character.Character) {
		assert.Same(t, killer, c.LastAttacker())
	})
	assert.True(t, newResolver(t, 20).Attack(killer, victim).Hit())
	assert.True(t, victim.IsDead())
}

func TestAttack_ViaCharacter(t *testing.T) {
	r := newResolver(t, 20, 1)
	a := mustNew(t, "A", ruleset.Human, ruleset.Fighter, character.WithResolver(r))
	d := mustNew(t, "D", ruleset.Human, ruleset.Fighter)
	assert.True(t, a.Attack(d))
	assert.False(t, a.Attack(d))
}

func TestAttack_LogsResolution(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	r := combat.NewResolver(dice.NewLoggedRoller(dice.NewSequenceSource(15), logger), logger)
	a := mustNew(t, "Alice", ruleset.Human, ruleset.Fighter)
	d := mustNew(t, "Bob", ruleset.Human, ruleset.Fighter)

	r.Attack(a, d)
	entries := logs.FilterMessage("attack resolved").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Alice", fields["attacker"])
	assert.Equal(t, "Bob", fields["defender"])
	assert.Equal(t, int64(15), fields["roll"])
	assert.Equal(t, "hit", fields["outcome"])
	assert.Equal(t, 1, logs.FilterMessage("dice roll").Len())
}

func TestAttack_Property_Invariants(t *testing.T) {
	classes := ruleset.DefaultRegistry().Classes()
	races := ruleset.DefaultRegistry().Races()
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		logger := zap.NewNop()
		r := combat.NewResolver(dice.NewLoggedRoller(dice.NewSeededSource(seed), logger), logger)
		a, err := character.New("A", rapid.SampledFrom(races).Draw(rt, "raceA"), rapid.SampledFrom(classes).Draw(rt, "classA"))
		require.NoError(rt, err)
		d, err := character.New("D", rapid.SampledFrom(races).Draw(rt, "raceD"), rapid.SampledFrom(classes).Draw(rt, "classD"))
		require.NoError(rt, err)

		n := rapid.IntRange(1, 30).Draw(rt, "attacks")
		for range n {
			hpBefore, xpBefore := d.HitPoints(), a.Experience()
			res := r.Attack(a, d)
			if res.Hit() {
				if res.Damage < 1 {
					rt.Fatalf("hit dealt %d damage", res.Damage)
				}
				if a.Experience() != xpBefore+combat.ExperiencePerHit {
					rt.Fatalf("experience %d, want %d", a.Experience(), xpBefore+combat.ExperiencePerHit)
				}
			} else if d.HitPoints() != hpBefore || a.Experience() != xpBefore {
				rt.Fatal("miss changed state")
			}
			if res.Roll >= a.CriticalRange() && !res.Hit() {
				rt.Fatalf("roll %d in critical range missed", res.Roll)
			}
			if d.HitPoints() < 0 {
				rt.Fatalf("hit points went negative: %d", d.HitPoints())
			}
		}
	})
}
