package combat

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/charsim/internal/game/ability"
	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/dice"
)

// Resolver resolves attacks using a logged dice roller. It satisfies
// character.AttackResolver.
type Resolver struct {
	roller *dice.Roller
	logger *zap.Logger
}

var _ character.AttackResolver = (*Resolver)(nil)

// NewResolver creates a Resolver.
//
// Precondition: roller and logger must be non-nil.
func NewResolver(roller *dice.Roller, logger *zap.Logger) *Resolver {
	if roller == nil || logger == nil {
		panic("combat: NewResolver precondition violated: roller and logger must be non-nil")
	}
	return &Resolver{roller: roller, logger: logger}
}

// Resolve performs Attack and reports whether it hit.
func (r *Resolver) Resolve(attacker, defender *character.Character) bool {
	return r.Attack(attacker, defender).Hit()
}

// Attack rolls a d20 for attacker against defender and applies the result.
// On a hit the defender takes damage and the attacker gains ExperiencePerHit.
// Hit or miss, attacker becomes the defender's last attacker.
//
// Precondition: attacker and defender must be non-nil.
// Postcondition: Returns a fully populated AttackResult.
func (r *Resolver) Attack(attacker, defender *character.Character) AttackResult {
	if attacker == nil || defender == nil {
		panic("combat: Attack precondition violated: attacker and defender must be non-nil")
	}

	roll := r.roller.D20()
	res := AttackResult{
		AttackerID:       attacker.ID(),
		DefenderID:       defender.ID(),
		Roll:             roll,
		AttackBonus:      AttackBonus(attacker, defender),
		TargetArmorClass: TargetArmorClass(attacker, defender),
		Multiplier:       1,
	}

	critical := roll >= attacker.CriticalRange()
	switch {
	case critical:
		res.Outcome = CriticalHit
		res.Multiplier = CriticalMultiplier(attacker, defender)
	case roll+res.AttackBonus >= res.TargetArmorClass:
		res.Outcome = Hit
	default:
		res.Outcome = Miss
	}

	// Recorded before damage so death listeners see the killer; the armor
	// class for this attack is already fixed.
	defender.SetLastAttacker(attacker)
	if res.Hit() {
		res.Damage = max(1, BaseDamage(attacker, defender)*res.Multiplier)
		defender.TakeDamage(res.Damage)
		attacker.GainExperience(ExperiencePerHit)
	}

	r.logger.Debug("attack resolved",
		zap.String("attacker", attacker.Name()),
		zap.Stringer("attacker_id", res.AttackerID),
		zap.String("defender", defender.Name()),
		zap.Stringer("defender_id", res.DefenderID),
		zap.Int("roll", res.Roll),
		zap.Int("attack_bonus", res.AttackBonus),
		zap.Int("target_ac", res.TargetArmorClass),
		zap.Stringer("outcome", res.Outcome),
		zap.Int("damage", res.Damage),
		zap.Int("defender_hp", defender.HitPoints()),
	)
	return res
}

// AttackBonus returns the bonus attacker adds to the d20 against defender:
// the class bonus, the equipped weapon's bonus for weapon-using classes, and
// any racial foe bonus.
func AttackBonus(attacker, defender *character.Character) int {
	class := attacker.ClassTraits()
	bonus := class.AttackBonus(attacker.Abilities(), attacker.Level())
	if w := attacker.Weapon(); class.UsesWeapon && w != nil {
		bonus += w.AttackBonus
	}
	return bonus + attacker.RaceTraits().AttackBonusAgainst(defender.Race())
}

// TargetArmorClass returns the armor class attacker must meet to hit defender.
func TargetArmorClass(attacker, defender *character.Character) int {
	return attacker.ClassTraits().TargetArmorClass(defender.ArmorClass(), defender.Abilities().Mod(ability.Dexterity))
}

// BaseDamage returns attacker's damage against defender before any critical
// multiplier or minimum is applied.
func BaseDamage(attacker, defender *character.Character) int {
	class := attacker.ClassTraits()
	dmg := class.BaseDamage
	if w := attacker.Weapon(); class.UsesWeapon && w != nil {
		dmg = w.BaseDamage + w.DamageBonus
	}
	dmg += class.DamageAbilityModifier(attacker.Abilities())
	return dmg + class.DamageBonusAgainst(defender.Alignment())
}

// CriticalMultiplier returns the damage multiplier attacker applies on a
// critical hit against defender.
func CriticalMultiplier(attacker, defender *character.Character) int {
	class := attacker.ClassTraits()
	if w := attacker.Weapon(); class.UsesWeapon && w != nil {
		if m, ok := w.CriticalMultiplier(); ok {
			return m
		}
	}
	return class.CriticalMultiplierAgainst(defender.Alignment())
}
