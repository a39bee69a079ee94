package sim

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/combat"
)

// Ending explains why a duel stopped.
type Ending int

const (
	// KnockOut means one side reached zero hit points.
	KnockOut Ending = iota
	// RoundLimit means neither side fell within the round cap.
	RoundLimit
	// Cancelled means the context was done before the duel finished.
	Cancelled
)

// String returns a human-readable ending label.
func (e Ending) String() string {
	switch e {
	case KnockOut:
		return "knock-out"
	case RoundLimit:
		return "round limit"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Report summarizes a duel.
type Report struct {
	// Attacks lists every resolved attack in order.
	Attacks []combat.AttackResult
	// Rounds is the number of rounds started. A round is one attack from each side.
	Rounds int
	Ending Ending
	// Winner is the surviving character on KnockOut, otherwise nil.
	Winner *character.Character
}

// Arena runs duels with a single combat resolver.
type Arena struct {
	resolver *combat.Resolver
	logger   *zap.Logger
}

// NewArena creates an Arena.
//
// Precondition: resolver and logger must be non-nil.
func NewArena(resolver *combat.Resolver, logger *zap.Logger) *Arena {
	if resolver == nil || logger == nil {
		panic("sim: NewArena precondition violated: resolver and logger must be non-nil")
	}
	return &Arena{resolver: resolver, logger: logger}
}

// Duel alternates attacks, a first, until one side dies, maxRounds rounds have
// been fought, or ctx is done. ctx is checked before every attack.
//
// A duel involving an already dead character ends immediately without attacks.
//
// Precondition: a and b must be distinct and non-nil; maxRounds >= 1.
// Postcondition: On cancellation the partial report is returned with ctx.Err().
func (ar *Arena) Duel(ctx context.Context, a, b *character.Character, maxRounds int) (Report, error) {
	if a == nil || b == nil || a == b {
		panic("sim: Duel precondition violated: a and b must be distinct and non-nil")
	}
	if maxRounds < 1 {
		panic("sim: Duel precondition violated: maxRounds must be >= 1")
	}

	var rep Report
	switch {
	case a.IsDead() && b.IsDead():
		rep.Ending = KnockOut
		return rep, nil
	case a.IsDead():
		rep.Ending, rep.Winner = KnockOut, b
		return rep, nil
	case b.IsDead():
		rep.Ending, rep.Winner = KnockOut, a
		return rep, nil
	}
	pairs := [2][2]*character.Character{{a, b}, {b, a}}
	for rep.Rounds < maxRounds {
		rep.Rounds++
		for _, p := range pairs {
			if err := ctx.Err(); err != nil {
				rep.Ending = Cancelled
				return rep, err
			}
			attacker, defender := p[0], p[1]
			rep.Attacks = append(rep.Attacks, ar.resolver.Attack(attacker, defender))
			if defender.IsDead() {
				rep.Ending = KnockOut
				rep.Winner = attacker
				ar.logDone(rep)
				return rep, nil
			}
		}
	}
	rep.Ending = RoundLimit
	ar.logDone(rep)
	return rep, nil
}

func (ar *Arena) logDone(rep Report) {
	fields := []zap.Field{
		zap.Stringer("ending", rep.Ending),
		zap.Int("rounds", rep.Rounds),
		zap.Int("attacks", len(rep.Attacks)),
	}
	if rep.Winner != nil {
		fields = append(fields, zap.String("winner", rep.Winner.Name()))
	}
	ar.logger.Info("duel finished", fields...)
}
