package ability

import "fmt"

// Scores holds the six ability scores of a character.
//
// Invariant: the zero value is not usable; construct with NewScores.
type Scores struct {
	values map[Kind]int
}

// NewScores returns Scores with every ability at Baseline.
func NewScores() Scores {
	values := make(map[Kind]int, 6)
	for _, k := range All() {
		values[k] = Baseline
	}
	return Scores{values: values}
}

// Get returns the score for k.
//
// Postcondition: Returns an error wrapping ErrInvalidAbilityKind if k is not valid.
func (s Scores) Get(k Kind) (int, error) {
	if !k.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAbilityKind, string(k))
	}
	return s.values[k], nil
}

// Set overwrites the score for k.
func (s Scores) Set(k Kind, score int) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAbilityKind, string(k))
	}
	s.values[k] = score
	return nil
}

// Add adjusts the score for k by delta.
func (s Scores) Add(k Kind, delta int) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAbilityKind, string(k))
	}
	s.values[k] += delta
	return nil
}

// Modifier returns the modifier derived from the score for k.
func (s Scores) Modifier(k Kind) (int, error) {
	score, err := s.Get(k)
	if err != nil {
		return 0, err
	}
	return Modifier(score), nil
}

// Mod returns the modifier for one of the package's Kind constants.
//
// Precondition: k must be valid; an unknown kind is a programming error and panics.
func (s Scores) Mod(k Kind) int {
	m, err := s.Modifier(k)
	if err != nil {
		panic("ability: Scores.Mod precondition violated: " + err.Error())
	}
	return m
}

// Score is the panicking counterpart of Get for known kinds.
func (s Scores) Score(k Kind) int {
	v, err := s.Get(k)
	if err != nil {
		panic("ability: Scores.Score precondition violated: " + err.Error())
	}
	return v
}
