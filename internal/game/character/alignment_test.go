package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/charsim/internal/game/character"
	"github.com/cory-johannsen/charsim/internal/game/ruleset"
)

func TestSetAlignment_Table(t *testing.T) {
	cases := []struct {
		race  ruleset.Race
		class ruleset.Class
		to    ruleset.Alignment
		ok    bool
	}{
		{ruleset.Human, ruleset.ClassNone, ruleset.Evil, true},
		{ruleset.Human, ruleset.ClassNone, ruleset.Good, true},
		{ruleset.Human, ruleset.ClassNone, "Chaotic", false},
		{ruleset.Human, ruleset.Paladin, ruleset.Neutral, false},
		{ruleset.Human, ruleset.Paladin, ruleset.Evil, false},
		{ruleset.Human, ruleset.Rogue, ruleset.Good, false},
		{ruleset.Human, ruleset.Rogue, ruleset.Evil, true},
		{ruleset.Halfling, ruleset.ClassNone, ruleset.Evil, false},
		{ruleset.Halfling, ruleset.Rogue, ruleset.Evil, false},
		{ruleset.Halfling, ruleset.Paladin, ruleset.Good, true},
	}
	for _, tc := range cases {
		c := mustNew(t, "X", tc.race, tc.class)
		before := c.Alignment()
		got := c.SetAlignment(tc.to)
		assert.Equal(t, tc.ok, got, "%s %s -> %s", tc.race, tc.class, tc.to)
		if tc.ok {
			assert.Equal(t, tc.to, c.Alignment())
		} else {
			assert.Equal(t, before, c.Alignment(), "rejected change is a no-op")
		}
	}
}

func TestSetAlignment_Property_PaladinAlwaysGood(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c, err := character.New("Uther", ruleset.Human, ruleset.Paladin)
		if err != nil {
			rt.Fatal(err)
		}
		seq := rapid.SliceOf(rapid.SampledFrom([]ruleset.Alignment{
			ruleset.Good, ruleset.Evil, ruleset.Neutral, "", "Lawful",
		})).Draw(rt, "seq")
		for _, a := range seq {
			c.SetAlignment(a)
			if c.Alignment() != ruleset.Good {
				rt.Fatalf("paladin alignment became %q", c.Alignment())
			}
		}
	})
}

func TestSetAlignment_Property_HalflingNeverEvil(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		class := rapid.SampledFrom(ruleset.DefaultRegistry().Classes()).Draw(rt, "class")
		c, err := character.New("Frodo", ruleset.Halfling, class)
		if err != nil {
			rt.Fatal(err)
		}
		seq := rapid.SliceOf(rapid.SampledFrom([]ruleset.Alignment{
			ruleset.Good, ruleset.Evil, ruleset.Neutral,
		})).Draw(rt, "seq")
		for _, a := range seq {
			c.SetAlignment(a)
			if c.Alignment() == ruleset.Evil {
				rt.Fatal("halfling became evil")
			}
		}
	})
}
