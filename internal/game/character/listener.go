package character

//go:generate mockgen -destination=mocks/mock_listener.go -package=mocks -source=listener.go

// Listener receives state-change notifications from a Character. The engine
// never produces output itself; logging and scripting hang off this interface.
type Listener interface {
	// CharacterDied is called once when hit points reach zero.
	CharacterDied(c *Character)
	// CharacterLeveled is called after each level increment with the new level.
	CharacterLeveled(c *Character, level int)
}

// AttackResolver resolves a single attack of attacker against defender.
type AttackResolver interface {
	Resolve(attacker, defender *Character) bool
}
