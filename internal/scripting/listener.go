package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/charsim/internal/game/character"
)

// Hook names looked up in the loaded scripts.
const (
	HookDeath   = "on_death"
	HookLevelUp = "on_level_up"
)

// HookListener is a character.Listener that forwards events to Lua hooks:
//
//	on_death(c)
//	on_level_up(c, level)
//
// where c is a table snapshot of the character.
type HookListener struct {
	mgr *Manager
}

var _ character.Listener = (*HookListener)(nil)

// NewHookListener creates a HookListener dispatching through mgr.
//
// Precondition: mgr must be non-nil.
func NewHookListener(mgr *Manager) *HookListener {
	if mgr == nil {
		panic("scripting: NewHookListener precondition violated: mgr must be non-nil")
	}
	return &HookListener{mgr: mgr}
}

// CharacterDied calls on_death.
func (h *HookListener) CharacterDied(c *character.Character) {
	h.mgr.callHook(HookDeath, func(L *lua.LState) []lua.LValue { //nolint:errcheck
		return []lua.LValue{characterToTable(L, c)}
	})
}

// CharacterLeveled calls on_level_up.
func (h *HookListener) CharacterLeveled(c *character.Character, level int) {
	h.mgr.callHook(HookLevelUp, func(L *lua.LState) []lua.LValue { //nolint:errcheck
		return []lua.LValue{characterToTable(L, c), lua.LNumber(level)}
	})
}

// characterToTable snapshots c into a Lua table.
func characterToTable(L *lua.LState, c *character.Character) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "id", lua.LString(c.ID().String()))
	L.SetField(tbl, "name", lua.LString(c.Name()))
	L.SetField(tbl, "race", lua.LString(c.Race()))
	L.SetField(tbl, "class", lua.LString(c.Class()))
	L.SetField(tbl, "alignment", lua.LString(c.Alignment()))
	L.SetField(tbl, "level", lua.LNumber(c.Level()))
	L.SetField(tbl, "experience", lua.LNumber(c.Experience()))
	L.SetField(tbl, "hit_points", lua.LNumber(c.HitPoints()))
	L.SetField(tbl, "armor_class", lua.LNumber(c.ArmorClass()))
	if a := c.LastAttacker(); a != nil {
		L.SetField(tbl, "last_attacker", lua.LString(a.Name()))
	}
	return tbl
}
