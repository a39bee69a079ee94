package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// registerModules installs the engine global into L:
//
//	engine.log.debug|info|warn|error(msg)
//	engine.dice.roll(expr) -> {faces, sum, modifier, total}
//
// expr is bounded by dice.MaxDice and dice.MaxSides; larger expressions raise
// a Lua error.
//
// Precondition: L must be from NewSandboxedState.
func (m *Manager) registerModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetField(engine, "log", m.newLogModule(L))
	L.SetField(engine, "dice", m.newDiceModule(L))
	L.SetGlobal("engine", engine)
}

func (m *Manager) newLogModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	levels := map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
		"error": m.logger.Error,
	}
	for name, logFn := range levels {
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			logFn(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}
	return mod
}

func (m *Manager) newDiceModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "roll", L.NewFunction(func(L *lua.LState) int {
		result, err := m.roller.RollExpr(L.CheckString(1))
		if err != nil {
			L.RaiseError("engine.dice.roll: %s", err.Error())
			return 0
		}
		faces := L.NewTable()
		sum := 0
		for _, d := range result.Dice {
			sum += d
			faces.Append(lua.LNumber(d))
		}
		tbl := L.NewTable()
		L.SetField(tbl, "faces", faces)
		L.SetField(tbl, "sum", lua.LNumber(sum))
		L.SetField(tbl, "modifier", lua.LNumber(result.Modifier))
		L.SetField(tbl, "total", lua.LNumber(result.Total()))
		L.Push(tbl)
		return 1
	}))
	return mod
}
