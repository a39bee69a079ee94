package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/charsim/internal/game/dice"
	"github.com/cory-johannsen/charsim/internal/scripting"
)

func runScript(t *testing.T, mgr *scripting.Manager, luaSrc, hook string, args ...lua.LValue) lua.LValue {
	t.Helper()
	require.NoError(t, mgr.Load(writeTempLua(t, "test.lua", luaSrc), 0))
	ret, err := mgr.CallHook(hook, args...)
	require.NoError(t, err)
	return ret
}

func TestEngineLog_AllLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	mgr := scripting.NewManager(dice.NewLoggedRoller(dice.NewCryptoSource(), logger), logger)
	defer mgr.Close()

	runScript(t, mgr, `
		function do_all_logs()
			engine.log.debug("d")
			engine.log.info("i")
			engine.log.warn("w")
			engine.log.error("e")
		end
	`, "do_all_logs")

	for _, msg := range []string{"d", "i", "w", "e"} {
		entries := logs.FilterMessage(msg).All()
		require.Len(t, entries, 1, msg)
		assert.Equal(t, "lua", entries[0].ContextMap()["source"])
	}
	assert.Equal(t, zap.WarnLevel, logs.FilterMessage("w").All()[0].Level)
}

func TestEngineDice_Roll_ReturnsTable(t *testing.T) {
	mgr, _ := newTestManager(t)
	ret := runScript(t, mgr, `
		function do_roll()
			local r = engine.dice.roll("1d6+2")
			if type(r.sum) ~= "number" then error("sum field missing") end
			if #r.faces ~= 1 or r.faces[1] ~= r.sum then error("faces field wrong") end
			if r.modifier ~= 2 then error("modifier field wrong") end
			return r.total
		end
	`, "do_roll")
	n, ok := ret.(lua.LNumber)
	require.True(t, ok, "expected LNumber, got %T", ret)
	assert.GreaterOrEqual(t, int(n), 3)
	assert.LessOrEqual(t, int(n), 8)
}

func TestEngineDice_Roll_InvalidExpressionIsRuntimeError(t *testing.T) {
	mgr, logs := newTestManager(t)
	ret := runScript(t, mgr, `
		function do_roll() return engine.dice.roll("banana") end
	`, "do_roll")
	assert.Equal(t, lua.LNil, ret)
	assert.Equal(t, 1, logs.FilterMessage("scripting: Lua runtime error").Len())
}

func TestProperty_DiceRoll_TotalEqualsDicePlusModifier(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "inv.lua", `
		function check_invariant(expr)
			local r = engine.dice.roll(expr)
			local sum = 0
			for _, f in ipairs(r.faces) do sum = sum + f end
			return sum == r.sum and r.total == r.sum + r.modifier
		end
	`), 0))
	rapid.Check(t, func(rt *rapid.T) {
		expr := rapid.SampledFrom([]string{"1d6", "2d6+1", "1d4-1", "4d6kh3", "1d20"}).Draw(rt, "expr")
		ret, err := mgr.CallHook("check_invariant", lua.LString(expr))
		require.NoError(rt, err)
		assert.Equal(rt, lua.LTrue, ret, "total must equal sum of faces + modifier for expr %s", expr)
	})
}

func TestEngineDice_Roll_OversizedExpressionRejectedUnderBudget(t *testing.T) {
	mgr, logs := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "big.lua", `
		function big() return engine.dice.roll("20000000d6").total end
		function small() return #engine.dice.roll("100d6").faces end
	`), 50))

	ret, err := mgr.CallHook("big")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
	entries := logs.FilterMessage("scripting: Lua runtime error").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "must be <=")

	ret, err = mgr.CallHook("small")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(dice.MaxDice), ret)
}
