// Package scripting provides a sandboxed GopherLua execution environment for
// character event hooks. Scripts define global functions such as on_death and
// on_level_up; HookListener forwards character events to them.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the opcode budget for one hook call or one script
// file when the configuration leaves it at zero.
const DefaultInstructionLimit = 100_000

// safeLibs are the only standard libraries a sandboxed state opens.
var safeLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// unsafeGlobals are removed after the base library is opened.
var unsafeGlobals = []string{"dofile", "loadfile", "load", "collectgarbage", "require"}

// opBudget is a context that cancels itself once Done has been polled more
// than its allowance. The VM polls Done once per opcode when a context is set,
// so the allowance is an opcode count.
type opBudget struct {
	context.Context
	left   atomic.Int64
	cancel context.CancelFunc
}

func (b *opBudget) Done() <-chan struct{} {
	if b.left.Add(-1) < 0 {
		b.cancel()
	}
	return b.Context.Done()
}

func newOpBudget(ops int) *opBudget {
	ctx, cancel := context.WithCancel(context.Background())
	b := &opBudget{Context: ctx, cancel: cancel}
	b.left.Store(int64(ops))
	return b
}

// NewSandboxedState returns an LState that opens only the base, table, string
// and math libraries, has file loading and module globals removed, and is
// limited to instLimit opcodes until the next limitInstructions call.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: The caller owns the returned state and must Close it.
func NewSandboxedState(instLimit int) *lua.LState {
	if instLimit <= 0 {
		instLimit = DefaultInstructionLimit
	}
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range safeLibs {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	limitInstructions(L, instLimit)
	return L
}

// limitInstructions gives L a fresh budget of limit opcodes and returns a
// func releasing it.
//
// Precondition: limit > 0.
func limitInstructions(L *lua.LState, limit int) context.CancelFunc {
	b := newOpBudget(limit)
	L.SetContext(b)
	return b.cancel
}
