package dfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danlomeli/verilator/dfg"
)

type mark struct {
	seen  bool
	order int
}

func TestUserData_SessionLifecycle(t *testing.T) {
	f := newFixture(t, "scratch")
	a := f.varv("a")
	b := f.varv("b")

	scope := f.g.UserDataInUse()
	dfg.UserData[mark](a).seen = true
	dfg.UserData[mark](a).order = 3

	// Same session, same storage.
	require.True(t, dfg.UserData[mark](a).seen)
	require.Equal(t, 3, dfg.UserData[mark](a).order)

	// Untouched vertices lazily zero-initialize.
	require.False(t, dfg.UserData[mark](b).seen)
	scope.Release()

	// A fresh session sees clean slots without any graph walk.
	scope = f.g.UserDataInUse()
	defer scope.Release()
	require.False(t, dfg.UserData[mark](a).seen)
	require.Equal(t, 0, dfg.UserData[mark](a).order)
}

func TestUserData_WithoutSessionViolatesContract(t *testing.T) {
	f := newFixture(t, "noscope")
	a := f.varv("a")
	requireContractPanic(t, func() { dfg.UserData[mark](a) })
}

func TestUserData_ReentrantAcquireViolatesContract(t *testing.T) {
	f := newFixture(t, "reentrant")
	scope := f.g.UserDataInUse()
	defer scope.Release()
	requireContractPanic(t, func() { f.g.UserDataInUse() })
}

func TestUserData_ReleaseIsIdempotent(t *testing.T) {
	f := newFixture(t, "idempotent")
	scope := f.g.UserDataInUse()
	scope.Release()
	scope.Release()

	// The graph is free for the next session.
	next := f.g.UserDataInUse()
	next.Release()
}

func TestUserData_ConflictingTypesViolateContract(t *testing.T) {
	f := newFixture(t, "conflict")
	a := f.varv("a")
	scope := f.g.UserDataInUse()
	defer scope.Release()

	dfg.UserData[mark](a)
	requireContractPanic(t, func() { dfg.UserData[int](a) })
}

func TestUserData_PerGraphSessions(t *testing.T) {
	f := newFixture(t, "pergraph")
	a := f.varv("a")
	other := dfg.NewGraph(f.mod, dfg.WithName("other"))
	b := dfg.NewVar(other, a.Variable())

	// Sessions are independent per graph.
	s1 := f.g.UserDataInUse()
	defer s1.Release()
	s2 := other.UserDataInUse()
	defer s2.Release()

	dfg.UserData[mark](a).seen = true
	require.False(t, dfg.UserData[mark](b).seen)
}
