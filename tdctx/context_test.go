package tdctx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashford-lakes/hyperwidth/tdctx"
)

func TestContext_DeterministicForFixedSeed(t *testing.T) {
	a := tdctx.New(42)
	b := tdctx.New(42)
	require.Equal(t, a.Rand().Int63(), b.Rand().Int63())
}

func TestContext_ZeroSeedIsReproducibleDefault(t *testing.T) {
	a := tdctx.New(0)
	b := tdctx.New(0)
	require.Equal(t, a.Rand().Int63(), b.Rand().Int63())
}

func TestContext_TerminateIsObservable(t *testing.T) {
	c := tdctx.New(1)
	require.False(t, c.Cancelled())
	c.Terminate()
	require.True(t, c.Cancelled())
}

func TestContext_DeriveIsDeterministicPerStream(t *testing.T) {
	a := tdctx.New(7)
	b := tdctx.New(7)
	require.Equal(t, a.Derive(3).Int63(), b.Derive(3).Int63())
}

func TestAssert_PanicsOnlyWhenDebugEnabled(t *testing.T) {
	tdctx.DebugAssertions = false
	require.NotPanics(t, func() { tdctx.Assert(false, "x", "y") })

	tdctx.DebugAssertions = true
	defer func() { tdctx.DebugAssertions = false }()
	require.Panics(t, func() { tdctx.Assert(false, "x", "y") })
}
