// Package memspace_test contains unit tests for arenas and the Manager
// registry in the memspace package.
package memspace_test

import (
	"testing"

	"github.com/katalvlaran/sparsela/memspace"
	"github.com/stretchr/testify/require"
)

// TestSliceArenaAccounting verifies the allocate/release byte balance.
func TestSliceArenaAccounting(t *testing.T) {
	a := memspace.NewSliceArena() // unlimited host arena

	f, err := a.Floats(8) // 8 float64 ⇒ 64 bytes outstanding
	require.NoError(t, err)
	require.Len(t, f, 8)

	i, err := a.Ints(4) // 4 ints ⇒ 32 more bytes
	require.NoError(t, err)
	require.Len(t, i, 4)

	require.Equal(t, int64(96), a.InUse()) // 64 + 32 outstanding

	a.ReleaseFloats(f)
	a.ReleaseInts(i)
	require.Equal(t, int64(0), a.InUse()) // balanced release returns to zero
}

// TestSliceArenaNegativeLen ensures negative lengths are rejected.
func TestSliceArenaNegativeLen(t *testing.T) {
	a := memspace.NewSliceArena()

	_, err := a.Floats(-1)
	require.ErrorIs(t, err, memspace.ErrNegativeLen)

	_, err = a.Ints(-3)
	require.ErrorIs(t, err, memspace.ErrNegativeLen)
}

// TestBoundedArenaBudget ensures the byte budget is enforced.
func TestBoundedArenaBudget(t *testing.T) {
	a := memspace.NewBoundedArena(64) // room for exactly 8 float64

	f, err := a.Floats(8) // fills the budget fully
	require.NoError(t, err)

	_, err = a.Floats(1) // any further allocation must fail
	require.ErrorIs(t, err, memspace.ErrArenaExhausted)

	a.ReleaseFloats(f) // freeing makes room again
	_, err = a.Floats(2)
	require.NoError(t, err)
}

// TestManagerHostAlwaysRegistered verifies that the host space resolves on
// a fresh Manager, while unknown spaces return ErrUnknownSpace.
func TestManagerHostAlwaysRegistered(t *testing.T) {
	m := memspace.NewManager()

	_, err := m.Arena(memspace.Host)
	require.NoError(t, err)

	_, err = m.Arena("DEVICE") // never registered on this manager
	require.ErrorIs(t, err, memspace.ErrUnknownSpace)
}

// TestManagerRegisterAndCopy registers a device-like space and round-trips
// a buffer between spaces through the copy broker.
func TestManagerRegisterAndCopy(t *testing.T) {
	m := memspace.NewManager()
	require.ErrorIs(t, m.Register("DEVICE", nil), memspace.ErrNilArena)
	require.NoError(t, m.Register("DEVICE", memspace.NewSliceArena()))

	dev, err := m.Arena("DEVICE")
	require.NoError(t, err)

	src := []float64{1, 2, 3}
	dst, err := dev.Floats(3)
	require.NoError(t, err)

	require.NoError(t, m.CopyFloats(dst, src))
	require.Equal(t, src, dst)

	// length mismatch is rejected, never silently truncated
	require.ErrorIs(t, m.CopyFloats(dst[:2], src), memspace.ErrLengthMismatch)
}

// TestDefaultManagerSingleton ensures Default returns a stable instance.
func TestDefaultManagerSingleton(t *testing.T) {
	require.Same(t, memspace.Default(), memspace.Default())

	_, err := memspace.Default().Arena(memspace.Host)
	require.NoError(t, err)
}
