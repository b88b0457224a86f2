// Package hdltype_test verifies descriptor interning and declaration
// vetting.
package hdltype_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danlomeli/verilator/hdltype"
)

func TestTable_PackedInterning(t *testing.T) {
	tbl := hdltype.NewTable()

	p8a, err := tbl.Packed(8)
	require.NoError(t, err)
	p8b, err := tbl.Packed(8)
	require.NoError(t, err)
	p16, err := tbl.Packed(16)
	require.NoError(t, err)

	require.Same(t, p8a, p8b, "same width, same descriptor")
	require.NotSame(t, p8a, p16)
	require.Equal(t, 8, p8a.Width())
}

func TestTable_UnpackedInterning(t *testing.T) {
	tbl := hdltype.NewTable()

	u1, err := tbl.Unpacked(8, 16)
	require.NoError(t, err)
	u2, err := tbl.Unpacked(8, 16)
	require.NoError(t, err)
	u3, err := tbl.Unpacked(8, 32)
	require.NoError(t, err)

	require.Same(t, u1, u2)
	require.NotSame(t, u1, u3)
	require.Equal(t, 16, u1.Size())

	// The element descriptor is itself interned in the same table.
	p8, err := tbl.Packed(8)
	require.NoError(t, err)
	require.Same(t, p8, u1.Elem())
}

func TestTable_Errors(t *testing.T) {
	tbl := hdltype.NewTable()

	_, err := tbl.Packed(0)
	require.ErrorIs(t, err, hdltype.ErrZeroWidth)
	_, err = tbl.Packed(-3)
	require.ErrorIs(t, err, hdltype.ErrZeroWidth)

	_, err = tbl.Unpacked(0, 4)
	require.ErrorIs(t, err, hdltype.ErrZeroWidth)
	_, err = tbl.Unpacked(8, 0)
	require.ErrorIs(t, err, hdltype.ErrBadArraySize)
}

func TestTable_MustPacked(t *testing.T) {
	tbl := hdltype.NewTable()
	require.Equal(t, 32, tbl.MustPacked(32).Width())
	require.Panics(t, func() { tbl.MustPacked(0) })
}

// TestTable_ConcurrentInterning hammers one table from many goroutines;
// every goroutine must observe the same descriptor pointer per width.
func TestTable_ConcurrentInterning(t *testing.T) {
	tbl := hdltype.NewTable()
	const goroutines = 16
	const widths = 8

	results := make([][]*hdltype.Packed, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			got := make([]*hdltype.Packed, widths)
			for w := 1; w <= widths; w++ {
				p, err := tbl.Packed(w)
				if err != nil {
					return // leave nil, the main goroutine fails on it
				}
				got[w-1] = p
			}
			results[slot] = got
		}(i)
	}
	wg.Wait()

	for w := 0; w < widths; w++ {
		want := results[0][w]
		require.NotNil(t, want)
		for i := 1; i < goroutines; i++ {
			require.Same(t, want, results[i][w], "goroutine %d width %d", i, w+1)
		}
	}
}

func TestTypeString(t *testing.T) {
	tbl := hdltype.NewTable()
	require.Equal(t, "logic", tbl.MustPacked(1).String())
	require.Equal(t, "logic [7:0]", tbl.MustPacked(8).String())

	u, err := tbl.Unpacked(8, 16)
	require.NoError(t, err)
	require.Equal(t, "logic [7:0] [0:15]", u.String())
}

func TestWidthOf(t *testing.T) {
	tbl := hdltype.NewTable()
	w, ok := hdltype.WidthOf(tbl.MustPacked(12))
	require.True(t, ok)
	require.Equal(t, 12, w)

	u, err := tbl.Unpacked(8, 4)
	require.NoError(t, err)
	_, ok = hdltype.WidthOf(u)
	require.False(t, ok)
}
