package tinyptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tinyptr"
	"github.com/hupe1980/tinyptr/testutil"
)

type tracked struct {
	*testutil.Finalizer
	n int
}

func TestBox_Deref(t *testing.T) {
	b := tinyptr.NewBox(42)

	assert.Equal(t, 42, *b.Get())

	*b.Get() += 5
	assert.Equal(t, 47, *b.Get())

	b.Drop()
}

func TestBox_DropFinalizesOnce(t *testing.T) {
	var fin testutil.Finalizer

	b := tinyptr.NewBox(tracked{Finalizer: &fin, n: 42})
	assert.Equal(t, 42, b.Get().n)

	b.Drop()
	assert.Equal(t, int64(1), fin.Closed())

	requirePanicsIs(t, tinyptr.ErrSlotFreed, func() { b.Drop() })
	assert.Equal(t, int64(1), fin.Closed())
}

func TestBox_CloneIndependence(t *testing.T) {
	var fin testutil.Finalizer

	b1 := tinyptr.NewBox(tracked{Finalizer: &fin, n: 1})
	b2 := b1.Clone()

	b2.Get().n = 99
	assert.Equal(t, 1, b1.Get().n, "mutating the clone must not touch the original")
	assert.Equal(t, 99, b2.Get().n)

	b1.Drop()
	assert.Equal(t, 99, b2.Get().n, "clone stays live after the original is freed")
	b2.Drop()

	assert.Equal(t, int64(2), fin.Closed(), "each box frees exactly once")
}

func TestBox_Take(t *testing.T) {
	var fin testutil.Finalizer

	b := tinyptr.NewBox(tracked{Finalizer: &fin, n: 7})
	v := b.Take()

	require.Equal(t, 7, v.n)
	assert.Equal(t, int64(0), fin.Closed(), "Take hands ownership back without finalizing")
}

func TestBox_Many(t *testing.T) {
	for i := 0; i < 100; i++ {
		b := tinyptr.NewBox(i)
		*b.Get() += i
		assert.Equal(t, i*2, *b.Get())
		b.Drop()
	}
}
