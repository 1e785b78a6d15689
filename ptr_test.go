package tinyptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tinyptr"
)

// requirePanicsIs runs fn and requires that it panics with an error
// matching target via errors.Is.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

func TestPtr_RoundTrip(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		p := tinyptr.New(42)
		assert.Equal(t, 42, *p.Get())
		assert.Equal(t, 42, p.Take())
	})

	t.Run("string", func(t *testing.T) {
		p := tinyptr.New("Hello, World!")
		assert.Equal(t, "Hello, World!", *p.Get())
		assert.Equal(t, "Hello, World!", p.Take())
	})

	t.Run("struct", func(t *testing.T) {
		type pair struct{ a, b int }

		p := tinyptr.New(pair{a: 1, b: 2})
		p.Get().b = 7
		assert.Equal(t, pair{a: 1, b: 7}, p.Take())
	})

	t.Run("many live handles", func(t *testing.T) {
		ptrs := make([]tinyptr.Ptr[int], 100)
		for i := range ptrs {
			ptrs[i] = tinyptr.New(i)
		}
		for i, p := range ptrs {
			assert.Equal(t, i, *p.Get())
		}
		for i, p := range ptrs {
			assert.Equal(t, i, p.Take())
		}
	})
}

func TestPtr_UseAfterFree(t *testing.T) {
	p := tinyptr.New(1)
	require.Equal(t, 1, p.Take())

	requirePanicsIs(t, tinyptr.ErrSlotFreed, func() { p.Get() })
	requirePanicsIs(t, tinyptr.ErrSlotFreed, func() { p.Take() })
}

func TestPtr_Nil(t *testing.T) {
	var p tinyptr.Ptr[int]

	assert.True(t, p.IsNil())
	assert.Equal(t, tinyptr.ID(0), p.ID())
	requirePanicsIs(t, tinyptr.ErrSlotOutOfRange, func() { p.Get() })

	q := tinyptr.New(5)
	defer q.Take()
	assert.False(t, q.IsNil())
}

func TestPtr_Identity(t *testing.T) {
	p := tinyptr.New(1)
	q := tinyptr.New(1)
	defer p.Take()
	defer q.Take()

	assert.NotEqual(t, p.ID(), q.ID())
	assert.NotEqual(t, p, q, "distinct allocations compare unequal")

	copied := p
	assert.Equal(t, p, copied, "a copied handle is the same handle")
	assert.Equal(t, p.ID(), copied.ID())
}

func TestPtr_SlotReuse(t *testing.T) {
	p := tinyptr.New("first")
	id := p.ID()
	p.Take()

	q := tinyptr.New("second")
	defer q.Take()
	assert.Equal(t, id, q.ID(), "freed id is reissued to the next insert")
}

func TestReadStats(t *testing.T) {
	before := tinyptr.ReadStats()

	p := tinyptr.New(1)
	mid := tinyptr.ReadStats()
	assert.Equal(t, before.Live+1, mid.Live)
	assert.Equal(t, before.Inserts+1, mid.Inserts)

	p.Take()
	after := tinyptr.ReadStats()
	assert.Equal(t, before.Live, after.Live)
	assert.Equal(t, mid.Takes+1, after.Takes)
}
