package env

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/tylang/src/types"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		e := Empty()
		assert.Equal(t, 0, e.Depth())
		_, found := e.Lookup("x")
		assert.False(t, found)
	})

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()
		var e Env
		_, found := e.Lookup("x")
		assert.False(t, found)
	})

	t.Run("innermost scope wins", func(t *testing.T) {
		t.Parallel()
		e := Empty()
		_, err := e.WithBindings([]Binding{Bind("x", types.Int), Bind("y", types.Int)}, func(e *Env) (types.Type, error) {
			return e.WithBindings([]Binding{Bind("x", types.Bool)}, func(e *Env) (types.Type, error) {
				typ, found := e.Lookup("x")
				require.True(t, found)
				assert.Equal(t, types.Bool, typ)
				typ, found = e.Lookup("y")
				require.True(t, found)
				assert.Equal(t, types.Int, typ)
				return typ, nil
			})
		})
		require.NoError(t, err)
	})

	t.Run("later duplicate in one scope wins", func(t *testing.T) {
		t.Parallel()
		e := Empty()
		_, err := e.WithBindings([]Binding{Bind("x", types.Int), Bind("x", types.Bool)}, func(e *Env) (types.Type, error) {
			typ, found := e.Lookup("x")
			require.True(t, found)
			assert.Equal(t, types.Bool, typ)
			return typ, nil
		})
		require.NoError(t, err)
	})
}

func TestWithBindings(t *testing.T) {
	t.Parallel()

	t.Run("returns the body result", func(t *testing.T) {
		t.Parallel()
		e := Empty()
		typ, err := e.WithBindings([]Binding{Bind("f", types.NewArrow(types.Int, types.Bool))}, func(e *Env) (types.Type, error) {
			typ, _ := e.Lookup("f")
			return typ, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "int -> bool", typ.String())
		assert.Equal(t, 0, e.Depth())
	})

	t.Run("restores after success", func(t *testing.T) {
		t.Parallel()
		e := Empty()
		_, err := e.WithBindings([]Binding{Bind("outer", types.Int)}, func(e *Env) (types.Type, error) {
			_, err := e.WithBindings([]Binding{Bind("inner", types.Int)}, func(e *Env) (types.Type, error) {
				assert.Equal(t, 2, e.Depth())
				return types.Int, nil
			})
			require.NoError(t, err)
			assert.Equal(t, 1, e.Depth())
			_, found := e.Lookup("inner")
			assert.False(t, found)
			_, found = e.Lookup("outer")
			assert.True(t, found)
			return types.Int, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 0, e.Depth())
	})

	t.Run("restores after failure", func(t *testing.T) {
		t.Parallel()
		e := Empty()
		failure := errors.New("failed")
		_, err := e.WithBindings([]Binding{Bind("x", types.Int)}, func(e *Env) (types.Type, error) {
			return nil, failure
		})
		require.ErrorIs(t, err, failure)
		assert.Equal(t, 0, e.Depth())
		_, found := e.Lookup("x")
		assert.False(t, found)
	})

	t.Run("restores after panic", func(t *testing.T) {
		t.Parallel()
		e := Empty()
		assert.Panics(t, func() {
			_, _ = e.WithBindings([]Binding{Bind("x", types.Int)}, func(e *Env) (types.Type, error) {
				panic("boom")
			})
		})
		assert.Equal(t, 0, e.Depth())
	})

	t.Run("empty scope still counts", func(t *testing.T) {
		t.Parallel()
		e := Empty()
		_, err := e.WithBindings(nil, func(e *Env) (types.Type, error) {
			assert.Equal(t, 1, e.Depth())
			return types.Bool, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 0, e.Depth())
	})
}
