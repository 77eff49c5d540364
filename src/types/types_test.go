package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeEqual(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a, b  Type
		match bool
	}{
		{Int, Int, true},
		{Bool, Bool, true},
		{Int, Bool, false},
		{Bool, Int, false},
		{Int, &Simple{Name: NameInt}, true},
		{NewArrow(Int, Int), NewArrow(Int, Int), true},
		{NewArrow(Int, Bool), NewArrow(Int, Int), false},
		{NewArrow(Bool, Int), NewArrow(Int, Int), false},
		{NewArrow(Int, Int), Int, false},
		{Int, NewArrow(Int, Int), false},
		{NewArrow(NewArrow(Int, Bool), Int), NewArrow(NewArrow(Int, Bool), Int), true},
		{NewArrow(NewArrow(Int, Bool), Int), NewArrow(Int, NewArrow(Bool, Int)), false},
		{NewArrow(Int, NewArrow(Bool, Int)), NewArrow(Int, NewArrow(Bool, Int)), true},
		{nil, Int, false},
		{nil, nil, true},
	}

	for i, tc := range cases {
		assert.Equal(t, tc.match, Equal(tc.a, tc.b), "[%v] %v compared to %v", i, tc.a, tc.b)
		assert.Equal(t, tc.match, Equal(tc.b, tc.a), "[%v] %v compared to %v", i, tc.b, tc.a)
	}
}

func TestTypeString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		defn     Type
		expected string
	}{
		{Int, NameInt},
		{Bool, NameBool},
		{NewArrow(Int, Int), "int -> int"},
		{NewArrow(Int, NewArrow(Bool, Int)), "int -> bool -> int"},
		{NewArrow(NewArrow(Int, Bool), Int), "(int -> bool) -> int"},
		{NewArrow(NewArrow(Int, Bool), NewArrow(Int, Bool)), "(int -> bool) -> int -> bool"},
		{NewArrow(Int, NewArrow(NewArrow(Int, Int), Bool)), "int -> (int -> int) -> bool"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.defn.String())
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	defn, ok := Resolve("int")
	assert.True(t, ok)
	assert.Equal(t, Int, defn)

	defn, ok = Resolve("bool")
	assert.True(t, ok)
	assert.Equal(t, Bool, defn)

	_, ok = Resolve("float")
	assert.False(t, ok)
}
