package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyRejectsNegativeAmount(t *testing.T) {
	_, err := NewMoney(-1)
	assert.Error(t, err)
}

func TestZeroMoneyIsFree(t *testing.T) {
	assert.True(t, ZeroMoney().IsFree())

	paid, err := NewMoney(49.99)
	require.NoError(t, err)
	assert.False(t, paid.IsFree())
}

func TestMoneyArithmetic(t *testing.T) {
	a, err := NewMoney(30)
	require.NoError(t, err)
	b, err := NewMoney(20)
	require.NoError(t, err)

	sum := a.Add(b)
	assert.Equal(t, 50.0, sum.Value())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, 10.0, diff.Value())

	// Spending more than you have is rejected
	_, err = b.Subtract(a)
	assert.Error(t, err)
}

func TestMoneyEquals(t *testing.T) {
	a, _ := NewMoney(10)
	b, _ := NewMoney(10)
	c, _ := NewMoney(11)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
