package models

import "lms/apperrors"

// Money is a non-negative decimal amount. A zero amount means free.
type Money struct {
	amount float64
}

func NewMoney(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, apperrors.Validation("Amount cannot be negative!")
	}
	return Money{amount: amount}, nil
}

func ZeroMoney() Money {
	return Money{amount: 0}
}

func (m Money) Value() float64 {
	return m.amount
}

func (m Money) IsFree() bool {
	return m.amount == 0
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Subtract(other Money) (Money, error) {
	if m.amount < other.amount {
		return Money{}, apperrors.Validation("Insufficient amount!")
	}
	return Money{amount: m.amount - other.amount}, nil
}

func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}
