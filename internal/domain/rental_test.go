package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func activeRental(returned bool) *Rental {
	return &Rental{
		Status: RentalStatusActive,
		Lines: []RentalLine{
			{ItemID: 1, Quantity: 2, Returned: returned},
			{ItemID: 2, Quantity: 1, Returned: returned},
		},
	}
}

func TestRentalTransitions(t *testing.T) {
	t.Run("ActiveToCancelled", func(t *testing.T) {
		r := activeRental(false)
		assert.NoError(t, r.Transition(RentalStatusCancelled))
		assert.Equal(t, RentalStatusCancelled, r.Status)
	})

	t.Run("ActiveToOverdue", func(t *testing.T) {
		r := activeRental(false)
		assert.NoError(t, r.Transition(RentalStatusOverdue))
	})

	t.Run("OverdueToFinishedAfterReturn", func(t *testing.T) {
		r := activeRental(true)
		r.Status = RentalStatusOverdue
		assert.NoError(t, r.Transition(RentalStatusFinished))
	})

	t.Run("FinishRequiresAllLinesReturned", func(t *testing.T) {
		r := activeRental(false)
		assert.ErrorIs(t, r.Transition(RentalStatusFinished), ErrLinesNotReturned)

		r.Lines[0].Returned = true
		assert.ErrorIs(t, r.Transition(RentalStatusFinished), ErrLinesNotReturned)

		r.Lines[1].Returned = true
		assert.NoError(t, r.Transition(RentalStatusFinished))
	})

	t.Run("TerminalStatesRejectEverything", func(t *testing.T) {
		for _, terminal := range []RentalStatus{RentalStatusFinished, RentalStatusCancelled} {
			r := activeRental(true)
			r.Status = terminal
			for _, to := range []RentalStatus{RentalStatusActive, RentalStatusFinished, RentalStatusOverdue, RentalStatusCancelled} {
				assert.ErrorIs(t, r.Transition(to), ErrTerminalState, "%s -> %s", terminal, to)
			}
			assert.Equal(t, terminal, r.Status, "status must not change on rejected transition")
		}
	})

	t.Run("OverdueBackToActiveRejected", func(t *testing.T) {
		r := activeRental(false)
		r.Status = RentalStatusOverdue
		assert.ErrorIs(t, r.Transition(RentalStatusActive), ErrInvalidTransition)
	})
}

func TestRentalStatusTerminal(t *testing.T) {
	assert.True(t, RentalStatusFinished.Terminal())
	assert.True(t, RentalStatusCancelled.Terminal())
	assert.False(t, RentalStatusActive.Terminal())
	assert.False(t, RentalStatusOverdue.Terminal())
}

func TestAllLinesReturned(t *testing.T) {
	t.Run("EmptyLinesIsFalse", func(t *testing.T) {
		r := &Rental{Status: RentalStatusActive}
		assert.False(t, r.AllLinesReturned())
	})

	t.Run("MixedIsFalse", func(t *testing.T) {
		r := activeRental(false)
		r.Lines[0].Returned = true
		assert.False(t, r.AllLinesReturned())
	})

	t.Run("AllReturnedIsTrue", func(t *testing.T) {
		assert.True(t, activeRental(true).AllLinesReturned())
	})
}

func TestRegisterReturn(t *testing.T) {
	t.Run("MarksLinesAndFinishes", func(t *testing.T) {
		r := activeRental(false)
		assert.NoError(t, r.RegisterReturn())
		assert.Equal(t, RentalStatusFinished, r.Status)
		for _, line := range r.Lines {
			assert.True(t, line.Returned)
		}
	})

	t.Run("WorksFromOverdue", func(t *testing.T) {
		r := activeRental(false)
		r.Status = RentalStatusOverdue
		assert.NoError(t, r.RegisterReturn())
		assert.Equal(t, RentalStatusFinished, r.Status)
	})

	t.Run("RejectedOnTerminal", func(t *testing.T) {
		r := activeRental(true)
		r.Status = RentalStatusCancelled
		assert.ErrorIs(t, r.RegisterReturn(), ErrTerminalState)
	})
}
