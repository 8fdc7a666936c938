package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gympoint-backend/internal/domain"
)

func TestForInscriptionStepLists(t *testing.T) {
	t.Run("PremiumHasSevenSteps", func(t *testing.T) {
		p := ForInscription(domain.PlanTierPremium)
		assert.Equal(t, []Step{StepCustomer, StepPlan, StepInstructor, StepSchedule, StepConfirm, StepPayment, StepDone}, p.Steps())
		assert.Equal(t, 7, p.Total())
	})

	t.Run("StandardSkipsInstructorAndSchedule", func(t *testing.T) {
		p := ForInscription(domain.PlanTierStandard)
		assert.Equal(t, []Step{StepCustomer, StepPlan, StepConfirm, StepPayment, StepDone}, p.Steps())
		assert.Equal(t, 5, p.Total())

		_, ok := p.Index(StepInstructor)
		assert.False(t, ok)
		_, ok = p.Index(StepSchedule)
		assert.False(t, ok)
	})

	t.Run("RentalPlan", func(t *testing.T) {
		p := ForRental()
		assert.Equal(t, []Step{StepCustomer, StepItems, StepConfirm, StepPayment, StepDone}, p.Steps())
	})
}

func TestNavigation(t *testing.T) {
	t.Run("PremiumForwardWalk", func(t *testing.T) {
		p := ForInscription(domain.PlanTierPremium)
		next, ok := p.Next(StepPlan)
		assert.True(t, ok)
		assert.Equal(t, StepInstructor, next)
	})

	t.Run("StandardSkipsSameStepsBothDirections", func(t *testing.T) {
		p := ForInscription(domain.PlanTierStandard)

		next, ok := p.Next(StepPlan)
		assert.True(t, ok)
		assert.Equal(t, StepConfirm, next, "forward skips instructor and schedule")

		prev, ok := p.Prev(StepConfirm)
		assert.True(t, ok)
		assert.Equal(t, StepPlan, prev, "backward skips the same steps")
	})

	t.Run("Boundaries", func(t *testing.T) {
		p := ForRental()
		_, ok := p.Prev(StepCustomer)
		assert.False(t, ok)
		_, ok = p.Next(StepDone)
		assert.False(t, ok)
	})

	t.Run("UnknownStep", func(t *testing.T) {
		p := ForRental()
		_, ok := p.Next(StepInstructor)
		assert.False(t, ok)
	})
}

func TestProgress(t *testing.T) {
	t.Run("PremiumConfirmIsFifthOfSeven", func(t *testing.T) {
		current, total, ok := ForInscription(domain.PlanTierPremium).Progress(StepConfirm)
		assert.True(t, ok)
		assert.Equal(t, 5, current)
		assert.Equal(t, 7, total)
	})

	t.Run("StandardConfirmIsThirdOfFive", func(t *testing.T) {
		current, total, ok := ForInscription(domain.PlanTierStandard).Progress(StepConfirm)
		assert.True(t, ok)
		assert.Equal(t, 3, current)
		assert.Equal(t, 5, total)
	})

	t.Run("StepOutsidePlan", func(t *testing.T) {
		_, _, ok := ForInscription(domain.PlanTierStandard).Progress(StepInstructor)
		assert.False(t, ok)
	})
}

func TestStepsReturnsCopy(t *testing.T) {
	p := ForRental()
	steps := p.Steps()
	steps[0] = StepDone
	assert.Equal(t, StepCustomer, p.Steps()[0])
}
