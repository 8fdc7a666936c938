// Package wizard computes the ordered step list of a checkout workflow.
// Step plans are built once when the workflow variant is known, so step
// numbering never leaks into conditionals: forward and backward navigation
// skip exactly the same conditional steps.
package wizard

import "gympoint-backend/internal/domain"

type Step string

const (
	StepCustomer   Step = "CUSTOMER"
	StepItems      Step = "ITEMS"
	StepPlan       Step = "PLAN"
	StepInstructor Step = "INSTRUCTOR"
	StepSchedule   Step = "SCHEDULE"
	StepConfirm    Step = "CONFIRM"
	StepPayment    Step = "PAYMENT"
	StepDone       Step = "DONE"
)

// Plan is an immutable ordered list of steps for one workflow variant.
type Plan struct {
	steps []Step
}

// ForRental returns the equipment rental checkout plan.
func ForRental() Plan {
	return Plan{steps: []Step{StepCustomer, StepItems, StepConfirm, StepPayment, StepDone}}
}

// ForInscription returns the subscription checkout plan for a tier. PREMIUM
// inserts the instructor and schedule steps before confirmation; STANDARD
// has neither and the total step count shrinks accordingly.
func ForInscription(tier domain.PlanTier) Plan {
	if tier == domain.PlanTierPremium {
		return Plan{steps: []Step{StepCustomer, StepPlan, StepInstructor, StepSchedule, StepConfirm, StepPayment, StepDone}}
	}
	return Plan{steps: []Step{StepCustomer, StepPlan, StepConfirm, StepPayment, StepDone}}
}

// Steps returns a copy of the ordered step identifiers.
func (p Plan) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Total is the number of steps in this variant.
func (p Plan) Total() int {
	return len(p.steps)
}

// Index returns the zero-based position of a step, or false if the step is
// not part of this variant.
func (p Plan) Index(s Step) (int, bool) {
	for i, step := range p.steps {
		if step == s {
			return i, true
		}
	}
	return 0, false
}

// Next returns the step after s, or false at the end of the plan.
func (p Plan) Next(s Step) (Step, bool) {
	i, ok := p.Index(s)
	if !ok || i+1 >= len(p.steps) {
		return "", false
	}
	return p.steps[i+1], true
}

// Prev returns the step before s, or false at the start of the plan.
// Because the plan is fixed per variant, going back skips the same
// conditional steps that were skipped going forward.
func (p Plan) Prev(s Step) (Step, bool) {
	i, ok := p.Index(s)
	if !ok || i == 0 {
		return "", false
	}
	return p.steps[i-1], true
}

// Progress maps a step to a 1-based position and the variant's total count,
// for the visible progress indicator.
func (p Plan) Progress(s Step) (current, total int, ok bool) {
	i, ok := p.Index(s)
	if !ok {
		return 0, 0, false
	}
	return i + 1, len(p.steps), true
}
