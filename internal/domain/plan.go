package domain

type PlanTier string

const (
	PlanTierStandard PlanTier = "STANDARD"
	PlanTierPremium  PlanTier = "PREMIUM"
)

// Plan is a subscription offering. DurationDays counts calendar days
// inclusive of the start date.
type Plan struct {
	ID           int32    `json:"id"`
	Name         string   `json:"name"`
	PriceCents   int64    `json:"price_cents"`
	DurationDays int32    `json:"duration_days"`
	Tier         PlanTier `json:"tier"`
	Active       bool     `json:"active"`
	CreatedOn    string   `json:"created_on"`
	UpdatedOn    string   `json:"updated_on"`
}

// RequiresInstructor reports whether signing up for this plan includes
// picking an instructor and one of their schedule slots.
func (p *Plan) RequiresInstructor() bool {
	return p.Tier == PlanTierPremium
}

// Instructor is a trainer that premium subscribers book sessions with.
type Instructor struct {
	ID          int32    `json:"id"`
	FullName    string   `json:"full_name"`
	Tier        PlanTier `json:"tier"`
	MaxCapacity int32    `json:"max_capacity"`
	Active      bool     `json:"active"`
}

// ScheduleSlot is a weekly recurring time window published by an
// instructor. DayOfWeek follows time.Weekday numbering, Sunday = 0.
// Times are wall-clock HH:MM strings.
type ScheduleSlot struct {
	ID           int32  `json:"id"`
	InstructorID int32  `json:"instructor_id"`
	DayOfWeek    int32  `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}
