package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/repository"
)

type planRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetPlan(ctx context.Context, id int32) (*domain.Plan, error) {
	p := &domain.Plan{}
	query := `SELECT id, name, price_cents, duration_days, tier, active, created_on, updated_on FROM plans WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.PriceCents, &p.DurationDays, &p.Tier, &p.Active, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *planRepository) ListPlans(ctx context.Context, activeOnly bool) ([]domain.Plan, error) {
	query := `SELECT id, name, price_cents, duration_days, tier, active, created_on, updated_on FROM plans`
	if activeOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY price_cents"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.DurationDays, &p.Tier, &p.Active, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *planRepository) GetInstructor(ctx context.Context, id int32) (*domain.Instructor, error) {
	ins := &domain.Instructor{}
	query := `SELECT id, full_name, tier, max_capacity, active FROM instructors WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ins.ID, &ins.FullName, &ins.Tier, &ins.MaxCapacity, &ins.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ins, nil
}

func (r *planRepository) ListInstructors(ctx context.Context, tier domain.PlanTier) ([]domain.Instructor, error) {
	query := `SELECT id, full_name, tier, max_capacity, active FROM instructors WHERE active = true`
	args := []interface{}{}
	if tier != "" {
		query += " AND tier = $1"
		args = append(args, tier)
	}
	query += " ORDER BY full_name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []domain.Instructor
	for rows.Next() {
		var ins domain.Instructor
		if err := rows.Scan(&ins.ID, &ins.FullName, &ins.Tier, &ins.MaxCapacity, &ins.Active); err != nil {
			return nil, err
		}
		instructors = append(instructors, ins)
	}
	return instructors, rows.Err()
}

func (r *planRepository) GetSlot(ctx context.Context, id int32) (*domain.ScheduleSlot, error) {
	slot := &domain.ScheduleSlot{}
	query := `SELECT id, instructor_id, day_of_week, start_time, end_time FROM schedule_slots WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&slot.ID, &slot.InstructorID, &slot.DayOfWeek, &slot.StartTime, &slot.EndTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (r *planRepository) ListSlots(ctx context.Context, instructorID int32) ([]domain.ScheduleSlot, error) {
	query := `SELECT id, instructor_id, day_of_week, start_time, end_time FROM schedule_slots WHERE instructor_id = $1 ORDER BY day_of_week, start_time`
	rows, err := r.db.QueryContext(ctx, query, instructorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.ScheduleSlot
	for rows.Next() {
		var slot domain.ScheduleSlot
		if err := rows.Scan(&slot.ID, &slot.InstructorID, &slot.DayOfWeek, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}
