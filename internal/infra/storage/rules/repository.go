package rules

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/haeum-studio/booking-service/internal/domain"
	"github.com/haeum-studio/booking-service/pkg/dbmetrics"
	"github.com/haeum-studio/booking-service/pkg/psqlbuilder"
	"github.com/haeum-studio/booking-service/pkg/types"
)

// singletonID is the primary key of the one availability rules row
const singletonID = 1

// Repository is the postgres-backed store for the availability rules
// singleton. Rows are validated and normalized once here, at the storage
// boundary; the rest of the system always sees a well-formed rule set.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a rules repository over db
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// rulesRow mirrors the persisted shape: the list columns are JSONB
type rulesRow struct {
	availableTimes  []byte
	blockedDates    []byte
	blockedWeekdays []byte
	minAdvanceHours int
	maxAdvanceDays  int
	slotDuration    int
	updatedAt       sql.NullTime
}

// Get fetches the availability rules
func (r *Repository) Get(ctx context.Context) (*domain.AvailabilityRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"available_times",
		"blocked_dates",
		"blocked_weekdays",
		"min_advance_hours",
		"max_advance_days",
		"slot_duration_minutes",
		"updated_at",
	).
		From("availability_rules").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var row rulesRow
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&row.availableTimes,
		&row.blockedDates,
		&row.blockedWeekdays,
		&row.minAdvanceHours,
		&row.maxAdvanceDays,
		&row.slotDuration,
		&row.updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan rules: %v", ErrScanRow, err)
	}

	return row.toDomain()
}

// Save upserts the availability rules singleton and returns the stored value
func (r *Repository) Save(ctx context.Context, rules *domain.AvailabilityRules) (*domain.AvailabilityRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	availableTimes, blockedDates, blockedWeekdays, err := marshalLists(rules)
	if err != nil {
		return nil, fmt.Errorf("%w: Save - marshal rule lists: %v", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Insert("availability_rules").
		Columns(
			"id",
			"available_times",
			"blocked_dates",
			"blocked_weekdays",
			"min_advance_hours",
			"max_advance_days",
			"slot_duration_minutes",
		).
		Values(
			singletonID,
			availableTimes,
			blockedDates,
			blockedWeekdays,
			rules.MinAdvanceHours,
			rules.MaxAdvanceDays,
			rules.SlotDuration,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			available_times = EXCLUDED.available_times,
			blocked_dates = EXCLUDED.blocked_dates,
			blocked_weekdays = EXCLUDED.blocked_weekdays,
			min_advance_hours = EXCLUDED.min_advance_hours,
			max_advance_days = EXCLUDED.max_advance_days,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	saved := *rules
	saved.UpdatedAt = updatedAt.Time
	return &saved, nil
}

func (row *rulesRow) toDomain() (*domain.AvailabilityRules, error) {
	var timeStrings []string
	if err := json.Unmarshal(row.availableTimes, &timeStrings); err != nil {
		return nil, fmt.Errorf("%w: available_times: %v", ErrMalformedRules, err)
	}

	var dateStrings []string
	if err := json.Unmarshal(row.blockedDates, &dateStrings); err != nil {
		return nil, fmt.Errorf("%w: blocked_dates: %v", ErrMalformedRules, err)
	}

	var weekdayInts []int
	if err := json.Unmarshal(row.blockedWeekdays, &weekdayInts); err != nil {
		return nil, fmt.Errorf("%w: blocked_weekdays: %v", ErrMalformedRules, err)
	}

	rules := &domain.AvailabilityRules{
		MinAdvanceHours: row.minAdvanceHours,
		MaxAdvanceDays:  row.maxAdvanceDays,
		SlotDuration:    row.slotDuration,
	}
	if row.updatedAt.Valid {
		rules.UpdatedAt = row.updatedAt.Time
	}

	for _, s := range timeStrings {
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: available time %q: %v", ErrMalformedRules, s, err)
		}
		rules.AvailableTimes = append(rules.AvailableTimes, t)
	}
	for _, s := range dateStrings {
		date, err := time.ParseInLocation(domain.DateFormat, s, domain.KST)
		if err != nil {
			return nil, fmt.Errorf("%w: blocked date %q: %v", ErrMalformedRules, s, err)
		}
		rules.BlockedDates = append(rules.BlockedDates, date)
	}
	for _, d := range weekdayInts {
		rules.BlockedWeekdays = append(rules.BlockedWeekdays, time.Weekday(d))
	}

	rules.Normalize()
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRules, err)
	}

	return rules, nil
}

func marshalLists(rules *domain.AvailabilityRules) ([]byte, []byte, []byte, error) {
	timeStrings := make([]string, len(rules.AvailableTimes))
	for i, t := range rules.AvailableTimes {
		timeStrings[i] = t.String()
	}
	availableTimes, err := json.Marshal(timeStrings)
	if err != nil {
		return nil, nil, nil, err
	}

	dateStrings := make([]string, len(rules.BlockedDates))
	for i, d := range rules.BlockedDates {
		dateStrings[i] = d.Format(domain.DateFormat)
	}
	blockedDates, err := json.Marshal(dateStrings)
	if err != nil {
		return nil, nil, nil, err
	}

	weekdayInts := make([]int, len(rules.BlockedWeekdays))
	for i, d := range rules.BlockedWeekdays {
		weekdayInts[i] = int(d)
	}
	blockedWeekdays, err := json.Marshal(weekdayInts)
	if err != nil {
		return nil, nil, nil, err
	}

	return availableTimes, blockedDates, blockedWeekdays, nil
}
