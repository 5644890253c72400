package calorie

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
)

type fakeFoodEntryRepo struct {
	entries []*entity.FoodEntry
	err     error
}

func (f *fakeFoodEntryRepo) Create(_ context.Context, entry *entity.FoodEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeFoodEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FoodEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeFoodEntryRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit int) ([]*entity.FoodEntry, error) {
	var out []*entity.FoodEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, f.err
}

func (f *fakeFoodEntryRepo) FindByUserSince(_ context.Context, userID uuid.UUID, entryType entity.FoodEntryType, since time.Time) ([]*entity.FoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.FoodEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Type == entryType && !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFoodEntryRepo) Update(_ context.Context, _ *entity.FoodEntry) error { return nil }
func (f *fakeFoodEntryRepo) Delete(_ context.Context, _ uuid.UUID) error         { return nil }

type fakeGoalRepo struct {
	goals   []*entity.Goal
	created []*entity.Goal
	updated []*entity.Goal
}

func (f *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	f.goals = append(f.goals, goal)
	f.created = append(f.created, goal)
	return nil
}

func (f *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalRepo) FindActiveByUserAndType(_ context.Context, userID uuid.UUID, goalType entity.GoalType) (*entity.Goal, error) {
	for _, g := range f.goals {
		if g.UserID == userID && g.Type == goalType {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	f.updated = append(f.updated, goal)
	return nil
}

func (f *fakeGoalRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeHistoryRepo struct {
	records []*entity.CalorieHistory
}

func (f *fakeHistoryRepo) Create(_ context.Context, record *entity.CalorieHistory) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeHistoryRepo) ExistsForWeek(_ context.Context, userID uuid.UUID, weekStart time.Time) (bool, error) {
	for _, r := range f.records {
		if r.UserID == userID && r.WeekStart.Equal(weekStart) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHistoryRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.CalorieHistory, error) {
	var out []*entity.CalorieHistory
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMarkerStore struct {
	runs map[string]bool
}

func newFakeMarkerStore() *fakeMarkerStore {
	return &fakeMarkerStore{runs: make(map[string]bool)}
}

func (f *fakeMarkerStore) key(userID uuid.UUID, weekStart time.Time) string {
	return userID.String() + "|" + weekStart.Format("2006-01-02")
}

func (f *fakeMarkerStore) HasRun(_ context.Context, userID uuid.UUID, weekStart time.Time) (bool, error) {
	return f.runs[f.key(userID, weekStart)], nil
}

func (f *fakeMarkerStore) MarkRun(_ context.Context, userID uuid.UUID, weekStart time.Time) error {
	f.runs[f.key(userID, weekStart)] = true
	return nil
}

func foodEntryAt(userID uuid.UUID, calories int, createdAt time.Time) *entity.FoodEntry {
	e := entity.NewFoodEntry(userID, entity.FoodEntryTypeFood, "data:image/jpeg;base64,AAAA", "meal", calories, 7, nil)
	e.CreatedAt = createdAt
	return e
}
