package goal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/domain/entity"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

type fakeGoalRepo struct {
	goals   []*entity.Goal
	findErr error

	created []*entity.Goal
	updated []*entity.Goal
	deleted []uuid.UUID
}

func (f *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	f.goals = append(f.goals, goal)
	f.created = append(f.created, goal)
	return nil
}

func (f *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
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

func (f *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeGoalMirror struct {
	goals      []*entity.Goal
	findErr    error
	replaceErr error

	replaced [][]*entity.Goal
}

func (f *fakeGoalMirror) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*entity.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalMirror) ReplaceAll(_ context.Context, _ uuid.UUID, goals []*entity.Goal) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.goals = goals
	f.replaced = append(f.replaced, goals)
	return nil
}

type fakeWeightEntryRepo struct {
	entries []*entity.WeightEntry
	findErr error

	deleted []uuid.UUID
}

func (f *fakeWeightEntryRepo) Create(_ context.Context, entry *entity.WeightEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeWeightEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.WeightEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeWeightEntryRepo) FindByGoalID(_ context.Context, goalID uuid.UUID) ([]*entity.WeightEntry, error) {
	var out []*entity.WeightEntry
	for _, e := range f.entries {
		if e.GoalID == goalID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeWeightEntryRepo) FindLatestByGoalID(_ context.Context, goalID uuid.UUID) (*entity.WeightEntry, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var latest *entity.WeightEntry
	for _, e := range f.entries {
		if e.GoalID != goalID {
			continue
		}
		if latest == nil || e.Date.After(latest.Date) {
			latest = e
		}
	}
	return latest, nil
}

func (f *fakeWeightEntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePreferenceStore struct {
	units map[uuid.UUID]valueobject.WeightUnit
	err   error
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{units: make(map[uuid.UUID]valueobject.WeightUnit)}
}

func (f *fakePreferenceStore) GetDisplayUnit(_ context.Context, userID uuid.UUID) (valueobject.WeightUnit, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.units[userID].OrDefault(), nil
}

func (f *fakePreferenceStore) SetDisplayUnit(_ context.Context, userID uuid.UUID, unit valueobject.WeightUnit) error {
	if f.err != nil {
		return f.err
	}
	f.units[userID] = unit
	return nil
}

func weightEntryOn(goalID uuid.UUID, date time.Time, weight float64, unit valueobject.WeightUnit) *entity.WeightEntry {
	return entity.NewWeightEntry(goalID, date, weight, unit, "")
}
