package foodentry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
)

const testImage = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="

type fakeFoodEntryRepo struct {
	entries []*entity.FoodEntry
	updated []*entity.FoodEntry
	deleted []uuid.UUID
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
	return nil, errors.New("record not found")
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
	return out, nil
}

func (f *fakeFoodEntryRepo) FindByUserSince(_ context.Context, userID uuid.UUID, entryType entity.FoodEntryType, since time.Time) ([]*entity.FoodEntry, error) {
	var out []*entity.FoodEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Type == entryType && !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFoodEntryRepo) Update(_ context.Context, entry *entity.FoodEntry) error {
	f.updated = append(f.updated, entry)
	return nil
}

func (f *fakeFoodEntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeVisionService struct {
	available    bool
	analysis     *adapter.FoodAnalysis
	refrigerator *adapter.RefrigeratorAnalysis
	suggestion   *adapter.MealPlanSuggestion
	err          error

	lastHint string
}

func (f *fakeVisionService) IsAvailable() bool { return f.available }

func (f *fakeVisionService) AnalyzeImage(_ context.Context, _, hint string) (*adapter.FoodAnalysis, error) {
	f.lastHint = hint
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

func (f *fakeVisionService) AnalyzeRefrigeratorImage(_ context.Context, _ string) (*adapter.RefrigeratorAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.refrigerator, nil
}

func (f *fakeVisionService) GenerateMealPlan(_ context.Context, _ adapter.MealPlanRequest) (*adapter.MealPlanSuggestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.suggestion, nil
}

func TestLogFoodEntryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("persists analyzed meal", func(t *testing.T) {
		repo := &fakeFoodEntryRepo{}
		vision := &fakeVisionService{
			available: true,
			analysis: &adapter.FoodAnalysis{
				FoodName:    "Grilled chicken salad",
				Calories:    420,
				HealthScore: 8.5,
				ProteinG:    38,
			},
		}
		uc := NewLogFoodEntryUseCase(repo, vision)

		output, err := uc.Execute(context.Background(), LogFoodEntryInput{UserID: userID, ImageDataURL: testImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entry := output.Entry
		if entry.FoodName != "Grilled chicken salad" || entry.Calories != 420 {
			t.Errorf("promoted columns not populated: %+v", entry)
		}
		if entry.Type != entity.FoodEntryTypeFood {
			t.Errorf("expected type food, got %s", entry.Type)
		}

		var stored adapter.FoodAnalysis
		if err := json.Unmarshal(entry.AnalysisData, &stored); err != nil {
			t.Fatalf("analysis blob not valid JSON: %v", err)
		}
		if stored.ProteinG != 38 {
			t.Errorf("expected full analysis in blob, got %+v", stored)
		}
	})

	t.Run("rejects junk image payload", func(t *testing.T) {
		uc := NewLogFoodEntryUseCase(&fakeFoodEntryRepo{}, &fakeVisionService{available: true})

		_, err := uc.Execute(context.Background(), LogFoodEntryInput{UserID: userID, ImageDataURL: "not-a-data-url"})

		var foodErr *domainerror.FoodEntryError
		if !errors.As(err, &foodErr) || foodErr.Code != domainerror.ErrCodeInvalidImageData {
			t.Fatalf("expected invalid image error, got %v", err)
		}
	})

	t.Run("fails fast when analysis is not configured", func(t *testing.T) {
		uc := NewLogFoodEntryUseCase(&fakeFoodEntryRepo{}, &fakeVisionService{available: false})

		_, err := uc.Execute(context.Background(), LogFoodEntryInput{UserID: userID, ImageDataURL: testImage})

		var visErr *domainerror.VisionError
		if !errors.As(err, &visErr) || visErr.Code != domainerror.ErrCodeVisionNotConfigured {
			t.Fatalf("expected not configured error, got %v", err)
		}
	})

	t.Run("propagates vision errors without persisting", func(t *testing.T) {
		repo := &fakeFoodEntryRepo{}
		vision := &fakeVisionService{
			available: true,
			err: domainerror.NewVisionError(
				domainerror.ErrCodeVisionRateLimited,
				"quota exceeded",
				domainerror.ErrVisionRateLimited,
			),
		}
		uc := NewLogFoodEntryUseCase(repo, vision)

		_, err := uc.Execute(context.Background(), LogFoodEntryInput{UserID: userID, ImageDataURL: testImage})

		var visErr *domainerror.VisionError
		if !errors.As(err, &visErr) || visErr.Code != domainerror.ErrCodeVisionRateLimited {
			t.Fatalf("expected rate limited error, got %v", err)
		}
		if len(repo.entries) != 0 {
			t.Error("no entry may be persisted on analysis failure")
		}
	})
}

func TestReanalyzeFoodEntryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	seed := func(repo *fakeFoodEntryRepo) *entity.FoodEntry {
		entry := entity.NewFoodEntry(userID, entity.FoodEntryTypeFood, testImage, "Pasta", 600, 5, json.RawMessage(`{}`))
		repo.entries = append(repo.entries, entry)
		return entry
	}

	t.Run("updates entry in place with corrected name hint", func(t *testing.T) {
		repo := &fakeFoodEntryRepo{}
		entry := seed(repo)
		vision := &fakeVisionService{
			available: true,
			analysis: &adapter.FoodAnalysis{
				FoodName:    "Pesto pasta",
				Calories:    680,
				HealthScore: 6,
			},
		}
		uc := NewReanalyzeFoodEntryUseCase(repo, vision)

		output, err := uc.Execute(context.Background(), ReanalyzeFoodEntryInput{
			EntryID:           entry.ID,
			UserID:            userID,
			CorrectedFoodName: "pesto pasta",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if vision.lastHint != "pesto pasta" {
			t.Errorf("expected hint forwarded, got %q", vision.lastHint)
		}
		if output.Entry.ID != entry.ID {
			t.Error("expected the same entry updated in place")
		}
		if output.Entry.FoodName != "Pesto pasta" || output.Entry.Calories != 680 {
			t.Errorf("analysis fields not replaced: %+v", output.Entry)
		}
		if len(repo.updated) != 1 {
			t.Errorf("expected 1 update, got %d", len(repo.updated))
		}
	})

	t.Run("rejects empty corrected name", func(t *testing.T) {
		repo := &fakeFoodEntryRepo{}
		entry := seed(repo)
		uc := NewReanalyzeFoodEntryUseCase(repo, &fakeVisionService{available: true})

		_, err := uc.Execute(context.Background(), ReanalyzeFoodEntryInput{
			EntryID:           entry.ID,
			UserID:            userID,
			CorrectedFoodName: "  ",
		})
		if err == nil {
			t.Fatal("expected error for empty name")
		}
	})

	t.Run("rejects refrigerator entries", func(t *testing.T) {
		repo := &fakeFoodEntryRepo{}
		scan := entity.NewFoodEntry(userID, entity.FoodEntryTypeRefrigerator, testImage, "Refrigerator scan", 0, 0, nil)
		repo.entries = append(repo.entries, scan)
		uc := NewReanalyzeFoodEntryUseCase(repo, &fakeVisionService{available: true})

		_, err := uc.Execute(context.Background(), ReanalyzeFoodEntryInput{
			EntryID:           scan.ID,
			UserID:            userID,
			CorrectedFoodName: "milk",
		})

		var foodErr *domainerror.FoodEntryError
		if !errors.As(err, &foodErr) || foodErr.Code != domainerror.ErrCodeInvalidFoodEntryType {
			t.Fatalf("expected invalid type error, got %v", err)
		}
	})

	t.Run("rejects foreign entry", func(t *testing.T) {
		repo := &fakeFoodEntryRepo{}
		entry := seed(repo)
		uc := NewReanalyzeFoodEntryUseCase(repo, &fakeVisionService{available: true})

		_, err := uc.Execute(context.Background(), ReanalyzeFoodEntryInput{
			EntryID:           entry.ID,
			UserID:            uuid.New(),
			CorrectedFoodName: "salad",
		})

		var foodErr *domainerror.FoodEntryError
		if !errors.As(err, &foodErr) || foodErr.Code != domainerror.ErrCodeUnauthorizedFoodEntryAccess {
			t.Fatalf("expected unauthorized error, got %v", err)
		}
	})
}
