package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/domain/valueobject"
)

// ListGoalsInput represents the input for listing a user's goals.
type ListGoalsInput struct {
	UserID uuid.UUID

	// DisplayUnit optionally overrides the user's stored display preference
	// for this request. Zero value means "use the stored preference".
	DisplayUnit valueobject.WeightUnit
}

// GoalView is a goal decorated with derived presentation fields. Display
// values are converted copies; the underlying goal keeps its stored unit.
type GoalView struct {
	Goal     *entity.Goal
	Progress int
	Status   valueobject.GoalStatus

	// LatestWeight is the most recent logged weight in the goal's stored
	// unit, nil when the goal has no entries. Weight goals only.
	LatestWeight *float64

	// DisplayUnit and the Display* values carry the request's display unit
	// conversion. For non-weight goals they mirror the stored values.
	DisplayUnit         valueobject.WeightUnit
	DisplayCurrentValue float64
	DisplayTargetValue  float64
	DisplayLatestWeight *float64
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalView

	// Degraded is true when the primary store was unavailable and goals were
	// served from the local fallback mirror.
	Degraded bool
}

// ListGoalsUseCase lists a user's goals with derived progress, falling back
// to the local mirror when the primary store is down.
type ListGoalsUseCase struct {
	goalRepo        adapter.GoalRepository
	goalMirror      adapter.GoalMirror
	weightEntryRepo adapter.WeightEntryRepository
	preferences     adapter.PreferenceStore
	clampPolicy     valueobject.PlausibleRange
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	goalMirror adapter.GoalMirror,
	weightEntryRepo adapter.WeightEntryRepository,
	preferences adapter.PreferenceStore,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:        goalRepo,
		goalMirror:      goalMirror,
		weightEntryRepo: weightEntryRepo,
		preferences:     preferences,
		clampPolicy:     valueobject.DefaultPlausibleRange(),
	}
}

// Execute lists the user's goals. Reads degrade to the fallback mirror when
// the primary store errors; writes (the mirror refresh and self-healing
// rewrites) target their own store only, so a degraded read never loses data.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, degraded, err := uc.loadGoals(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	uc.healWeightGoals(ctx, goals, degraded)

	displayUnit := uc.resolveDisplayUnit(ctx, input)

	views := make([]*GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, uc.buildView(ctx, g, displayUnit))
	}

	return &ListGoalsOutput{Goals: views, Degraded: degraded}, nil
}

// loadGoals reads from the primary store, refreshing the mirror on success
// and falling back to the mirror on failure.
func (uc *ListGoalsUseCase) loadGoals(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, bool, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, userID)
	if err == nil {
		if mirrorErr := uc.goalMirror.ReplaceAll(ctx, userID, goals); mirrorErr != nil {
			slog.Warn("Failed to refresh goal mirror", "user_id", userID, "error", mirrorErr)
		}
		return goals, false, nil
	}

	slog.Warn("Primary goal store unavailable, falling back to mirror", "user_id", userID, "error", err)

	mirrored, mirrorErr := uc.goalMirror.FindByUserID(ctx, userID)
	if mirrorErr != nil {
		slog.Error("Goal mirror read failed after primary failure", "user_id", userID, "error", mirrorErr)
		return nil, false, domainerror.NewGoalError(
			domainerror.ErrCodeGoalStoreUnavailable,
			"goals are temporarily unavailable",
			domainerror.ErrGoalStoreUnavailable,
		)
	}

	return mirrored, true, nil
}

// healWeightGoals normalizes missing units and implausible values on every
// load so corrupted records fix themselves the first time they are seen.
// Rewrites go to the primary store only and are skipped while degraded.
func (uc *ListGoalsUseCase) healWeightGoals(ctx context.Context, goals []*entity.Goal, degraded bool) {
	for _, g := range goals {
		if g.Type != entity.GoalTypeWeight {
			continue
		}

		changed := false
		if !g.Unit.IsValid() {
			g.Unit = valueobject.WeightUnitKg
			changed = true
		}
		if !uc.clampPolicy.IsPlausible(g.CurrentValue, g.Unit) {
			g.CurrentValue = uc.clampPolicy.Reference(g.Unit)
			changed = true
		}
		if !uc.clampPolicy.IsPlausible(g.TargetValue, g.Unit) {
			g.TargetValue = uc.clampPolicy.Reference(g.Unit)
			changed = true
		}
		if !changed {
			continue
		}

		// The healed values are served either way; persisting them just
		// stops the same record from healing again on the next load.
		if degraded {
			continue
		}
		g.Touch()
		if err := uc.goalRepo.Update(ctx, g); err != nil {
			slog.Warn("Failed to persist healed goal", "goal_id", g.ID, "error", err)
		}
	}
}

// resolveDisplayUnit picks the request override when present, otherwise the
// stored preference. Preference store failures degrade to kilograms.
func (uc *ListGoalsUseCase) resolveDisplayUnit(ctx context.Context, input ListGoalsInput) valueobject.WeightUnit {
	if input.DisplayUnit.IsValid() {
		return input.DisplayUnit
	}
	unit, err := uc.preferences.GetDisplayUnit(ctx, input.UserID)
	if err != nil {
		slog.Warn("Failed to load display unit preference", "user_id", input.UserID, "error", err)
		return valueobject.WeightUnitKg
	}
	return unit.OrDefault()
}

func (uc *ListGoalsUseCase) buildView(ctx context.Context, g *entity.Goal, displayUnit valueobject.WeightUnit) *GoalView {
	view := &GoalView{
		Goal:                g,
		DisplayUnit:         displayUnit,
		DisplayCurrentValue: g.CurrentValue,
		DisplayTargetValue:  g.TargetValue,
	}

	if g.Type != entity.GoalTypeWeight {
		view.Progress = valueobject.RatioProgress(g.CurrentValue, g.TargetValue)
		view.Status = valueobject.RatioStatus(g.CurrentValue, g.TargetValue)
		return view
	}

	storedUnit := g.EffectiveUnit()

	latest, err := uc.weightEntryRepo.FindLatestByGoalID(ctx, g.ID)
	if err != nil {
		slog.Warn("Failed to load latest weight entry", "goal_id", g.ID, "error", err)
		latest = nil
	}

	if latest == nil {
		// No entries yet: nothing traveled, nothing to color.
		view.Progress = 0
		view.Status = valueobject.GoalStatusNeutral
	} else {
		latestWeight := valueobject.ConvertWeight(latest.Weight, latest.Unit, storedUnit)
		view.LatestWeight = &latestWeight
		view.Progress = valueobject.WeightProgress(g.CurrentValue, g.TargetValue, latestWeight)
		view.Status = valueobject.WeightStatus(g.CurrentValue, g.TargetValue, latestWeight, true)
	}

	view.DisplayCurrentValue = valueobject.ConvertWeight(g.CurrentValue, storedUnit, displayUnit)
	view.DisplayTargetValue = valueobject.ConvertWeight(g.TargetValue, storedUnit, displayUnit)
	if view.LatestWeight != nil {
		converted := valueobject.ConvertWeight(*view.LatestWeight, storedUnit, displayUnit)
		view.DisplayLatestWeight = &converted
	}

	return view
}
