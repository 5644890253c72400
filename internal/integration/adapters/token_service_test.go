package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
)

type fakeTokenRepo struct {
	savedTokens        []string
	invalidatedTokens  []string
	invalidatedUserIDs []uuid.UUID
}

func (f *fakeTokenRepo) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	f.savedTokens = append(f.savedTokens, token)
	return nil
}

func (f *fakeTokenRepo) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	for _, invalidated := range f.invalidatedTokens {
		if invalidated == token {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakeTokenRepo) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.invalidatedTokens = append(f.invalidatedTokens, token)
	return nil
}

func (f *fakeTokenRepo) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	f.invalidatedUserIDs = append(f.invalidatedUserIDs, userID)
	return nil
}

func (f *fakeTokenRepo) SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	return nil
}

func (f *fakeTokenRepo) GetPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error) {
	return nil, nil
}

func (f *fakeTokenRepo) InvalidatePasswordResetToken(ctx context.Context, token string) error {
	return nil
}

func TestTokenService(t *testing.T) {
	userID := uuid.New()

	t.Run("generated pair round-trips through validation", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		service := NewTokenService("unit-test-secret", repo)

		pair, err := service.GenerateTokenPair(context.Background(), userID, "user@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.savedTokens) != 1 {
			t.Fatalf("expected 1 persisted refresh token, got %d", len(repo.savedTokens))
		}

		claims, err := service.ValidateAccessToken(context.Background(), pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}

		if _, err := service.ValidateAccessToken(context.Background(), pair.RefreshToken); err == nil {
			t.Error("expected a refresh token to fail access validation")
		}
	})

	t.Run("invalidating all user tokens reaches the repository", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		service := NewTokenService("unit-test-secret", repo)

		if err := service.InvalidateAllUserTokens(context.Background(), userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.invalidatedUserIDs) != 1 || repo.invalidatedUserIDs[0] != userID {
			t.Errorf("expected user %s invalidated, got %v", userID, repo.invalidatedUserIDs)
		}
	})

	t.Run("invalidated refresh token stops being valid", func(t *testing.T) {
		repo := &fakeTokenRepo{}
		service := NewTokenService("unit-test-secret", repo)

		pair, err := service.GenerateTokenPair(context.Background(), userID, "user@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := service.InvalidateRefreshToken(context.Background(), pair.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := service.IsRefreshTokenValid(context.Background(), pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected invalidated refresh token to be reported invalid")
		}
	})
}
