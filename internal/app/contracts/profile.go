package contracts

import (
	"context"
	"mindwell-service/internal/app/models"
	"mindwell-service/internal/pkg/dto/requests"
	"mindwell-service/internal/pkg/dto/responses"
	"mindwell-service/internal/pkg/screening"
)

type ProfileUsecase interface {
	FindProfileByUserID(ctx context.Context, userID string) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.Profile, error)
	FindRiskSummary(ctx context.Context, userID string) (*responses.RiskSummary, error)
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, profile *models.Profile) error
	UpdateScores(ctx context.Context, userID string, scores map[screening.Instrument]int) error
}
