package profiles

import (
	"context"
	"fmt"
	"mindwell-service/internal/app/config"
	"mindwell-service/internal/app/contracts"
	"mindwell-service/internal/app/models"
	"mindwell-service/internal/pkg/constvars"
	"mindwell-service/internal/pkg/dto/requests"
	"mindwell-service/internal/pkg/dto/responses"
	"mindwell-service/internal/pkg/exceptions"
	"mindwell-service/internal/pkg/screening"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type profileUsecase struct {
	ProfileRepository contracts.ProfileRepository
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	profileUsecaseInstance contracts.ProfileUsecase
	onceProfileUsecase     sync.Once
)

func NewProfileUsecase(
	profileRepository contracts.ProfileRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	onceProfileUsecase.Do(func() {
		profileUsecaseInstance = &profileUsecase{
			ProfileRepository: profileRepository,
			RedisRepository:   redisRepository,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return profileUsecaseInstance
}

func (uc *profileUsecase) FindProfileByUserID(ctx context.Context, userID string) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	profile, err := uc.ProfileRepository.FindByUserID(ctx, userID)
	if err != nil {
		uc.Log.Error("profileUsecase.FindProfileByUserID error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	return mapProfileToResponse(profile), nil
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	now := time.Now()
	profile := &models.Profile{
		UserID:        request.UserID,
		Age:           request.Age,
		Locality:      request.Locality,
		PersonalNotes: request.PersonalNotes,
		Goals:         request.Goals,
		UpdatedAt:     &now,
	}

	err := uc.ProfileRepository.UpsertProfile(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateProfile error upserting profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	// Read back so the response carries the score snapshot untouched by the
	// upsert.
	updated, err := uc.ProfileRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	return mapProfileToResponse(updated), nil
}

func (uc *profileUsecase) FindRiskSummary(ctx context.Context, userID string) (*responses.RiskSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	summaryKey := fmt.Sprintf(constvars.RedisRiskSummaryKeyFormat, userID)
	cached, err := uc.RedisRepository.Get(ctx, summaryKey)
	if err != nil {
		uc.Log.Error("profileUsecase.FindRiskSummary error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}
	if cached != "" {
		summary := new(responses.RiskSummary)
		err = json.Unmarshal([]byte(cached), summary)
		if err == nil {
			return summary, nil
		}
		uc.Log.Error("profileUsecase.FindRiskSummary error decoding cached summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}

	profile, err := uc.ProfileRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	summary := buildRiskSummary(profile)

	err = uc.RedisRepository.Set(ctx, summaryKey, summary, time.Duration(uc.InternalConfig.App.RiskSummaryCacheExpInMinute)*time.Minute)
	if err != nil {
		uc.Log.Error("profileUsecase.FindRiskSummary error caching summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}

	uc.Log.Info("profileUsecase.FindRiskSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingOverallRiskKey, string(summary.OverallRisk)),
	)
	return summary, nil
}

// buildRiskSummary classifies the latest snapshot score of each instrument the
// user has completed. Instruments without a score are left out, and the
// overall risk is resolved from the instruments present.
func buildRiskSummary(profile *models.Profile) *responses.RiskSummary {
	snapshot := map[screening.Instrument]*int{
		screening.InstrumentPHQ9:  profile.PHQ9Score,
		screening.InstrumentGAD7:  profile.GAD7Score,
		screening.InstrumentGHQ12: profile.GHQ12Score,
	}

	instruments := make([]responses.InstrumentRisk, 0, len(snapshot))
	results := make([]screening.AssessmentResult, 0, len(snapshot))
	for _, instrument := range screening.Instruments() {
		score := snapshot[instrument]
		if score == nil {
			continue
		}

		classification := screening.Classify(instrument, *score)
		instruments = append(instruments, responses.InstrumentRisk{
			Instrument: instrument,
			ToolName:   instrument.ToolName(),
			Score:      *score,
			MaxScore:   instrument.MaxScore(),
			Severity:   classification.Severity,
			RiskLevel:  classification.RiskLevel,
		})
		results = append(results, screening.AssessmentResult{
			Severity:  classification.Severity,
			RiskLevel: classification.RiskLevel,
		})
	}

	return &responses.RiskSummary{
		OverallRisk: screening.ResolveOverallRisk(results),
		Instruments: instruments,
	}
}

func mapProfileToResponse(profile *models.Profile) *responses.Profile {
	return &responses.Profile{
		Age:           profile.Age,
		Locality:      profile.Locality,
		PersonalNotes: profile.PersonalNotes,
		Goals:         profile.Goals,
		PHQ9Score:     profile.PHQ9Score,
		GAD7Score:     profile.GAD7Score,
		GHQ12Score:    profile.GHQ12Score,
		UpdatedAt:     profile.UpdatedAt,
	}
}
