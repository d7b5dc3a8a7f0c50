package profiles

import (
	"context"
	"mindwell-service/internal/app/config"
	"mindwell-service/internal/app/models"
	"mindwell-service/internal/pkg/constvars"
	"mindwell-service/internal/pkg/dto/requests"
	"mindwell-service/internal/pkg/exceptions"
	"mindwell-service/internal/pkg/screening"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeProfileRepository struct {
	profiles map[string]*models.Profile
}

func (f *fakeProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return f.profiles[userID], nil
}

func (f *fakeProfileRepository) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	existing := f.profiles[profile.UserID]
	if existing == nil {
		f.profiles[profile.UserID] = profile
		return nil
	}
	existing.Age = profile.Age
	existing.Locality = profile.Locality
	existing.PersonalNotes = profile.PersonalNotes
	existing.Goals = profile.Goals
	existing.UpdatedAt = profile.UpdatedAt
	return nil
}

func (f *fakeProfileRepository) UpdateScores(ctx context.Context, userID string, scores map[screening.Instrument]int) error {
	return nil
}

type fakeRedisRepository struct {
	data map[string]string
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(encoded)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func intPtr(v int) *int { return &v }

func newTestProfileUsecase(profileRepository *fakeProfileRepository, redisRepository *fakeRedisRepository) *profileUsecase {
	return &profileUsecase{
		ProfileRepository: profileRepository,
		RedisRepository:   redisRepository,
		InternalConfig: &config.InternalConfig{
			App: config.App{RiskSummaryCacheExpInMinute: 10},
		},
		Log: zap.NewNop(),
	}
}

func TestUpdateProfile(t *testing.T) {
	profileRepository := &fakeProfileRepository{profiles: map[string]*models.Profile{}}
	uc := newTestProfileUsecase(profileRepository, &fakeRedisRepository{data: map[string]string{}})

	t.Run("creates a profile on first update", func(t *testing.T) {
		response, err := uc.UpdateProfile(context.Background(), &requests.UpdateProfile{
			UserID:   "user-1",
			Age:      intPtr(34),
			Locality: "Bandung",
			Goals:    "sleep better",
		})

		assert.NoError(t, err)
		assert.Equal(t, 34, *response.Age)
		assert.Equal(t, "Bandung", response.Locality)
	})

	t.Run("keeps the score snapshot across updates", func(t *testing.T) {
		profileRepository.profiles["user-1"].PHQ9Score = intPtr(12)

		response, err := uc.UpdateProfile(context.Background(), &requests.UpdateProfile{
			UserID:   "user-1",
			Locality: "Jakarta",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Jakarta", response.Locality)
		assert.Equal(t, 12, *response.PHQ9Score)
	})
}

func TestFindProfileByUserID(t *testing.T) {
	uc := newTestProfileUsecase(
		&fakeProfileRepository{profiles: map[string]*models.Profile{}},
		&fakeRedisRepository{data: map[string]string{}},
	)

	t.Run("missing profile reads as not found", func(t *testing.T) {
		_, err := uc.FindProfileByUserID(context.Background(), "user-404")

		assert.Error(t, err)
		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customError.StatusCode)
	})
}

func TestFindRiskSummary(t *testing.T) {
	t.Run("classifies each completed instrument and resolves the overall risk", func(t *testing.T) {
		profileRepository := &fakeProfileRepository{profiles: map[string]*models.Profile{
			"user-1": {
				UserID:    "user-1",
				PHQ9Score: intPtr(3),
				GAD7Score: intPtr(12),
			},
		}}
		uc := newTestProfileUsecase(profileRepository, &fakeRedisRepository{data: map[string]string{}})

		summary, err := uc.FindRiskSummary(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Len(t, summary.Instruments, 2)
		assert.Equal(t, screening.SeverityMinimal, summary.Instruments[0].Severity)
		assert.Equal(t, screening.SeverityModerate, summary.Instruments[1].Severity)
		assert.Equal(t, screening.RiskLevelMedium, summary.OverallRisk)
	})

	t.Run("no completed instruments resolves to low risk", func(t *testing.T) {
		profileRepository := &fakeProfileRepository{profiles: map[string]*models.Profile{
			"user-1": {UserID: "user-1"},
		}}
		uc := newTestProfileUsecase(profileRepository, &fakeRedisRepository{data: map[string]string{}})

		summary, err := uc.FindRiskSummary(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Empty(t, summary.Instruments)
		assert.Equal(t, screening.RiskLevelLow, summary.OverallRisk)
	})

	t.Run("caches the computed summary", func(t *testing.T) {
		profileRepository := &fakeProfileRepository{profiles: map[string]*models.Profile{
			"user-1": {UserID: "user-1", GHQ12Score: intPtr(10)},
		}}
		redisRepository := &fakeRedisRepository{data: map[string]string{}}
		uc := newTestProfileUsecase(profileRepository, redisRepository)

		first, err := uc.FindRiskSummary(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Equal(t, screening.RiskLevelHigh, first.OverallRisk)
		assert.Contains(t, redisRepository.data, "risk_summary:user-1")

		// A stale snapshot must not be re-read while the cache entry lives.
		profileRepository.profiles["user-1"].GHQ12Score = intPtr(0)
		second, err := uc.FindRiskSummary(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Equal(t, screening.RiskLevelHigh, second.OverallRisk)
	})

	t.Run("missing profile reads as not found", func(t *testing.T) {
		uc := newTestProfileUsecase(
			&fakeProfileRepository{profiles: map[string]*models.Profile{}},
			&fakeRedisRepository{data: map[string]string{}},
		)

		_, err := uc.FindRiskSummary(context.Background(), "user-404")
		assert.Error(t, err)
	})
}
