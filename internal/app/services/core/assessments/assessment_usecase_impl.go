package assessments

import (
	"context"
	"fmt"
	"mindwell-service/internal/app/contracts"
	"mindwell-service/internal/app/models"
	"mindwell-service/internal/pkg/constvars"
	"mindwell-service/internal/pkg/dto/requests"
	"mindwell-service/internal/pkg/dto/responses"
	"mindwell-service/internal/pkg/exceptions"
	"mindwell-service/internal/pkg/screening"
	"sync"
	"time"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	ProfileRepository    contracts.ProfileRepository
	RedisRepository      contracts.RedisRepository
	Log                  *zap.Logger
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	assessmentRepository contracts.AssessmentRepository,
	profileRepository contracts.ProfileRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			AssessmentRepository: assessmentRepository,
			ProfileRepository:    profileRepository,
			RedisRepository:      redisRepository,
			Log:                  logger,
		}
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) FindQuestions(ctx context.Context, scope screening.Scope) ([]screening.Question, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var questions []screening.Question
	if scope == screening.ScopeAll {
		questions = screening.AllQuestions()
	} else {
		questions = screening.QuestionsFor(screening.Instrument(scope))
	}

	uc.Log.Info("assessmentUsecase.FindQuestions fetched questions",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentKey, string(scope)),
		zap.Int(constvars.LoggingQuestionCountKey, len(questions)),
	)
	return questions, nil
}

func (uc *assessmentUsecase) SubmitAssessment(ctx context.Context, request *requests.SubmitAssessment) (*responses.SubmitAssessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.SubmitAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingAssessmentTypeKey, request.AssessmentType),
		zap.Int(constvars.LoggingAnswerCountKey, len(request.Answers)),
	)

	scope, err := screening.ParseScope(request.AssessmentType)
	if err != nil {
		return nil, exceptions.ErrUnknownInstrumentScope(err)
	}

	results := screening.EvaluateScope(scope, request.Answers)
	overallRisk := screening.ResolveOverallRisk(results)

	assessment := &models.Assessment{
		UserID:         request.UserID,
		AssessmentType: request.AssessmentType,
		Answers:        request.Answers,
		Results:        results,
		OverallRisk:    overallRisk,
		CreatedAt:      time.Now(),
	}

	assessmentID, err := uc.AssessmentRepository.InsertAssessment(ctx, assessment)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error storing assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	// The profile snapshot is a second, independent write. The assessment
	// history above is the source of truth, so a snapshot failure is logged
	// and the submission still succeeds.
	scores := make(map[screening.Instrument]int, len(results))
	for i, instrument := range scope.Instruments() {
		scores[instrument] = results[i].Score
	}
	err = uc.ProfileRepository.UpdateScores(ctx, request.UserID, scores)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error updating profile score snapshot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Error(err),
		)
	}

	summaryKey := fmt.Sprintf(constvars.RedisRiskSummaryKeyFormat, request.UserID)
	err = uc.RedisRepository.Delete(ctx, summaryKey)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error invalidating risk summary cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Error(err),
		)
	}

	uc.Log.Info("assessmentUsecase.SubmitAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingResultCountKey, len(results)),
		zap.String(constvars.LoggingOverallRiskKey, string(overallRisk)),
	)

	return &responses.SubmitAssessment{
		AssessmentID: assessmentID,
		Results:      results,
		OverallRisk:  overallRisk,
	}, nil
}

func (uc *assessmentUsecase) FindAssessmentsByUserID(ctx context.Context, request *requests.FindAssessments) ([]responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	assessments, err := uc.AssessmentRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAssessmentsByUserID error fetching assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Assessment, 0, len(assessments))
	for _, assessment := range assessments {
		response = append(response, mapAssessmentToResponse(&assessment))
	}

	uc.Log.Info("assessmentUsecase.FindAssessmentsByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.Int(constvars.LoggingAssessmentCountKey, len(response)),
	)
	return response, nil
}

func (uc *assessmentUsecase) FindAssessmentByID(ctx context.Context, request *requests.FindAssessmentByID) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	assessment, err := uc.AssessmentRepository.FindByID(ctx, request.AssessmentID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAssessmentByID error fetching assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, request.AssessmentID),
			zap.Error(err),
		)
		return nil, err
	}
	// A foreign assessment id reads the same as a missing one.
	if assessment == nil || assessment.UserID != request.UserID {
		return nil, exceptions.ErrAssessmentNotExist(nil)
	}

	response := mapAssessmentToResponse(assessment)
	return &response, nil
}

func mapAssessmentToResponse(assessment *models.Assessment) responses.Assessment {
	return responses.Assessment{
		ID:             assessment.ID,
		AssessmentType: assessment.AssessmentType,
		Answers:        assessment.Answers,
		Results:        assessment.Results,
		OverallRisk:    assessment.OverallRisk,
		CreatedAt:      assessment.CreatedAt,
	}
}
