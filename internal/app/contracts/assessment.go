package contracts

import (
	"context"
	"mindwell-service/internal/app/models"
	"mindwell-service/internal/pkg/dto/requests"
	"mindwell-service/internal/pkg/dto/responses"
	"mindwell-service/internal/pkg/screening"
)

type AssessmentUsecase interface {
	FindQuestions(ctx context.Context, scope screening.Scope) ([]screening.Question, error)
	SubmitAssessment(ctx context.Context, request *requests.SubmitAssessment) (*responses.SubmitAssessment, error)
	FindAssessmentsByUserID(ctx context.Context, request *requests.FindAssessments) ([]responses.Assessment, error)
	FindAssessmentByID(ctx context.Context, request *requests.FindAssessmentByID) (*responses.Assessment, error)
}

type AssessmentRepository interface {
	InsertAssessment(ctx context.Context, assessment *models.Assessment) (assessmentID string, err error)
	FindByUserID(ctx context.Context, userID string) ([]models.Assessment, error)
	FindByID(ctx context.Context, assessmentID string) (*models.Assessment, error)
}
