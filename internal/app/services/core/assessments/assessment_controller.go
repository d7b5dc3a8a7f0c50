package assessments

import (
	"context"
	"encoding/json"
	"mindwell-service/internal/app/contracts"
	"mindwell-service/internal/pkg/constvars"
	"mindwell-service/internal/pkg/dto/requests"
	"mindwell-service/internal/pkg/exceptions"
	"mindwell-service/internal/pkg/screening"
	"mindwell-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
	}
}

func (ctrl *AssessmentController) FindQuestions(w http.ResponseWriter, r *http.Request) {
	instrument := r.URL.Query().Get(constvars.QueryParamInstrument)
	if instrument == "" {
		instrument = string(screening.ScopeAll)
	}

	scope, err := screening.ParseScope(instrument)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.QueryParamInstrument))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	questions, err := ctrl.AssessmentUsecase.FindQuestions(ctx, scope)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindQuestionsSuccessMessage, questions)
}

func (ctrl *AssessmentController) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)

	request := new(requests.SubmitAssessment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = userID

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.SubmitAssessment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitAssessmentSuccessMessage, response)
}

func (ctrl *AssessmentController) FindAssessments(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)

	request := &requests.FindAssessments{UserID: userID}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAssessmentsByUserID(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAssessmentsSuccessMessage, response)
}

func (ctrl *AssessmentController) FindAssessmentByID(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)

	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)
	if assessmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAssessmentID))
		return
	}

	request := &requests.FindAssessmentByID{
		UserID:       userID,
		AssessmentID: assessmentID,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAssessmentByID(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAssessmentSuccessMessage, response)
}
