package requests

type SubmitAssessment struct {
	// Set from the session, never from the request body.
	UserID string `json:"-"`

	AssessmentType string         `json:"assessment_type" validate:"required,oneof=phq9 gad7 ghq12 all"`
	Answers        map[string]int `json:"answers" validate:"required,dive,gte=0"`
}

type FindAssessments struct {
	UserID string `json:"-"`
}

type FindAssessmentByID struct {
	UserID       string `json:"-"`
	AssessmentID string `json:"-"`
}
