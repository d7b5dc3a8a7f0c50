package responses

import (
	"mindwell-service/internal/pkg/screening"
	"time"
)

type SubmitAssessment struct {
	AssessmentID string                       `json:"assessment_id"`
	Results      []screening.AssessmentResult `json:"results"`
	OverallRisk  screening.RiskLevel          `json:"overall_risk"`
}

type Assessment struct {
	ID             string                       `json:"id"`
	AssessmentType string                       `json:"assessment_type"`
	Answers        map[string]int               `json:"answers"`
	Results        []screening.AssessmentResult `json:"results"`
	OverallRisk    screening.RiskLevel          `json:"overall_risk"`
	CreatedAt      time.Time                    `json:"created_at"`
}
