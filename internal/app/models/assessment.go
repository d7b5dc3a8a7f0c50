package models

import (
	"mindwell-service/internal/pkg/screening"
	"time"
)

// Assessment is the audit record of one submission: the raw answer map as
// received plus the computed results. Results are immutable once stored.
type Assessment struct {
	ID             string                       `bson:"_id,omitempty"`
	UserID         string                       `bson:"userId"`
	AssessmentType string                       `bson:"assessmentType"`
	Answers        map[string]int               `bson:"answers"`
	Results        []screening.AssessmentResult `bson:"results"`
	OverallRisk    screening.RiskLevel          `bson:"overallRisk"`
	CreatedAt      time.Time                    `bson:"createdAt"`
}
