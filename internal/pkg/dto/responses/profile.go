package responses

import (
	"mindwell-service/internal/pkg/screening"
	"time"
)

type Profile struct {
	Age           *int       `json:"age"`
	Locality      string     `json:"locality"`
	PersonalNotes string     `json:"personal_notes"`
	Goals         string     `json:"goals"`
	PHQ9Score     *int       `json:"phq9_score"`
	GAD7Score     *int       `json:"gad7_score"`
	GHQ12Score    *int       `json:"ghq12_score"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type InstrumentRisk struct {
	Instrument screening.Instrument `json:"instrument"`
	ToolName   string               `json:"tool_name"`
	Score      int                  `json:"score"`
	MaxScore   int                  `json:"max_score"`
	Severity   screening.Severity   `json:"severity"`
	RiskLevel  screening.RiskLevel  `json:"risk_level"`
}

type RiskSummary struct {
	OverallRisk screening.RiskLevel `json:"overall_risk"`
	Instruments []InstrumentRisk    `json:"instruments"`
}
