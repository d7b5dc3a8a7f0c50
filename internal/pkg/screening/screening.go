// Package screening implements the PHQ-9, GAD-7 and GHQ-12 mental health
// screening instruments: question catalogs, raw score calculation, severity
// classification against published cutoffs, the self-harm crisis override and
// the overall risk resolution across instruments.
//
// Every function in this package is a pure function of its arguments. Nothing
// here reads or writes state, so concurrent use needs no synchronization.
package screening

import "fmt"

// Instrument identifies one screening tool.
type Instrument string

const (
	InstrumentPHQ9  Instrument = "phq9"
	InstrumentGAD7  Instrument = "gad7"
	InstrumentGHQ12 Instrument = "ghq12"
)

// Instruments returns every supported instrument in presentation order.
func Instruments() []Instrument {
	return []Instrument{InstrumentPHQ9, InstrumentGAD7, InstrumentGHQ12}
}

// MaxScore returns the highest raw score the instrument can produce.
func (i Instrument) MaxScore() int {
	switch i {
	case InstrumentPHQ9:
		return 27
	case InstrumentGAD7:
		return 21
	case InstrumentGHQ12:
		return 12
	}
	return 0
}

// ToolName returns the clinical name of the instrument.
func (i Instrument) ToolName() string {
	switch i {
	case InstrumentPHQ9:
		return "PHQ-9"
	case InstrumentGAD7:
		return "GAD-7"
	case InstrumentGHQ12:
		return "GHQ-12"
	}
	return ""
}

// Category returns the condition the instrument screens for.
func (i Instrument) Category() string {
	switch i {
	case InstrumentPHQ9:
		return "Depression"
	case InstrumentGAD7:
		return "Anxiety"
	case InstrumentGHQ12:
		return "General Psychological Distress"
	}
	return ""
}

// Severity is an ordered classification bucket for one instrument's score.
type Severity string

const (
	SeverityMinimal          Severity = "minimal"
	SeverityMild             Severity = "mild"
	SeverityModerate         Severity = "moderate"
	SeverityModeratelySevere Severity = "moderately-severe"
	SeveritySevere           Severity = "severe"
)

// RiskLevel is the coarse three-valued label used for cross-instrument
// comparison and UI escalation.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Option is one selectable answer for a question.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Question is one item of an instrument. IDs are globally unique across all
// instruments so a single answer map can hold a combined submission.
type Question struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Instrument Instrument `json:"instrument"`
	Options    []Option   `json:"options"`
}

// AnswerMap maps question ids to the selected option value. Keys that do not
// belong to the instrument being scored are ignored.
type AnswerMap map[string]int

// AssessmentResult is the complete outcome of scoring one instrument.
type AssessmentResult struct {
	ToolName         string    `json:"toolName" bson:"toolName"`
	Category         string    `json:"category" bson:"category"`
	Score            int       `json:"score" bson:"score"`
	MaxScore         int       `json:"maxScore" bson:"maxScore"`
	Severity         Severity  `json:"severity" bson:"severity"`
	Description      string    `json:"description" bson:"description"`
	Recommendations  []string  `json:"recommendations" bson:"recommendations"`
	RiskLevel        RiskLevel `json:"riskLevel" bson:"riskLevel"`
	RequiresFollowUp bool      `json:"requiresFollowUp" bson:"requiresFollowUp"`
}

// Scope selects which instruments a submission covers.
type Scope string

const (
	ScopePHQ9  Scope = Scope(InstrumentPHQ9)
	ScopeGAD7  Scope = Scope(InstrumentGAD7)
	ScopeGHQ12 Scope = Scope(InstrumentGHQ12)
	ScopeAll   Scope = "all"
)

// ParseScope converts a wire value into a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopePHQ9, ScopeGAD7, ScopeGHQ12, ScopeAll:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown instrument scope %q", s)
}

// Instruments returns the instruments covered by the scope in presentation
// order.
func (s Scope) Instruments() []Instrument {
	if s == ScopeAll {
		return Instruments()
	}
	return []Instrument{Instrument(s)}
}
