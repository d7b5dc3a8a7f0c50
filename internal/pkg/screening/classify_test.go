package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("PHQ-9 tier boundaries", func(t *testing.T) {
		cases := []struct {
			score    int
			severity Severity
			risk     RiskLevel
			followUp bool
		}{
			{0, SeverityMinimal, RiskLevelLow, false},
			{4, SeverityMinimal, RiskLevelLow, false},
			{5, SeverityMild, RiskLevelMedium, false},
			{9, SeverityMild, RiskLevelMedium, false},
			{10, SeverityModerate, RiskLevelMedium, true},
			{14, SeverityModerate, RiskLevelMedium, true},
			{15, SeverityModeratelySevere, RiskLevelHigh, true},
			{19, SeverityModeratelySevere, RiskLevelHigh, true},
			{20, SeveritySevere, RiskLevelHigh, true},
			{27, SeveritySevere, RiskLevelHigh, true},
		}
		for _, tc := range cases {
			classification := Classify(InstrumentPHQ9, tc.score)
			assert.Equal(t, tc.severity, classification.Severity, "score %d", tc.score)
			assert.Equal(t, tc.risk, classification.RiskLevel, "score %d", tc.score)
			assert.Equal(t, tc.followUp, classification.RequiresFollowUp, "score %d", tc.score)
		}
	})

	t.Run("GAD-7 tier boundaries", func(t *testing.T) {
		cases := []struct {
			score    int
			severity Severity
			risk     RiskLevel
			followUp bool
		}{
			{0, SeverityMinimal, RiskLevelLow, false},
			{4, SeverityMinimal, RiskLevelLow, false},
			{5, SeverityMild, RiskLevelMedium, false},
			{9, SeverityMild, RiskLevelMedium, false},
			{10, SeverityModerate, RiskLevelMedium, true},
			{14, SeverityModerate, RiskLevelMedium, true},
			{15, SeveritySevere, RiskLevelHigh, true},
			{21, SeveritySevere, RiskLevelHigh, true},
		}
		for _, tc := range cases {
			classification := Classify(InstrumentGAD7, tc.score)
			assert.Equal(t, tc.severity, classification.Severity, "score %d", tc.score)
			assert.Equal(t, tc.risk, classification.RiskLevel, "score %d", tc.score)
			assert.Equal(t, tc.followUp, classification.RequiresFollowUp, "score %d", tc.score)
		}
	})

	t.Run("GHQ-12 tier boundaries", func(t *testing.T) {
		cases := []struct {
			score    int
			severity Severity
			risk     RiskLevel
			followUp bool
		}{
			{0, SeverityMinimal, RiskLevelLow, false},
			{2, SeverityMinimal, RiskLevelLow, false},
			{3, SeverityMild, RiskLevelMedium, false},
			{5, SeverityMild, RiskLevelMedium, false},
			{6, SeverityModerate, RiskLevelMedium, true},
			{8, SeverityModerate, RiskLevelMedium, true},
			{9, SeveritySevere, RiskLevelHigh, true},
			{12, SeveritySevere, RiskLevelHigh, true},
		}
		for _, tc := range cases {
			classification := Classify(InstrumentGHQ12, tc.score)
			assert.Equal(t, tc.severity, classification.Severity, "score %d", tc.score)
			assert.Equal(t, tc.risk, classification.RiskLevel, "score %d", tc.score)
			assert.Equal(t, tc.followUp, classification.RequiresFollowUp, "score %d", tc.score)
		}
	})

	t.Run("tiers partition the whole score range", func(t *testing.T) {
		for _, instrument := range Instruments() {
			previous := Classify(instrument, 0)
			for score := 0; score <= instrument.MaxScore(); score++ {
				classification := Classify(instrument, score)
				assert.NotEmpty(t, classification.Severity, "instrument %s score %d", instrument, score)
				assert.NotEmpty(t, classification.Description, "instrument %s score %d", instrument, score)
				assert.NotEmpty(t, classification.Recommendations, "instrument %s score %d", instrument, score)
				// Severity never steps back down as the score climbs.
				assert.GreaterOrEqual(t, severityRank(classification.Severity), severityRank(previous.Severity),
					"instrument %s score %d", instrument, score)
				previous = classification
			}
		}
	})

	t.Run("GAD-7 and GHQ-12 never use moderately-severe", func(t *testing.T) {
		for _, instrument := range []Instrument{InstrumentGAD7, InstrumentGHQ12} {
			for score := 0; score <= instrument.MaxScore(); score++ {
				classification := Classify(instrument, score)
				assert.NotEqual(t, SeverityModeratelySevere, classification.Severity,
					"instrument %s score %d", instrument, score)
			}
		}
	})

	t.Run("returned recommendations are a copy", func(t *testing.T) {
		first := Classify(InstrumentPHQ9, 0)
		first.Recommendations[0] = "mutated"

		second := Classify(InstrumentPHQ9, 0)
		assert.NotEqual(t, "mutated", second.Recommendations[0])
	})
}

func severityRank(severity Severity) int {
	switch severity {
	case SeverityMinimal:
		return 0
	case SeverityMild:
		return 1
	case SeverityModerate:
		return 2
	case SeverityModeratelySevere:
		return 3
	case SeveritySevere:
		return 4
	}
	return -1
}

func TestEvaluate(t *testing.T) {
	t.Run("PHQ-9 all zeros is minimal and low risk", func(t *testing.T) {
		result := Evaluate(InstrumentPHQ9, answersFor(InstrumentPHQ9, 0))

		assert.Equal(t, "PHQ-9", result.ToolName)
		assert.Equal(t, "Depression", result.Category)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 27, result.MaxScore)
		assert.Equal(t, SeverityMinimal, result.Severity)
		assert.Equal(t, RiskLevelLow, result.RiskLevel)
		assert.False(t, result.RequiresFollowUp)
	})

	t.Run("PHQ-9 all threes is severe and high risk", func(t *testing.T) {
		result := Evaluate(InstrumentPHQ9, answersFor(InstrumentPHQ9, 3))

		assert.Equal(t, 27, result.Score)
		assert.Equal(t, SeveritySevere, result.Severity)
		assert.Equal(t, RiskLevelHigh, result.RiskLevel)
		assert.True(t, result.RequiresFollowUp)
	})

	t.Run("GAD-7 score 12 is moderate", func(t *testing.T) {
		answers := AnswerMap{"gad7_1": 3, "gad7_2": 3, "gad7_3": 3, "gad7_4": 3}
		result := Evaluate(InstrumentGAD7, answers)

		assert.Equal(t, 12, result.Score)
		assert.Equal(t, SeverityModerate, result.Severity)
		assert.Equal(t, RiskLevelMedium, result.RiskLevel)
		assert.True(t, result.RequiresFollowUp)
	})

	t.Run("GHQ-12 score 4 is mild without follow-up", func(t *testing.T) {
		answers := AnswerMap{"ghq12_2": 1, "ghq12_5": 1, "ghq12_6": 1, "ghq12_9": 1}
		result := Evaluate(InstrumentGHQ12, answers)

		assert.Equal(t, 4, result.Score)
		assert.Equal(t, SeverityMild, result.Severity)
		assert.Equal(t, RiskLevelMedium, result.RiskLevel)
		assert.False(t, result.RequiresFollowUp)
	})
}

func TestCrisisOverride(t *testing.T) {
	t.Run("endorsed self-harm item escalates a minimal result", func(t *testing.T) {
		answers := answersFor(InstrumentPHQ9, 0)
		answers["phq9_9"] = 1

		result := Evaluate(InstrumentPHQ9, answers)

		assert.Equal(t, 1, result.Score)
		assert.Equal(t, SeverityMinimal, result.Severity, "severity stays as classified")
		assert.Equal(t, RiskLevelHigh, result.RiskLevel, "risk level is forced to high")
		assert.True(t, result.RequiresFollowUp)
		assert.Equal(t, "URGENT: If having thoughts of self-harm, contact crisis hotline immediately", result.Recommendations[0])
		assert.Greater(t, len(result.Recommendations), 1, "existing recommendations are kept")
	})

	t.Run("override applies at every endorsement level and total score", func(t *testing.T) {
		for _, base := range []int{0, 1, 2, 3} {
			for _, endorsement := range []int{1, 2, 3} {
				answers := answersFor(InstrumentPHQ9, base)
				answers["phq9_9"] = endorsement

				result := Evaluate(InstrumentPHQ9, answers)
				assert.Equal(t, RiskLevelHigh, result.RiskLevel, "base %d endorsement %d", base, endorsement)
				assert.True(t, result.RequiresFollowUp, "base %d endorsement %d", base, endorsement)
			}
		}
	})

	t.Run("unendorsed self-harm item does not escalate", func(t *testing.T) {
		answers := answersFor(InstrumentPHQ9, 0)
		answers["phq9_9"] = 0

		result := Evaluate(InstrumentPHQ9, answers)
		assert.Equal(t, RiskLevelLow, result.RiskLevel)
		assert.False(t, result.RequiresFollowUp)
	})

	t.Run("other instruments ignore the self-harm item", func(t *testing.T) {
		answers := AnswerMap{"phq9_9": 3}

		result := Evaluate(InstrumentGAD7, answers)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, RiskLevelLow, result.RiskLevel)
	})
}

func TestEvaluateScope(t *testing.T) {
	t.Run("single scope yields one result", func(t *testing.T) {
		results := EvaluateScope(ScopeGAD7, AnswerMap{"gad7_1": 2})
		assert.Len(t, results, 1)
		assert.Equal(t, "GAD-7", results[0].ToolName)
	})

	t.Run("all scope yields three results with a combined map", func(t *testing.T) {
		// PHQ-9 all zeros, GAD-7 summing to 12, GHQ-12 summing to 4.
		answers := answersFor(InstrumentPHQ9, 0)
		answers["gad7_1"] = 3
		answers["gad7_2"] = 3
		answers["gad7_3"] = 3
		answers["gad7_4"] = 3
		answers["ghq12_2"] = 1
		answers["ghq12_5"] = 1
		answers["ghq12_6"] = 1
		answers["ghq12_9"] = 1

		results := EvaluateScope(ScopeAll, answers)
		assert.Len(t, results, 3)
		assert.Equal(t, SeverityMinimal, results[0].Severity)
		assert.Equal(t, SeverityModerate, results[1].Severity)
		assert.Equal(t, SeverityMild, results[2].Severity)

		assert.Equal(t, RiskLevelMedium, ResolveOverallRisk(results))
	})
}
