package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionsFor(t *testing.T) {
	t.Run("PHQ-9 has 9 questions", func(t *testing.T) {
		assert.Len(t, QuestionsFor(InstrumentPHQ9), 9)
	})

	t.Run("GAD-7 has 7 questions", func(t *testing.T) {
		assert.Len(t, QuestionsFor(InstrumentGAD7), 7)
	})

	t.Run("GHQ-12 has 12 questions", func(t *testing.T) {
		assert.Len(t, QuestionsFor(InstrumentGHQ12), 12)
	})

	t.Run("unknown instrument has no questions", func(t *testing.T) {
		assert.Nil(t, QuestionsFor(Instrument("mmpi")))
	})

	t.Run("every question is tagged with its instrument", func(t *testing.T) {
		for _, instrument := range Instruments() {
			for _, question := range QuestionsFor(instrument) {
				assert.Equal(t, instrument, question.Instrument, "question %s", question.ID)
			}
		}
	})

	t.Run("every question offers four options", func(t *testing.T) {
		for _, question := range AllQuestions() {
			assert.Len(t, question.Options, 4, "question %s", question.ID)
		}
	})
}

func TestAllQuestions(t *testing.T) {
	questions := AllQuestions()
	assert.Len(t, questions, 28)

	t.Run("question ids are globally unique", func(t *testing.T) {
		seen := make(map[string]bool, len(questions))
		for _, question := range questions {
			assert.False(t, seen[question.ID], "duplicate question id %s", question.ID)
			seen[question.ID] = true
		}
	})

	t.Run("instrument max score matches its option values", func(t *testing.T) {
		for _, instrument := range Instruments() {
			maxSum := 0
			for _, question := range QuestionsFor(instrument) {
				maxValue := 0
				for _, option := range question.Options {
					assert.GreaterOrEqual(t, option.Value, 0, "question %s", question.ID)
					if option.Value > maxValue {
						maxValue = option.Value
					}
				}
				maxSum += maxValue
			}
			assert.Equal(t, instrument.MaxScore(), maxSum, "instrument %s", instrument)
		}
	})
}

func TestParseScope(t *testing.T) {
	t.Run("accepts each instrument and all", func(t *testing.T) {
		for _, value := range []string{"phq9", "gad7", "ghq12", "all"} {
			scope, err := ParseScope(value)
			assert.NoError(t, err)
			assert.Equal(t, Scope(value), scope)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ParseScope("phq-9")
		assert.Error(t, err)

		_, err = ParseScope("")
		assert.Error(t, err)
	})

	t.Run("all expands to every instrument in order", func(t *testing.T) {
		assert.Equal(t, []Instrument{InstrumentPHQ9, InstrumentGAD7, InstrumentGHQ12}, ScopeAll.Instruments())
	})

	t.Run("single scope expands to one instrument", func(t *testing.T) {
		assert.Equal(t, []Instrument{InstrumentGAD7}, ScopeGAD7.Instruments())
	})
}
