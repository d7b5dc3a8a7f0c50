package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// answersFor builds an answer map covering every question of the instrument
// with the given value, capped at the question's highest option value.
func answersFor(instrument Instrument, value int) AnswerMap {
	answers := make(AnswerMap)
	for _, question := range QuestionsFor(instrument) {
		capped := value
		if max := question.Options[len(question.Options)-1].Value; capped > max {
			capped = max
		}
		answers[question.ID] = capped
	}
	return answers
}

func TestScore(t *testing.T) {
	t.Run("empty answer map scores zero", func(t *testing.T) {
		for _, instrument := range Instruments() {
			assert.Equal(t, 0, Score(instrument, AnswerMap{}), "instrument %s", instrument)
		}
	})

	t.Run("all highest options reach max score", func(t *testing.T) {
		for _, instrument := range Instruments() {
			answers := answersFor(instrument, 3)
			assert.Equal(t, instrument.MaxScore(), Score(instrument, answers), "instrument %s", instrument)
		}
	})

	t.Run("missing answers contribute zero", func(t *testing.T) {
		answers := AnswerMap{"phq9_1": 3, "phq9_2": 2}
		assert.Equal(t, 5, Score(InstrumentPHQ9, answers))
	})

	t.Run("unrelated keys are ignored", func(t *testing.T) {
		answers := AnswerMap{"phq9_1": 2, "phq9_5": 1}
		base := Score(InstrumentPHQ9, answers)

		answers["gad7_3"] = 3
		answers["ghq12_9"] = 1
		answers["not_a_question"] = 99

		assert.Equal(t, base, Score(InstrumentPHQ9, answers))
	})

	t.Run("score stays within bounds for valid option values", func(t *testing.T) {
		for _, instrument := range Instruments() {
			for value := 0; value <= 3; value++ {
				score := Score(instrument, answersFor(instrument, value))
				assert.GreaterOrEqual(t, score, 0, "instrument %s value %d", instrument, value)
				assert.LessOrEqual(t, score, instrument.MaxScore(), "instrument %s value %d", instrument, value)
			}
		}
	})
}
