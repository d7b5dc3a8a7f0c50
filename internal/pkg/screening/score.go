package screening

// Score sums the answer values of one instrument's questions. Answer map keys
// that belong to other instruments (or to nothing at all) are ignored, so one
// combined map can back a multi-instrument submission.
func Score(instrument Instrument, answers AnswerMap) int {
	score := 0
	for _, question := range QuestionsFor(instrument) {
		score += answerOrDefault(answers, question.ID)
	}
	return score
}

// answerOrDefault resolves one question's contribution to the total.
//
// A question with no entry in the map contributes 0. That conflates "not
// answered" with "answered with the lowest option", which is also 0 on every
// scale; the ambiguity is inherited product behavior that allows partial
// submissions to still yield a best-effort score. Keep the policy in this one
// place so revisiting it stays a one-line change.
func answerOrDefault(answers AnswerMap, questionID string) int {
	return answers[questionID]
}
