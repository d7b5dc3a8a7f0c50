package screening

// crisisQuestionID is the PHQ-9 self-harm/suicidal ideation item. Any
// non-zero answer to it escalates the result regardless of the total score.
const crisisQuestionID = "phq9_9"

// crisisRecommendation is prepended to the recommendation list when the
// self-harm item is endorsed.
const crisisRecommendation = "URGENT: If having thoughts of self-harm, contact crisis hotline immediately"

// Classification is the severity tier data a raw score resolves to.
type Classification struct {
	Severity         Severity
	Description      string
	RiskLevel        RiskLevel
	RequiresFollowUp bool
	Recommendations  []string
}

// severityBand is one row of an instrument's threshold table. A score falls
// into the first band whose MinScore it meets, so tables must be ordered from
// the highest cutoff down and end with MinScore 0. Together the bands
// partition [0, MaxScore] with no gaps and no overlaps.
type severityBand struct {
	MinScore         int
	Severity         Severity
	Description      string
	RiskLevel        RiskLevel
	RequiresFollowUp bool
	Recommendations  []string
}

var phq9Bands = []severityBand{
	{
		MinScore:         20,
		Severity:         SeveritySevere,
		Description:      "Severe depression symptoms detected. Immediate professional intervention recommended.",
		RiskLevel:        RiskLevelHigh,
		RequiresFollowUp: true,
		Recommendations: []string{
			"Seek immediate professional mental health support",
			"Contact emergency services if having thoughts of self-harm",
			"Reach out to a trusted friend or family member",
			"Consider psychiatric evaluation for medication management",
		},
	},
	{
		MinScore:         15,
		Severity:         SeverityModeratelySevere,
		Description:      "Moderately severe depression symptoms. Professional treatment strongly recommended.",
		RiskLevel:        RiskLevelHigh,
		RequiresFollowUp: true,
		Recommendations: []string{
			"Schedule appointment with mental health professional",
			"Consider therapy (CBT, IPT, or other evidence-based treatments)",
			"Discuss medication options with healthcare provider",
			"Engage in regular physical activity and maintain sleep schedule",
		},
	},
	{
		MinScore:         10,
		Severity:         SeverityModerate,
		Description:      "Moderate depression symptoms. Professional support recommended.",
		RiskLevel:        RiskLevelMedium,
		RequiresFollowUp: true,
		Recommendations: []string{
			"Consider counseling or therapy",
			"Practice stress management techniques",
			"Maintain regular exercise and healthy diet",
			"Stay connected with supportive friends and family",
		},
	},
	{
		MinScore:         5,
		Severity:         SeverityMild,
		Description:      "Mild depression symptoms. Self-care and monitoring recommended.",
		RiskLevel:        RiskLevelMedium,
		RequiresFollowUp: false,
		Recommendations: []string{
			"Practice regular self-care activities",
			"Maintain healthy lifestyle habits",
			"Consider mindfulness or meditation",
			"Monitor symptoms and retake assessment in 2 weeks",
		},
	},
	{
		MinScore:         0,
		Severity:         SeverityMinimal,
		Description:      "Minimal depression symptoms. Continue current wellness practices.",
		RiskLevel:        RiskLevelLow,
		RequiresFollowUp: false,
		Recommendations: []string{
			"Continue current healthy habits",
			"Practice preventive self-care",
			"Stay connected with support network",
			"Regular physical activity and adequate sleep",
		},
	},
}

var gad7Bands = []severityBand{
	{
		MinScore:         15,
		Severity:         SeveritySevere,
		Description:      "Severe anxiety symptoms detected. Professional treatment recommended.",
		RiskLevel:        RiskLevelHigh,
		RequiresFollowUp: true,
		Recommendations: []string{
			"Seek professional mental health support",
			"Consider anxiety-specific therapy (CBT, exposure therapy)",
			"Discuss medication options with healthcare provider",
			"Practice relaxation techniques daily",
		},
	},
	{
		MinScore:         10,
		Severity:         SeverityModerate,
		Description:      "Moderate anxiety symptoms. Professional support recommended.",
		RiskLevel:        RiskLevelMedium,
		RequiresFollowUp: true,
		Recommendations: []string{
			"Consider counseling or therapy",
			"Practice breathing exercises and mindfulness",
			"Regular physical exercise to reduce anxiety",
			"Limit caffeine and alcohol consumption",
		},
	},
	{
		MinScore:         5,
		Severity:         SeverityMild,
		Description:      "Mild anxiety symptoms. Self-management strategies recommended.",
		RiskLevel:        RiskLevelMedium,
		RequiresFollowUp: false,
		Recommendations: []string{
			"Practice stress management techniques",
			"Regular relaxation and mindfulness exercises",
			"Maintain consistent sleep schedule",
			"Consider anxiety management apps or resources",
		},
	},
	{
		MinScore:         0,
		Severity:         SeverityMinimal,
		Description:      "Minimal anxiety symptoms. Continue current wellness practices.",
		RiskLevel:        RiskLevelLow,
		RequiresFollowUp: false,
		Recommendations: []string{
			"Continue current stress management practices",
			"Maintain healthy lifestyle habits",
			"Practice preventive relaxation techniques",
			"Stay physically active",
		},
	},
}

var ghq12Bands = []severityBand{
	{
		MinScore:         9,
		Severity:         SeveritySevere,
		Description:      "Significant psychological distress detected. Professional support recommended.",
		RiskLevel:        RiskLevelHigh,
		RequiresFollowUp: true,
		Recommendations: []string{
			"Seek professional mental health evaluation",
			"Consider comprehensive psychological assessment",
			"Discuss current stressors with healthcare provider",
			"Implement immediate stress reduction strategies",
		},
	},
	{
		MinScore:         6,
		Severity:         SeverityModerate,
		Description:      "Moderate psychological distress. Support and monitoring recommended.",
		RiskLevel:        RiskLevelMedium,
		RequiresFollowUp: true,
		Recommendations: []string{
			"Consider counseling or mental health support",
			"Practice stress management and coping strategies",
			"Evaluate current life stressors and support systems",
			"Regular self-monitoring of mental health",
		},
	},
	{
		MinScore:         3,
		Severity:         SeverityMild,
		Description:      "Mild psychological distress. Self-care and monitoring recommended.",
		RiskLevel:        RiskLevelMedium,
		RequiresFollowUp: false,
		Recommendations: []string{
			"Practice regular self-care activities",
			"Monitor stress levels and coping strategies",
			"Maintain social connections and support",
			"Consider stress reduction techniques",
		},
	},
	{
		MinScore:         0,
		Severity:         SeverityMinimal,
		Description:      "Minimal psychological distress. Good overall mental health.",
		RiskLevel:        RiskLevelLow,
		RequiresFollowUp: false,
		Recommendations: []string{
			"Continue current wellness practices",
			"Maintain healthy work-life balance",
			"Stay connected with support network",
			"Practice preventive mental health care",
		},
	},
}

func bandsFor(instrument Instrument) []severityBand {
	switch instrument {
	case InstrumentPHQ9:
		return phq9Bands
	case InstrumentGAD7:
		return gad7Bands
	case InstrumentGHQ12:
		return ghq12Bands
	}
	return nil
}

// Classify resolves a raw score to its severity tier. The returned
// recommendation list is a copy, safe for the caller to mutate.
func Classify(instrument Instrument, score int) Classification {
	bands := bandsFor(instrument)
	band := bands[len(bands)-1]
	for _, candidate := range bands {
		if score >= candidate.MinScore {
			band = candidate
			break
		}
	}

	recommendations := make([]string, len(band.Recommendations))
	copy(recommendations, band.Recommendations)

	return Classification{
		Severity:         band.Severity,
		Description:      band.Description,
		RiskLevel:        band.RiskLevel,
		RequiresFollowUp: band.RequiresFollowUp,
		Recommendations:  recommendations,
	}
}

// Evaluate scores and classifies one instrument against the answer map. For
// PHQ-9 the crisis override runs after classification: an endorsed self-harm
// item forces risk level to high and requires follow-up, and the urgent
// crisis recommendation is prepended. Severity and description stay as
// classified; only the risk posture escalates.
func Evaluate(instrument Instrument, answers AnswerMap) AssessmentResult {
	score := Score(instrument, answers)
	classification := Classify(instrument, score)

	result := AssessmentResult{
		ToolName:         instrument.ToolName(),
		Category:         instrument.Category(),
		Score:            score,
		MaxScore:         instrument.MaxScore(),
		Severity:         classification.Severity,
		Description:      classification.Description,
		Recommendations:  classification.Recommendations,
		RiskLevel:        classification.RiskLevel,
		RequiresFollowUp: classification.RequiresFollowUp,
	}

	if instrument == InstrumentPHQ9 && answerOrDefault(answers, crisisQuestionID) > 0 {
		result.RiskLevel = RiskLevelHigh
		result.RequiresFollowUp = true
		result.Recommendations = append([]string{crisisRecommendation}, result.Recommendations...)
	}

	return result
}

// EvaluateAll scores every instrument independently against the same answer
// map, in presentation order.
func EvaluateAll(answers AnswerMap) []AssessmentResult {
	results := make([]AssessmentResult, 0, len(Instruments()))
	for _, instrument := range Instruments() {
		results = append(results, Evaluate(instrument, answers))
	}
	return results
}

// EvaluateScope evaluates the instruments selected by the scope.
func EvaluateScope(scope Scope, answers AnswerMap) []AssessmentResult {
	instruments := scope.Instruments()
	results := make([]AssessmentResult, 0, len(instruments))
	for _, instrument := range instruments {
		results = append(results, Evaluate(instrument, answers))
	}
	return results
}
