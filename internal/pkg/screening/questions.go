package screening

// Shared option scale for PHQ-9 and GAD-7 items (DSM frequency scale).
var frequencyOptions = []Option{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

// GHQ-12 option scales. The four-point Likert answers are binarized to 0/0/1/1
// (standard GHQ scoring), so each item contributes at most 1 to the total.
var ghqMoreThanUsualOptions = []Option{
	{Value: 0, Label: "Not at all"},
	{Value: 0, Label: "No more than usual"},
	{Value: 1, Label: "Rather more than usual"},
	{Value: 1, Label: "Much more than usual"},
}

var ghqLessThanUsualOptions = []Option{
	{Value: 0, Label: "More so than usual"},
	{Value: 0, Label: "Same as usual"},
	{Value: 1, Label: "Less so than usual"},
	{Value: 1, Label: "Much less than usual"},
}

var phq9Questions = []Question{
	{
		ID:         "phq9_1",
		Text:       "Over the last 2 weeks, how often have you been bothered by little interest or pleasure in doing things?",
		Instrument: InstrumentPHQ9,
		Options:    frequencyOptions,
	},
	{
		ID:         "phq9_2",
		Text:       "Over the last 2 weeks, how often have you been bothered by feeling down, depressed, or hopeless?",
		Instrument: InstrumentPHQ9,
		Options:    frequencyOptions,
	},
	{
		ID:         "phq9_3",
		Text:       "Over the last 2 weeks, how often have you been bothered by trouble falling or staying asleep, or sleeping too much?",
		Instrument: InstrumentPHQ9,
		Options:    frequencyOptions,
	},
	{
		ID:         "phq9_4",
		Text:       "Over the last 2 weeks, how often have you been bothered by feeling tired or having little energy?",
		Instrument: InstrumentPHQ9,
		Options:    frequencyOptions,
	},
	{
		ID:         "phq9_5",
		Text:       "Over the last 2 weeks, how often have you been bothered by poor appetite or overeating?",
		Instrument: InstrumentPHQ9,
		Options:    frequencyOptions,
	},
	{
		ID:         "phq9_6",
		Text:       "Over the last 2 weeks, how often have you been bothered by feeling bad about yourself or that you are a failure or have let yourself or your family down?",
		Instrument: InstrumentPHQ9,
		Options:    frequencyOptions,
	},
	{
		ID:         "phq9_7",
		Text:       "Over the last 2 weeks, how often have you been bothered by trouble concentrating on things, such as reading the newspaper or watching television?",
		Instrument: InstrumentPHQ9,
		Options:    frequencyOptions,
	},
	{
		ID:         "phq9_8",
		Text:       "Over the last 2 weeks, how often have you been bothered by moving or speaking so slowly that other people could have noticed? Or the opposite being so fidgety or restless that you have been moving around a lot more than usual?",
		Instrument: InstrumentPHQ9,
		Options:    frequencyOptions,
	},
	{
		ID:         "phq9_9",
		Text:       "Over the last 2 weeks, how often have you been bothered by thoughts that you would be better off dead, or of hurting yourself?",
		Instrument: InstrumentPHQ9,
		Options:    frequencyOptions,
	},
}

var gad7Questions = []Question{
	{
		ID:         "gad7_1",
		Text:       "Over the last 2 weeks, how often have you been bothered by feeling nervous, anxious, or on edge?",
		Instrument: InstrumentGAD7,
		Options:    frequencyOptions,
	},
	{
		ID:         "gad7_2",
		Text:       "Over the last 2 weeks, how often have you been bothered by not being able to stop or control worrying?",
		Instrument: InstrumentGAD7,
		Options:    frequencyOptions,
	},
	{
		ID:         "gad7_3",
		Text:       "Over the last 2 weeks, how often have you been bothered by worrying too much about different things?",
		Instrument: InstrumentGAD7,
		Options:    frequencyOptions,
	},
	{
		ID:         "gad7_4",
		Text:       "Over the last 2 weeks, how often have you been bothered by trouble relaxing?",
		Instrument: InstrumentGAD7,
		Options:    frequencyOptions,
	},
	{
		ID:         "gad7_5",
		Text:       "Over the last 2 weeks, how often have you been bothered by being so restless that it is hard to sit still?",
		Instrument: InstrumentGAD7,
		Options:    frequencyOptions,
	},
	{
		ID:         "gad7_6",
		Text:       "Over the last 2 weeks, how often have you been bothered by becoming easily annoyed or irritable?",
		Instrument: InstrumentGAD7,
		Options:    frequencyOptions,
	},
	{
		ID:         "gad7_7",
		Text:       "Over the last 2 weeks, how often have you been bothered by feeling afraid, as if something awful might happen?",
		Instrument: InstrumentGAD7,
		Options:    frequencyOptions,
	},
}

var ghq12Questions = []Question{
	{
		ID:         "ghq12_1",
		Text:       "Over the past few weeks, have you been able to concentrate on whatever you are doing?",
		Instrument: InstrumentGHQ12,
		Options: []Option{
			{Value: 0, Label: "Better than usual"},
			{Value: 0, Label: "Same as usual"},
			{Value: 1, Label: "Less than usual"},
			{Value: 1, Label: "Much less than usual"},
		},
	},
	{
		ID:         "ghq12_2",
		Text:       "Over the past few weeks, have you lost much sleep over worry?",
		Instrument: InstrumentGHQ12,
		Options:    ghqMoreThanUsualOptions,
	},
	{
		ID:         "ghq12_3",
		Text:       "Over the past few weeks, have you felt that you are playing a useful part in things?",
		Instrument: InstrumentGHQ12,
		Options:    ghqLessThanUsualOptions,
	},
	{
		ID:         "ghq12_4",
		Text:       "Over the past few weeks, have you felt capable of making decisions about things?",
		Instrument: InstrumentGHQ12,
		Options:    ghqLessThanUsualOptions,
	},
	{
		ID:         "ghq12_5",
		Text:       "Over the past few weeks, have you felt constantly under strain?",
		Instrument: InstrumentGHQ12,
		Options:    ghqMoreThanUsualOptions,
	},
	{
		ID:         "ghq12_6",
		Text:       "Over the past few weeks, have you felt you could not overcome your difficulties?",
		Instrument: InstrumentGHQ12,
		Options:    ghqMoreThanUsualOptions,
	},
	{
		ID:         "ghq12_7",
		Text:       "Over the past few weeks, have you been able to enjoy your normal day-to-day activities?",
		Instrument: InstrumentGHQ12,
		Options:    ghqLessThanUsualOptions,
	},
	{
		ID:         "ghq12_8",
		Text:       "Over the past few weeks, have you been able to face up to your problems?",
		Instrument: InstrumentGHQ12,
		Options:    ghqLessThanUsualOptions,
	},
	{
		ID:         "ghq12_9",
		Text:       "Over the past few weeks, have you been feeling unhappy and depressed?",
		Instrument: InstrumentGHQ12,
		Options:    ghqMoreThanUsualOptions,
	},
	{
		ID:         "ghq12_10",
		Text:       "Over the past few weeks, have you been losing confidence in yourself?",
		Instrument: InstrumentGHQ12,
		Options:    ghqMoreThanUsualOptions,
	},
	{
		ID:         "ghq12_11",
		Text:       "Over the past few weeks, have you been thinking of yourself as a worthless person?",
		Instrument: InstrumentGHQ12,
		Options:    ghqMoreThanUsualOptions,
	},
	{
		ID:         "ghq12_12",
		Text:       "Over the past few weeks, have you been feeling reasonably happy, all things considered?",
		Instrument: InstrumentGHQ12,
		Options: []Option{
			{Value: 0, Label: "More so than usual"},
			{Value: 0, Label: "About same as usual"},
			{Value: 1, Label: "Less so than usual"},
			{Value: 1, Label: "Much less than usual"},
		},
	},
}

// QuestionsFor returns the ordered question set of one instrument.
func QuestionsFor(instrument Instrument) []Question {
	switch instrument {
	case InstrumentPHQ9:
		return phq9Questions
	case InstrumentGAD7:
		return gad7Questions
	case InstrumentGHQ12:
		return ghq12Questions
	}
	return nil
}

// AllQuestions returns the questions of all instruments concatenated in
// presentation order.
func AllQuestions() []Question {
	questions := make([]Question, 0, len(phq9Questions)+len(gad7Questions)+len(ghq12Questions))
	questions = append(questions, phq9Questions...)
	questions = append(questions, gad7Questions...)
	questions = append(questions, ghq12Questions...)
	return questions
}
