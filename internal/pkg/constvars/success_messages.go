package constvars

const (
	RegisterUserSuccessMessage     = "Successfully registered user"
	LoginUserSuccessMessage        = "Successfully logged in"
	LogoutUserSuccessMessage       = "Successfully logged out"
	FindQuestionsSuccessMessage    = "Successfully fetched questions"
	SubmitAssessmentSuccessMessage = "Assessment saved successfully"
	FindAssessmentsSuccessMessage  = "Successfully fetched assessments"
	FindAssessmentSuccessMessage   = "Successfully fetched assessment"
	FindProfileSuccessMessage      = "Successfully fetched profile"
	UpdateProfileSuccessMessage    = "Successfully updated profile"
	FindRiskSummarySuccessMessage  = "Successfully fetched risk summary"
)
