package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingUserIDKey          = "user_id"
	LoggingAssessmentIDKey    = "assessment_id"
	LoggingAssessmentTypeKey  = "assessment_type"
	LoggingInstrumentKey      = "instrument"
	LoggingScoreKey           = "score"
	LoggingOverallRiskKey     = "overall_risk"
	LoggingResultCountKey     = "result_count"
	LoggingQuestionCountKey   = "question_count"
	LoggingAnswerCountKey     = "answer_count"
	LoggingAssessmentCountKey = "assessment_count"
)
