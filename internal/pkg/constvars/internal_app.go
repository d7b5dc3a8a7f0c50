package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "MNDWL_SVC_"
)

const (
	MongoCollectionUsers       = "users"
	MongoCollectionProfiles    = "profiles"
	MongoCollectionAssessments = "assessments"
)

const (
	RedisSessionKeyFormat     = "session:%s"
	RedisRiskSummaryKeyFormat = "risk_summary:%s"
)

const (
	URLParamAssessmentID = "assessment_id"
	QueryParamInstrument = "instrument"
)
