package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientEmailAlreadyExists            = "Email already registered"
	ErrClientUsernameAlreadyExists         = "Username already taken"
	ErrClientAssessmentNotFound            = "Assessment not found"
	ErrClientProfileNotFound               = "Profile not found"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
)

// Developer-facing messages
const (
	ErrDevCannotParseJSON           = "Failed to parse JSON request body"
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevURLParamIDValidation      = "URL parameter %s is missing or invalid"
	ErrDevQueryParamValidation      = "Query parameter %s is invalid"
	ErrDevFailedToHashPassword      = "Failed to hash password"
	ErrDevInvalidCredentials        = "Supplied credentials do not match any user"
	ErrDevEmailAlreadyExists        = "Email already exists in users collection"
	ErrDevUsernameAlreadyExists     = "Username already exists in users collection"
	ErrDevUserNotExists             = "User does not exist"
	ErrDevAssessmentNotExists       = "Assessment document does not exist"
	ErrDevProfileNotExists          = "Profile document does not exist"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthInvalidSession        = "Session does not exist or already expired"
	ErrDevAuthGenerateToken         = "Failed to generate JWT token"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevServerDeadlineExceeded    = "Server deadline exceeded"
	ErrDevUnknownInstrumentScope    = "Unknown instrument scope"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBStringNotObjectID        = "String cannot be converted to ObjectID"

	ErrDevRedisSet       = "Redis failed to set key"
	ErrDevRedisGetNoData = "Redis failed to get data for key: %s"
	ErrDevRedisDelete    = "Redis failed to delete key"

	ErrDevCannotMarshalJSON   = "Failed to marshal value to JSON"
	ErrDevCannotUnmarshalJSON = "Failed to unmarshal JSON value"
)

const ResponseUnknown = "unknown"
