package apierror

// Error type URIs following the urn:daybook:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:daybook:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:daybook:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:daybook:error:conflict"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:daybook:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:daybook:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:daybook:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:daybook:error:internal"

	// TypeMalformedData indicates stored data could not be decoded (500)
	TypeMalformedData = "urn:daybook:error:malformed_data"

	// TypeInvalidUUID indicates an invalid UUID format in request (400)
	TypeInvalidUUID = "urn:daybook:error:invalid_uuid"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:daybook:error:bad_request"

	// TypeUnavailable indicates a feature is not configured on this server (503)
	TypeUnavailable = "urn:daybook:error:unavailable"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation    = "Validation Error"
	TitleNotFound      = "Resource Not Found"
	TitleConflict      = "Resource Conflict"
	TitleRateLimit     = "Rate Limit Exceeded"
	TitleUnauthorized  = "Authentication Required"
	TitleForbidden     = "Permission Denied"
	TitleInternal      = "Internal Server Error"
	TitleMalformedData = "Malformed Stored Data"
	TitleInvalidUUID   = "Invalid UUID Format"
	TitleBadRequest    = "Bad Request"
	TitleUnavailable   = "Service Unavailable"
)
