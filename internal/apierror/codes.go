package apierror

// Problem type URNs. Clients switch on these, never on Title.
const (
	TypeValidation         = "urn:moodtrail:error:validation"
	TypeBadRequest         = "urn:moodtrail:error:bad_request"
	TypeInvalidPeriod      = "urn:moodtrail:error:invalid_period"
	TypeInvalidMetric      = "urn:moodtrail:error:invalid_metric"
	TypeInvalidDate        = "urn:moodtrail:error:invalid_date"
	TypeUnauthorized       = "urn:moodtrail:error:unauthorized"
	TypeNotFound           = "urn:moodtrail:error:not_found"
	TypeRateLimit          = "urn:moodtrail:error:rate_limit"
	TypeInternal           = "urn:moodtrail:error:internal"
	TypeServiceUnavailable = "urn:moodtrail:error:unavailable"
)

var titles = map[string]string{
	TypeValidation:         "Validation Error",
	TypeBadRequest:         "Bad Request",
	TypeInvalidPeriod:      "Invalid Period",
	TypeInvalidMetric:      "Invalid Metric",
	TypeInvalidDate:        "Invalid Date",
	TypeUnauthorized:       "Authentication Required",
	TypeNotFound:           "Resource Not Found",
	TypeRateLimit:          "Rate Limit Exceeded",
	TypeInternal:           "Internal Server Error",
	TypeServiceUnavailable: "Service Unavailable",
}

// Title returns the fixed human-readable summary for a problem type
func Title(problemType string) string {
	return titles[problemType]
}
