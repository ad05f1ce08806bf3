// Package apierror renders API failures as RFC 9457 problem documents
// (application/problem+json).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Problem is an RFC 9457 problem document with a few moodtrail extensions
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	RequestID   string       `json:"request_id,omitempty"`
	UserMessage string       `json:"user_message,omitempty"`
	RetryAfter  *int         `json:"retry_after,omitempty"` // seconds
	Errors      []FieldError `json:"errors,omitempty"`
}

// FieldError is one failed field in a validation problem
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (p *Problem) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

func newProblem(problemType string, status int, requestID, detail, userMessage string) *Problem {
	return &Problem{
		Type:        problemType,
		Title:       Title(problemType),
		Status:      status,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

func Validation(requestID string, fields []FieldError) *Problem {
	p := newProblem(TypeValidation, http.StatusBadRequest, requestID,
		"One or more fields failed validation", "Please check your input and try again")
	p.Errors = fields
	return p
}

// FromBindError turns a gin binding failure into a problem. Validator
// failures become per-field errors; anything else (usually malformed JSON)
// is a plain bad request.
func FromBindError(requestID string, err error) *Problem {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return BadRequest(requestID, err.Error(), "The request body could not be read")
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   jsonFieldName(fe),
			Message: describeTag(fe),
			Code:    fe.Tag(),
		})
	}
	return Validation(requestID, fields)
}

func BadRequest(requestID, detail, userMessage string) *Problem {
	return newProblem(TypeBadRequest, http.StatusBadRequest, requestID, detail, userMessage)
}

// InvalidPeriod is returned when the period query parameter is not one of
// week, month, quarter or year
func InvalidPeriod(requestID, value string) *Problem {
	p := newProblem(TypeInvalidPeriod, http.StatusBadRequest, requestID,
		fmt.Sprintf("Unknown period %q", value), "Choose a period of week, month, quarter or year")
	p.Errors = []FieldError{{Field: "period", Message: "must be one of week, month, quarter, year", Code: "oneof"}}
	return p
}

func InvalidMetric(requestID, value string, allowed []string) *Problem {
	p := newProblem(TypeInvalidMetric, http.StatusBadRequest, requestID,
		fmt.Sprintf("Unknown metric %q", value), "That metric cannot be charted")
	p.Errors = []FieldError{{Field: "metric", Message: "must be one of " + strings.Join(allowed, ", "), Code: "oneof"}}
	return p
}

func InvalidDate(requestID, field, value string) *Problem {
	p := newProblem(TypeInvalidDate, http.StatusBadRequest, requestID,
		fmt.Sprintf("Field %q has invalid date %q", field, value), "Dates must look like 2006-01-02")
	p.Errors = []FieldError{{Field: field, Message: "must be a YYYY-MM-DD date or RFC 3339 timestamp", Code: "date"}}
	return p
}

func Unauthorized(requestID, detail string) *Problem {
	if detail == "" {
		detail = "Authentication is required to access this resource"
	}
	return newProblem(TypeUnauthorized, http.StatusUnauthorized, requestID, detail, "Please sign in to continue")
}

// NotFound also covers records owned by another user, so existence never leaks
func NotFound(requestID, resource, id string) *Problem {
	return newProblem(TypeNotFound, http.StatusNotFound, requestID,
		fmt.Sprintf("%s %q was not found", resource, id),
		fmt.Sprintf("The requested %s could not be found", resource))
}

func RateLimited(requestID string, retryAfter int) *Problem {
	p := newProblem(TypeRateLimit, http.StatusTooManyRequests, requestID,
		fmt.Sprintf("Rate limit exceeded, retry after %d seconds", retryAfter),
		"Too many requests. Please wait before trying again.")
	p.RetryAfter = &retryAfter
	return p
}

// Internal hides the cause from the client; log it server-side
func Internal(requestID string) *Problem {
	return newProblem(TypeInternal, http.StatusInternalServerError, requestID,
		"An unexpected error occurred", "Something went wrong. Please try again later.")
}

func ServiceUnavailable(requestID, detail string) *Problem {
	return newProblem(TypeServiceUnavailable, http.StatusServiceUnavailable, requestID,
		detail, "This feature is not available right now")
}

func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return fe.StructField()
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	}
	return "failed " + fe.Tag() + " validation"
}
