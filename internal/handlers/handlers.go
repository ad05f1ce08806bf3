// Package handlers exposes the moodtrail services over HTTP
package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrail/backend/internal/analytics"
	"github.com/JonnyWalker81/moodtrail/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrail/backend/internal/middleware"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository"
	"github.com/JonnyWalker81/moodtrail/backend/internal/service"
)

const dateLayout = "2006-01-02"

// writeError maps a service error onto a problem document. resource and id
// name the record for 404s.
func writeError(c *gin.Context, err error, resource, id string) {
	reqID := apierror.RequestID(c)

	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrInvalidID):
		apierror.Write(c, apierror.NotFound(reqID, resource, id))
	case errors.Is(err, analytics.ErrInvalidPeriod):
		apierror.Write(c, apierror.InvalidPeriod(reqID, c.Query("period")))
	case errors.Is(err, service.ErrInvalidMetric):
		apierror.Write(c, apierror.InvalidMetric(reqID, c.Query("metric"), service.TrendMetrics()))
	case errors.Is(err, service.ErrFutureDate):
		apierror.Write(c, apierror.BadRequest(reqID, err.Error(), "Entries cannot be dated in the future"))
	case errors.Is(err, service.ErrUnknownActivity):
		apierror.Write(c, apierror.BadRequest(reqID, err.Error(), "One or more activities could not be found"))
	case errors.Is(err, service.ErrInvalidCredentials):
		apierror.Write(c, apierror.Unauthorized(reqID, "Invalid email or password"))
	case errors.Is(err, service.ErrAuthUnavailable):
		apierror.Write(c, apierror.ServiceUnavailable(reqID, "Authentication provider is not configured"))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed",
			logger.String("path", c.FullPath()),
			logger.Err(err))
		apierror.Write(c, apierror.Internal(reqID))
	}
}

// bindJSON binds the body into req, writing a problem on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierror.Write(c, apierror.FromBindError(apierror.RequestID(c), err))
		return false
	}
	return true
}

// pathID returns the :id parameter. Malformed IDs are reported as not found.
func pathID(c *gin.Context, resource string) (string, bool) {
	id := c.Param("id")
	if err := service.ValidateID(id); err != nil {
		apierror.Write(c, apierror.NotFound(apierror.RequestID(c), resource, id))
		return "", false
	}
	return id, true
}

// parseDate accepts a calendar date or an RFC 3339 timestamp
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func queryDate(c *gin.Context, field string) (*time.Time, bool) {
	raw := c.Query(field)
	if raw == "" {
		return nil, true
	}
	t, err := parseDate(raw)
	if err != nil {
		apierror.Write(c, apierror.InvalidDate(apierror.RequestID(c), field, raw))
		return nil, false
	}
	return &t, true
}

// listOptions reads start, end, limit and offset
func listOptions(c *gin.Context) (service.ListOptions, bool) {
	var opts service.ListOptions
	var ok bool

	if opts.Start, ok = queryDate(c, "start"); !ok {
		return opts, false
	}
	if opts.End, ok = queryDate(c, "end"); !ok {
		return opts, false
	}
	if opts.End != nil && len(c.Query("end")) == len(dateLayout) {
		// a bare end date includes the whole day
		end := opts.End.Add(24*time.Hour - time.Nanosecond)
		opts.End = &end
	}

	for _, q := range []struct {
		name string
		dst  *int
	}{{"limit", &opts.Limit}, {"offset", &opts.Offset}} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			apierror.Write(c, apierror.Validation(apierror.RequestID(c), []apierror.FieldError{
				{Field: q.name, Message: "must be a non-negative integer", Code: "min"},
			}))
			return opts, false
		}
		*q.dst = n
	}
	return opts, true
}

func currentUser(c *gin.Context) string {
	return middleware.UserID(c)
}
