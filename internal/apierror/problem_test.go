package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWrite(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overview?period=decade", nil)
	c.Set(RequestIDKey, "req-42")

	Write(c, InvalidPeriod(RequestID(c), "decade"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ContentType, w.Header().Get("Content-Type"))
	assert.True(t, c.IsAborted())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, TypeInvalidPeriod, body["type"])
	assert.Equal(t, "Invalid Period", body["title"])
	assert.Equal(t, float64(400), body["status"])
	assert.Equal(t, "/api/v1/analytics/overview", body["instance"])
	assert.Equal(t, "req-42", body["request_id"])
}

func TestWrite_RetryAfterHeader(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Write(c, RateLimited("", 30))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
}

func TestRequestID_FallsBackToHeader(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Request-ID", "from-header")

	assert.Equal(t, "from-header", RequestID(c))
}

func TestFromBindError(t *testing.T) {
	type moodInput struct {
		Mood       string `json:"mood" binding:"required,oneof=sad happy"`
		SleepHours int    `json:"sleep_hours" binding:"max=24"`
	}

	err := binding.Validator.ValidateStruct(&moodInput{SleepHours: 30})
	require.Error(t, err)

	p := FromBindError("req-1", err)
	assert.Equal(t, TypeValidation, p.Type)
	require.Len(t, p.Errors, 2)
	assert.Equal(t, FieldError{Field: "mood", Message: "is required", Code: "required"}, p.Errors[0])
	assert.Equal(t, FieldError{Field: "sleep_hours", Message: "must be at most 24", Code: "max"}, p.Errors[1])
}

func TestFromBindError_MalformedBody(t *testing.T) {
	var target struct{ Mood string }
	err := json.Unmarshal([]byte("{"), &target)

	p := FromBindError("", err)
	assert.Equal(t, TypeBadRequest, p.Type)
	assert.Empty(t, p.Errors)
}

func TestInternal_HidesDetail(t *testing.T) {
	p := Internal("req-9")
	assert.Equal(t, http.StatusInternalServerError, p.Status)
	assert.Equal(t, "An unexpected error occurred", p.Error())
}
