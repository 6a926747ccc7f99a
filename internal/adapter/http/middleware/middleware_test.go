package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
)

func decodeLog(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be one JSON line")
	return entry
}

// findLog returns the first log line whose message is msg.
func findLog(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err == nil && entry["message"] == msg {
			return entry
		}
	}
	t.Fatalf("no log line with message %q in %s", msg, buf.String())
	return nil
}

// =====================================================
// Request ID
// =====================================================

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generates uuid when absent"},
		{name: "reuses caller id", incoming: "booking-req-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/airports", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			handler := RequestID()(func(c echo.Context) error {
				fromCtx = domain.RequestIDFromContext(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			id := rec.Header().Get(RequestIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, id)
			} else {
				assert.Len(t, id, 36, "should be a UUID")
			}
			assert.Equal(t, id, GetRequestID(c))
			assert.Equal(t, id, fromCtx, "backend client reads the id from the request context")
		})
	}
}

func TestGetRequestID_EmptyWithoutMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}

// =====================================================
// Request logging
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/flight/F1/seat/3/C/ticket?foo=bar", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")
	req.Header.Set("X-Real-IP", "192.168.1.100")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(requestIDKey, "test-req-id-123")
	c.SetPath("/flight/:flightId/seat/:row/:seatId/ticket")

	handler := RequestLogger(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	entry := decodeLog(t, &logBuf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/flight/F1/seat/3/C/ticket", entry["path"])
	assert.Equal(t, "/flight/:flightId/seat/:row/:seatId/ticket", entry["route"])
	assert.Equal(t, "foo=bar", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, float64(2), entry["bytes_out"])
	assert.Equal(t, "192.168.1.100", entry["client_ip"])
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusNoContent, "info"},
		{http.StatusMethodNotAllowed, "warn"},
		{http.StatusBadGateway, "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var logBuf bytes.Buffer
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/booking/B1", nil), httptest.NewRecorder())

			handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entry := decodeLog(t, &logBuf)
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

func TestRequestLogger_LogsStatusWrittenForHandlerError(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
		return echo.ErrStatusRequestEntityTooLarge
	})
	_ = handler(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, float64(http.StatusRequestEntityTooLarge), decodeLog(t, &logBuf)["status"])
}

// =====================================================
// Recovery
// =====================================================

func TestRecover_WritesGenericErrorAndLogsPanic(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/airports", nil), rec)
	c.Set(requestIDKey, "stack-test-id")

	handler := Recover(zerolog.New(&logBuf), true)(func(c echo.Context) error {
		panic("seat map missing")
	})

	var err error
	assert.NotPanics(t, func() { err = handler(c) })
	assert.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())

	entry := decodeLog(t, &logBuf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "stack-test-id", entry["request_id"])
	assert.Equal(t, "seat map missing", entry["panic"])
	assert.Contains(t, entry["stack"], "goroutine")
	assert.Equal(t, "Panic recovered", entry["message"])
}

func TestRecover_RuntimeErrorPanic(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := Recover(zerolog.Nop(), true)(func(c echo.Context) error {
		var seats []int
		_ = seats[10]
		return nil
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecover_WithoutStack(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := Recover(zerolog.New(&logBuf), false)(func(c echo.Context) error {
		panic("no stack")
	})
	_ = handler(c)

	assert.NotContains(t, decodeLog(t, &logBuf), "stack")
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := Recover(zerolog.New(&logBuf), true)(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String())
}

// =====================================================
// Error handler
// =====================================================

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		debug    bool
		wantCode int
		wantBody string
	}{
		{
			name:     "body too large",
			err:      echo.ErrStatusRequestEntityTooLarge,
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: `{"error":"Request body too large"}`,
		},
		{
			name:     "other client error uses status text",
			err:      echo.ErrUnsupportedMediaType,
			wantCode: http.StatusUnsupportedMediaType,
			wantBody: `{"error":"Unsupported Media Type"}`,
		},
		{
			name:     "plain error is a generic 500",
			err:      errors.New("dial tcp: refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
		{
			name:     "debug mode exposes the error text",
			err:      errors.New("dial tcp: refused"),
			debug:    true,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"dial tcp: refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Debug = tt.debug
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	ErrorHandler(errors.New("late"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// =====================================================
// Metrics
// =====================================================

func TestMetrics_CountsByRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/airport/:code", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/airport/:code", "200")
	before := testutil.ToFloat64(counter)

	for _, code := range []string{"LHR", "CDG"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/airport/"+code, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestMetrics_ReturnsHandlerError(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())

	handlerErr := echo.NewHTTPError(http.StatusTeapot)
	err := Metrics()(func(c echo.Context) error { return handlerErr })(c)

	assert.Equal(t, handlerErr, err)
}

// =====================================================
// Setup
// =====================================================

func newSetupEcho(t *testing.T, logBuf *bytes.Buffer, opts Options) *echo.Echo {
	t.Helper()
	e := echo.New()
	Setup(e, zerolog.New(logBuf), opts)

	e.PUT("/booking/:bookingCode", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, string(body))
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic")
	})
	return e
}

func TestSetup_WiresRequestIDAndLogging(t *testing.T) {
	var logBuf bytes.Buffer
	e := newSetupEcho(t, &logBuf, DefaultOptions())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/booking/B1", strings.NewReader(`{"price":1}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)

	entry := findLog(t, &logBuf, "HTTP request")
	assert.Equal(t, id, entry["request_id"])
	assert.Equal(t, "/booking/:bookingCode", entry["route"])
}

func TestSetup_RecoversPanic(t *testing.T) {
	var logBuf bytes.Buffer
	e := newSetupEcho(t, &logBuf, Options{PanicStack: false})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	assert.NotContains(t, findLog(t, &logBuf, "Panic recovered"), "stack")
	assert.Equal(t, float64(http.StatusInternalServerError), findLog(t, &logBuf, "HTTP request")["status"])
}

func TestSetup_BodyLimit(t *testing.T) {
	body := `{"price":1234567890}`

	t.Run("declared length over limit", func(t *testing.T) {
		var logBuf bytes.Buffer
		e := newSetupEcho(t, &logBuf, Options{BodyLimit: "8B"})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/booking/B1", strings.NewReader(body)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.JSONEq(t, `{"error":"Request body too large"}`, rec.Body.String())
	})

	t.Run("unknown length over limit", func(t *testing.T) {
		var logBuf bytes.Buffer
		e := newSetupEcho(t, &logBuf, Options{BodyLimit: "8B"})

		req := httptest.NewRequest(http.MethodPut, "/booking/B1", strings.NewReader(body))
		req.ContentLength = -1
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.JSONEq(t, `{"error":"Request body too large"}`, rec.Body.String())
	})

	t.Run("empty option uses default limit", func(t *testing.T) {
		var logBuf bytes.Buffer
		e := newSetupEcho(t, &logBuf, Options{})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/booking/B1", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, body, rec.Body.String())
	})
}
