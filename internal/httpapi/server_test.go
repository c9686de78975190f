package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ymorimoto/mirai-letter/internal/compose"
	"github.com/ymorimoto/mirai-letter/internal/letter"
	"github.com/ymorimoto/mirai-letter/internal/letterpolish"
	"github.com/ymorimoto/mirai-letter/internal/ratelimit"
)

func newTestHandler(factory compose.CallerFactory, limit int) http.Handler {
	composer := compose.NewService(factory, compose.NewMemoryCache(), time.Second, nil)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), limit, time.Minute)
	return NewHandler(composer, limiter, nil)
}

func validBody() string {
	return `{
		"age": 30,
		"household_now": 2,
		"kids_future": 0,
		"annual_income_jpy": 6000000,
		"monthly_savings_jpy": 20000,
		"current_savings_jpy": 2000000,
		"monthly_invest_jpy": 30000,
		"current_invest_jpy": 1000000,
		"goal": "fire"
	}`
}

func postLetter(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/letter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:50000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\n%s", err, rec.Body.String())
	}
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()
	body := decodeBody(t, rec)
	var apiErr Error
	if err := json.Unmarshal(body["error"], &apiErr); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	return apiErr
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(nil, 5)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rec.Code)
	}
}

func TestLetterSuccessWithoutPolish(t *testing.T) {
	h := newTestHandler(nil, 5)
	rec := postLetter(t, h, validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200\n%s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)

	var ok bool
	if err := json.Unmarshal(body["ok"], &ok); err != nil || !ok {
		t.Fatalf("expected ok=true, body:\n%s", rec.Body.String())
	}
	var projs []letter.Projection
	if err := json.Unmarshal(body["projections"], &projs); err != nil {
		t.Fatalf("decode projections: %v", err)
	}
	if len(projs) != 1 || projs[0].Years != 10 {
		t.Fatalf("expected one 10-year projection, got %+v", projs)
	}
	if projs[0].SavingsFutureJPY != 4_400_000 {
		t.Fatalf("savings future: got %d want 4400000", projs[0].SavingsFutureJPY)
	}
	var content letter.Content
	if err := json.Unmarshal(body["content"], &content); err != nil {
		t.Fatalf("decode content: %v", err)
	}
	if content.LetterID == "" || content.Letter == "" {
		t.Fatalf("content incomplete: %+v", content)
	}
	if content.Polished {
		t.Fatal("polish disabled, content must not be marked polished")
	}
	if got := len(strings.Split(content.Letter, "\n")); got != 7 {
		t.Fatalf("letter must have 7 lines, got %d", got)
	}
}

func TestLetterRejectsMalformedJSON(t *testing.T) {
	h := newTestHandler(nil, 5)
	rec := postLetter(t, h, `{"age": 30,`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", rec.Code)
	}
	if apiErr := decodeError(t, rec); apiErr.Code != CodeValidation {
		t.Fatalf("code: got %q want %q", apiErr.Code, CodeValidation)
	}
}

func TestLetterRejectsInvalidInput(t *testing.T) {
	h := newTestHandler(nil, 5)
	rec := postLetter(t, h, strings.Replace(validBody(), `"age": 30`, `"age": 12`, 1))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Code != CodeValidation {
		t.Fatalf("code: got %q want %q", apiErr.Code, CodeValidation)
	}
	if !strings.Contains(apiErr.Message, "age") {
		t.Fatalf("message should name the field: %q", apiErr.Message)
	}
}

func TestLetterRateLimited(t *testing.T) {
	h := newTestHandler(nil, 2)
	for i := 0; i < 2; i++ {
		if rec := postLetter(t, h, validBody()); rec.Code != http.StatusOK {
			t.Fatalf("request %d: got %d want 200", i+1, rec.Code)
		}
	}
	rec := postLetter(t, h, validBody())
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status: got %d want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("429 response must carry a Retry-After header")
	}
	apiErr := decodeError(t, rec)
	if apiErr.Code != CodeRateLimited || !apiErr.Transient || apiErr.RetryAfter < 1 {
		t.Fatalf("unexpected error payload: %+v", apiErr)
	}
}

func TestLetterMissingAPIKeyStillReturnsProjection(t *testing.T) {
	factory := func() (letterpolish.Caller, error) { return nil, letterpolish.ErrMissingAPIKey }
	h := newTestHandler(factory, 5)

	rec := postLetter(t, h, validBody())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d want 500", rec.Code)
	}
	body := decodeBody(t, rec)

	var apiErr Error
	if err := json.Unmarshal(body["error"], &apiErr); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if apiErr.Code != CodeMissingAPIKey {
		t.Fatalf("code: got %q want %q", apiErr.Code, CodeMissingAPIKey)
	}
	if apiErr.Hint == "" {
		t.Fatal("missing-key error must carry an operator hint")
	}
	var projs []letter.Projection
	if err := json.Unmarshal(body["projections"], &projs); err != nil {
		t.Fatalf("decode projections: %v", err)
	}
	if len(projs) != 1 || projs[0].SpendBlendedJPY == 0 {
		t.Fatalf("projection must accompany the error, got %+v", projs)
	}
}

func TestLetterUpstreamFailureFallsBack(t *testing.T) {
	factory := func() (letterpolish.Caller, error) {
		return callerFunc(func() (string, error) { return "", errUpstream }), nil
	}
	h := newTestHandler(factory, 5)

	rec := postLetter(t, h, validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("upstream failure must fall back to 200, got %d\n%s", rec.Code, rec.Body.String())
	}
	var content letter.Content
	body := decodeBody(t, rec)
	if err := json.Unmarshal(body["content"], &content); err != nil {
		t.Fatalf("decode content: %v", err)
	}
	if content.Polished {
		t.Fatal("fallback content must not be marked polished")
	}
}

func TestComposeErrorMapping(t *testing.T) {
	apiErr := composeError(letterpolish.ErrMissingAPIKey)
	if apiErr.Code != CodeMissingAPIKey || apiErr.Status != 500 || apiErr.Hint == "" {
		t.Fatalf("missing key mapping: %+v", apiErr)
	}
	apiErr = composeError(errors.New("wiring broken"))
	if apiErr.Code != CodeInternal || apiErr.Status != 500 || !apiErr.Transient {
		t.Fatalf("fallback mapping: %+v", apiErr)
	}
}

func TestStatusForCode(t *testing.T) {
	cases := map[string]int{
		CodeValidation:    400,
		CodeRateLimited:   429,
		CodeMissingAPIKey: 500,
		CodeInternal:      500,
		"unknown":         500,
	}
	for code, want := range cases {
		if got := statusForCode(code); got != want {
			t.Fatalf("%s: got %d want %d", code, got, want)
		}
	}
}

var errUpstream = errors.New("unexpected status code: 529: overloaded")

type callerFunc func() (string, error)

func (f callerFunc) GenerateJSON(_ context.Context, _ string) (string, error) {
	return f()
}
