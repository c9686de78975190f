package letterpolish

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Kind tags the failure classes the polish boundary can report. Diagnostic
// fields are named members, never probed dynamically off an opaque error.
type Kind string

const (
	KindTimeout             Kind = "timeout"
	KindAuthError           Kind = "auth_error"
	KindRateLimited         Kind = "rate_limited"
	KindUpstreamServerError Kind = "upstream_server_error"
	KindSchemaInvalid       Kind = "schema_invalid"
	KindUnknown             Kind = "unknown"
)

// ErrMissingAPIKey is returned when the service credential is absent from
// the environment; it is surfaced to operators, not recovered silently.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY not configured")

// Error is the tagged result type for a failed polish attempt.
type Error struct {
	Kind            Kind
	UpstreamStatus  int
	UpstreamCode    string
	UpstreamMessage string
	RequestID       string
	Err             error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("polish %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("polish %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Hint returns the operator-facing hint selected from the fixed decision
// table keyed on the upstream status code.
func (e *Error) Hint() string {
	return HintForUpstream(e.UpstreamStatus, e.UpstreamCode)
}

// HintForUpstream maps an upstream status/code pair to a hint.
func HintForUpstream(status int, code string) string {
	switch {
	case status == 401:
		return "APIキーが無効です。ANTHROPIC_API_KEYを確認してください。"
	case status == 403, status == 404, code == "model_not_found":
		return "モデルへのアクセス権がありません。モデル名と契約内容を確認してください。"
	case status == 429:
		return "レート制限または利用枠の上限です。時間をおいて再試行してください。"
	case status >= 500:
		return "上流サービスの一時的な障害です。しばらくして再試行してください。"
	default:
		return "ローカル側のエラーです。サーバーログを確認してください。"
	}
}

// Classify converts a transport error from the SDK into a tagged Error.
// The SDK surfaces HTTP status via message text, so matching follows suit.
func Classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401"):
		return &Error{Kind: KindAuthError, UpstreamStatus: 401, Err: err}
	case strings.Contains(msg, "403"):
		return &Error{Kind: KindAuthError, UpstreamStatus: 403, Err: err}
	case strings.Contains(msg, "404"), strings.Contains(msg, "model_not_found"):
		return &Error{Kind: KindAuthError, UpstreamStatus: 404, UpstreamCode: "model_not_found", Err: err}
	case strings.Contains(msg, "429"):
		return &Error{Kind: KindRateLimited, UpstreamStatus: 429, Err: err}
	case strings.Contains(msg, "status code: 5"), strings.Contains(msg, "server error"),
		strings.Contains(msg, "500"), strings.Contains(msg, "529"):
		return &Error{Kind: KindUpstreamServerError, UpstreamStatus: 500, Err: err}
	default:
		return &Error{Kind: KindUnknown, Err: err}
	}
}
