package letterpolish

import (
	"context"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPrompt = "あなたは家計アプリの文章編集者です。「未来の自分からの手紙」の指定された2行だけを、" +
	"意味とトーンを保ったまま、より自然で温かい日本語に書き直します。厳密なJSONのみで応答してください。"

// Caller is the minimal text-generation boundary the rewriter depends on.
type Caller interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Messager is the slice of the Anthropic client the caller needs; tests
// substitute a fake.
type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// ClientCreator builds a Messager from an API key.
type ClientCreator func(apiKey string) Messager

func defaultClientCreator(apiKey string) Messager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newClient ClientCreator = defaultClientCreator

// AnthropicCaller generates strict-JSON rewrites via the Anthropic API.
type AnthropicCaller struct {
	messages Messager
	model    anthropic.Model
}

// NewAnthropicCallerFromEnv reads the API key from the environment at call
// time. A missing key is ErrMissingAPIKey, a distinct operator-actionable
// condition rather than a generic failure.
func NewAnthropicCallerFromEnv(model string) (*AnthropicCaller, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	m := anthropic.ModelClaudeSonnet4_20250514
	if strings.TrimSpace(model) != "" {
		m = anthropic.Model(model)
	}
	return &AnthropicCaller{messages: newClient(apiKey), model: m}, nil
}

func (a *AnthropicCaller) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:       a.model,
		MaxTokens:   512,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0.7),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}
