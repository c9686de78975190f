package letterpolish

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ymorimoto/mirai-letter/internal/letter"
)

// Rewrite holds the polished replacements for lines 2 and 3.
type Rewrite struct {
	Line2 string `json:"line2"`
	Line3 string `json:"line3"`
}

// Rewriter asks the text-generation service for a rewrite of lines 2/3 only.
// Acceptance (rule checking, fallback) is the orchestrator's job; this type
// only owns the prompt, the wire contract, and schema validation.
type Rewriter struct {
	caller Caller
}

func NewRewriter(caller Caller) *Rewriter {
	return &Rewriter{caller: caller}
}

// Rewrite requests polished versions of the two variable lines. Any failure
// comes back as a tagged *Error.
func (r *Rewriter) Rewrite(ctx context.Context, in letter.Input, line2, line3 string) (Rewrite, error) {
	raw, err := r.caller.GenerateJSON(ctx, buildPrompt(in, line2, line3))
	if err != nil {
		return Rewrite{}, Classify(err)
	}

	clean := stripCodeFences(raw)
	var out Rewrite
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return Rewrite{}, &Error{Kind: KindSchemaInvalid, Err: fmt.Errorf("json parse: %w", err)}
	}
	out.Line2 = strings.TrimSpace(out.Line2)
	out.Line3 = strings.TrimSpace(out.Line3)
	if out.Line2 == "" || out.Line3 == "" {
		return Rewrite{}, &Error{Kind: KindSchemaInvalid, Err: fmt.Errorf("empty line in rewrite")}
	}
	if strings.ContainsRune(out.Line2, '\n') || strings.ContainsRune(out.Line3, '\n') {
		return Rewrite{}, &Error{Kind: KindSchemaInvalid, Err: fmt.Errorf("rewrite lines must be single lines")}
	}
	return out, nil
}

func buildPrompt(in letter.Input, line2, line3 string) string {
	var b strings.Builder
	b.WriteString("次の2行は、十年後の自分が現在の自分に宛てた手紙の2行目と3行目です。\n")
	fmt.Fprintf(&b, "読み手: %d歳、現在%d人暮らし、目標は%s。\n\n", in.Age, in.HouseholdNow, goalLabel(in))
	fmt.Fprintf(&b, "2行目: %s\n3行目: %s\n\n", line2, line3)
	b.WriteString("制約:\n")
	b.WriteString("- 意味と語りかけの距離感を変えない\n")
	b.WriteString("- 各行は40文字以内、改行を含めない\n")
	b.WriteString("- 金額・数値・金融用語・商品名を使わない\n")
	b.WriteString("- 2行の文末表現を同じにしない\n\n")
	b.WriteString(`{"line2":"...","line3":"..."} というJSONのみで応答してください。`)
	return b.String()
}

func goalLabel(in letter.Input) string {
	switch in.Goal {
	case letter.GoalEntrepreneur:
		return "起業"
	case letter.GoalFIRE:
		return "早期リタイア"
	case letter.GoalMortgage:
		return "住宅購入"
	case letter.GoalOverseas:
		return "海外移住"
	default:
		if strings.TrimSpace(in.GoalOther) != "" {
			return in.GoalOther
		}
		return "その他"
	}
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		parts := strings.SplitN(s, "\n", 2)
		if len(parts) == 2 {
			s = parts[1]
		}
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}
