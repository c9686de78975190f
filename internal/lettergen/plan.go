package lettergen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ymorimoto/mirai-letter/internal/letter"
)

// Fixed response metadata.
const (
	Disclaimer = "本結果は入力値にもとづく簡易シミュレーションであり、将来の成果や家計の状態を保証するものではありません。"
	Method     = "固定テンプレートと世帯人数ベースの定率推計による自動生成"
	Evidence   = "生活費推計は単身・二人世帯の基準値と世帯人数のべき乗スケーリングに基づく"
)

// planCopy is the goal-keyed static lookup for the plan/CTA fields. It is
// independent of the letter body.
type planCopy struct {
	save    string
	grow    string
	protect string
	cta     string
}

var planTable = map[letter.Goal]planCopy{
	letter.GoalEntrepreneur: {
		save:    "開業にそなえる先取り貯蓄を毎月の最初に。",
		grow:    "事業とは別枠で、こつこつ積立を続ける。",
		protect: "生活防衛のための備えを半年分キープする。",
		cta:     "開業前こそ、家計の専門家に相談してみよう。",
	},
	letter.GoalFIRE: {
		save:    "先取りで生活費の二割を自動的にためる。",
		grow:    "長期の積立を止めないことがいちばんの近道。",
		protect: "急な出費に備える別口座を持っておく。",
		cta:     "自由までの距離を、一度プロと測ってみよう。",
	},
	letter.GoalMortgage: {
		save:    "住まい専用の口座を分けて育てる。",
		grow:    "購入時期に合わせて増やし方を調整する。",
		protect: "住まい探しの前に保障の見直しを。",
		cta:     "無理のない予算感を、相談で確かめよう。",
	},
	letter.GoalOverseas: {
		save:    "渡航費は時期を決めて逆算でためる。",
		grow:    "外貨にも少しずつ慣れておく。",
		protect: "海外の医療に備える保険を確認する。",
		cta:     "渡航計画を、お金の面から点検してもらおう。",
	},
	letter.GoalOther: {
		save:    "目標に名前をつけた口座でためる。",
		grow:    "目標までの年数で増やし方を選ぶ。",
		protect: "計画が崩れない守りを先につくる。",
		cta:     "あなたの目標を、一度相談で言葉にしてみよう。",
	},
}

// Plan returns the goal-specific plan and CTA copy.
func Plan(goal letter.Goal) (save, grow, protect, cta string) {
	c, ok := planTable[goal]
	if !ok {
		c = planTable[letter.GoalOther]
	}
	return c.save, c.grow, c.protect, c.cta
}

// Summary renders the numeric consultation memo. Unlike the letter body it
// may freely use yen figures and financial terms.
func Summary(in letter.Input, proj letter.Projection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "想定生活費は月%s（現在%s・10年後%s）。", yen(proj.SpendBlendedJPY), yen(proj.SpendNowJPY), yen(proj.SpendFutureJPY))
	fmt.Fprintf(&b, "手取りベースの余裕は月%s〜%s、うち積立に回せるのは月%s〜%s。", yen(proj.SurplusLowJPY), yen(proj.SurplusHighJPY), yen(proj.UsedMonthlyTotalLowJPY), yen(proj.UsedMonthlyTotalHighJPY))
	fmt.Fprintf(&b, "10年後の見込みは貯蓄%s、運用分%s〜%s、合計%s〜%s（生活費%d〜%dか月分）。", yen(proj.SavingsFutureJPY), yen(proj.InvestMinJPY), yen(proj.InvestMaxJPY), yen(proj.TotalMinJPY), yen(proj.TotalMaxJPY), proj.RunwayMinMonths, proj.RunwayMaxMonths)
	fmt.Fprintf(&b, "目標との距離は「%s」。", proj.GoalGapLabel)
	return b.String()
}

// BuildContent produces the full output bundle for one request.
func BuildContent(in letter.Input, proj letter.Projection) letter.Content {
	save, grow, protect, cta := Plan(in.Goal)
	return letter.Content{
		LetterID:    uuid.NewString(),
		Letter:      Build(in, proj),
		PlanSave:    save,
		PlanGrow:    grow,
		PlanProtect: protect,
		CTA:         cta,
		Summary:     Summary(in, proj),
		Disclaimer:  Disclaimer,
		Method:      Method,
		Evidence:    Evidence,
	}
}

// yen formats an amount as a comma-grouped yen string.
func yen(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",") + "円"
	if neg {
		out = "-" + out
	}
	return out
}
