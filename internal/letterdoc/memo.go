// Package letterdoc renders the letter and its consultation memo as a
// shareable document: markdown, HTML, or PDF.
package letterdoc

import (
	"fmt"
	"strings"
	"time"

	"github.com/ymorimoto/mirai-letter/internal/letter"
)

// BuildMemo renders the full consultation memo as markdown.
func BuildMemo(in letter.Input, proj letter.Projection, content letter.Content) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 未来のわたしからの手紙\n\n")
	fmt.Fprintf(&b, "- 作成日: %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(&b, "- 目標: %s\n", goalHeading(in))
	fmt.Fprintf(&b, "- 目標との距離: %s\n\n", proj.GoalGapLabel)

	b.WriteString("## 手紙\n\n")
	for _, line := range strings.Split(content.Letter, "\n") {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	b.WriteString("\n")

	b.WriteString("## 10年後の見通し\n\n")
	b.WriteString("| 項目 | 見込み |\n|---|---|\n")
	fmt.Fprintf(&b, "| 想定生活費（月・現在） | %s |\n", yen(proj.SpendNowJPY))
	fmt.Fprintf(&b, "| 想定生活費（月・10年後） | %s |\n", yen(proj.SpendFutureJPY))
	fmt.Fprintf(&b, "| 積立に回せる額（月） | %s〜%s |\n", yen(proj.UsedMonthlyTotalLowJPY), yen(proj.UsedMonthlyTotalHighJPY))
	fmt.Fprintf(&b, "| 貯蓄の見込み | %s |\n", yen(proj.SavingsFutureJPY))
	fmt.Fprintf(&b, "| 運用分の見込み | %s〜%s |\n", yen(proj.InvestMinJPY), yen(proj.InvestMaxJPY))
	fmt.Fprintf(&b, "| 合計 | %s〜%s |\n", yen(proj.TotalMinJPY), yen(proj.TotalMaxJPY))
	fmt.Fprintf(&b, "| 生活費換算 | %d〜%dか月分 |\n\n", proj.RunwayMinMonths, proj.RunwayMaxMonths)

	b.WriteString("## これからの3つの柱\n\n")
	fmt.Fprintf(&b, "- **ためる** — %s\n", content.PlanSave)
	fmt.Fprintf(&b, "- **ふやす** — %s\n", content.PlanGrow)
	fmt.Fprintf(&b, "- **まもる** — %s\n\n", content.PlanProtect)

	fmt.Fprintf(&b, "%s\n\n", content.CTA)
	fmt.Fprintf(&b, "---\n\n*%s*\n", content.Disclaimer)
	return b.String()
}

func goalHeading(in letter.Input) string {
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

func yen(v int64) string {
	s := fmt.Sprintf("%d", v)
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
