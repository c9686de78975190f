package lettergen

import (
	"fmt"
	"strings"

	"github.com/ymorimoto/mirai-letter/internal/letter"
)

// Situation captures household composition for sentence-pool selection.
type Situation string

const (
	SituationKids   Situation = "kids"
	SituationPair   Situation = "pair"
	SituationSingle Situation = "single"
)

// Tier grades cashflow and stability.
type Tier string

const (
	TierLow  Tier = "LOW"
	TierMid  Tier = "MID"
	TierHigh Tier = "HIGH"
)

// Load grades how demanding the household itself is.
type Load string

const (
	LoadLight Load = "LIGHT"
	LoadMid   Load = "MID"
	LoadHeavy Load = "HEAVY"
)

// ClassifySituation maps household composition to a situation bucket.
func ClassifySituation(in letter.Input) Situation {
	if in.KidsFuture > 0 {
		return SituationKids
	}
	if in.HouseholdNow >= 2 {
		return SituationPair
	}
	return SituationSingle
}

// CashflowTier grades the optimistic monthly surplus.
func CashflowTier(proj letter.Projection) Tier {
	switch {
	case proj.SurplusHighJPY <= 0:
		return TierLow
	case proj.SurplusHighJPY < 50_000:
		return TierMid
	default:
		return TierHigh
	}
}

// StabilityTier grades how many months of estimated spending the current
// savings already cover.
func StabilityTier(in letter.Input, proj letter.Projection) Tier {
	if proj.SpendBlendedJPY <= 0 {
		return TierLow
	}
	months := in.CurrentSavingsJPY / proj.SpendBlendedJPY
	switch {
	case months < 3:
		return TierLow
	case months < 12:
		return TierMid
	default:
		return TierHigh
	}
}

// LifeLoadTier grades the weight of the (future) household itself.
func LifeLoadTier(in letter.Input) Load {
	size := in.HouseholdNow + in.KidsFuture
	switch {
	case in.KidsFuture >= 2 || size >= 5:
		return LoadHeavy
	case in.KidsFuture == 1 || size >= 3:
		return LoadMid
	default:
		return LoadLight
	}
}

// ScenarioKey is the composite categorical fingerprint used to seed
// sentence selection. Recomputed per request, never stored.
func ScenarioKey(in letter.Input, proj letter.Projection) string {
	return fmt.Sprintf("cf%s|st%s|ll%s|q%d",
		CashflowTier(proj), StabilityTier(in, proj), LifeLoadTier(in), proj.QualityTier)
}

// Severity maps the quality tier to a 0 (calm) .. 4 (strained) distress
// level, nudged upward when an open-ended goal looks hard to reach.
func Severity(in letter.Input, proj letter.Projection) int {
	sev := 5 - proj.QualityTier
	if sev < 0 {
		sev = 0
	}
	if in.Goal == letter.GoalOther {
		_, difficulty := InferOtherCategory(in.GoalOther)
		sev += difficulty
	}
	if sev > 4 {
		sev = 4
	}
	return sev
}

// otherCategory groups free-text goals into a coarse theme with an
// associated difficulty bump.
type otherCategory struct {
	label      string
	difficulty int
	keywords   []string
}

// Checked in order; the first keyword hit wins.
var otherCategories = []otherCategory{
	{label: "travel", difficulty: 1, keywords: []string{"旅行", "旅", "世界一周", "温泉めぐり"}},
	{label: "career", difficulty: 1, keywords: []string{"転職", "キャリア", "昇進", "独立", "起業"}},
	{label: "home", difficulty: 2, keywords: []string{"マイホーム", "家", "住まい", "引っ越し", "リフォーム"}},
	{label: "health", difficulty: 1, keywords: []string{"健康", "体力", "ダイエット", "マラソン", "筋トレ"}},
	{label: "skill", difficulty: 1, keywords: []string{"資格", "勉強", "学び", "スキル", "語学", "留学"}},
	{label: "dream", difficulty: 2, keywords: []string{"夢", "挑戦", "音楽", "作家", "お店", "アーティスト"}},
}

// InferOtherCategory matches the free-text goal against curated keyword sets
// and returns the category label plus its difficulty score (0-2).
func InferOtherCategory(goalOther string) (string, int) {
	text := strings.TrimSpace(goalOther)
	if text == "" {
		return "other", 0
	}
	for _, c := range otherCategories {
		for _, kw := range c.keywords {
			if strings.Contains(text, kw) {
				return c.label, c.difficulty
			}
		}
	}
	return "other", 0
}
