package letter

// Goal is the user's stated 10-year objective.
type Goal string

const (
	GoalEntrepreneur Goal = "entrepreneur"
	GoalFIRE         Goal = "fire"
	GoalMortgage     Goal = "mortgage"
	GoalOverseas     Goal = "overseas"
	GoalOther        Goal = "other"
)

// Goals lists every accepted goal value in a stable order.
var Goals = []Goal{GoalEntrepreneur, GoalFIRE, GoalMortgage, GoalOverseas, GoalOther}

func (g Goal) Valid() bool {
	switch g {
	case GoalEntrepreneur, GoalFIRE, GoalMortgage, GoalOverseas, GoalOther:
		return true
	}
	return false
}

// Code returns a small stable integer used in variant derivation.
func (g Goal) Code() int {
	switch g {
	case GoalEntrepreneur:
		return 1
	case GoalFIRE:
		return 2
	case GoalMortgage:
		return 3
	case GoalOverseas:
		return 4
	default:
		return 5
	}
}

// Input holds the validated user-provided facts for one request.
// It is never persisted and never mutated after Validate passes.
type Input struct {
	Age               int    `json:"age"`
	HouseholdNow      int    `json:"household_now"`
	KidsFuture        int    `json:"kids_future"`
	AnnualIncomeJPY   int64  `json:"annual_income_jpy"`
	MonthlySavingsJPY int64  `json:"monthly_savings_jpy"`
	CurrentSavingsJPY int64  `json:"current_savings_jpy"`
	MonthlyInvestJPY  int64  `json:"monthly_invest_jpy"`
	CurrentInvestJPY  int64  `json:"current_invest_jpy"`
	Goal              Goal   `json:"goal"`
	GoalOther         string `json:"goal_other,omitempty"`
}

// Goal-gap labels returned in Projection.
const (
	GapFar      = "まだ遠い"
	GapAlmost   = "もう少し"
	GapAchieved = "達成できてる"
)

// Projection is the single 10-year forecast derived from an Input.
type Projection struct {
	Years                   int    `json:"years"`
	SpendNowJPY             int64  `json:"spend_now_jpy"`
	SpendFutureJPY          int64  `json:"spend_future_jpy"`
	SpendBlendedJPY         int64  `json:"spend_blended_jpy"`
	SurplusLowJPY           int64  `json:"surplus_low_jpy"`
	SurplusHighJPY          int64  `json:"surplus_high_jpy"`
	UsedMonthlyTotalLowJPY  int64  `json:"used_monthly_total_low_jpy"`
	UsedMonthlyTotalHighJPY int64  `json:"used_monthly_total_high_jpy"`
	UsedMonthlySavingsJPY   int64  `json:"used_monthly_savings_jpy"`
	UsedMonthlyInvestJPY    int64  `json:"used_monthly_invest_jpy"`
	SavingsFutureJPY        int64  `json:"savings_future_jpy"`
	InvestMinJPY            int64  `json:"invest_min_jpy"`
	InvestMaxJPY            int64  `json:"invest_max_jpy"`
	TotalMinJPY             int64  `json:"total_min_jpy"`
	TotalMaxJPY             int64  `json:"total_max_jpy"`
	RunwayMinMonths         int    `json:"runway_min_months"`
	RunwayMaxMonths         int    `json:"runway_max_months"`
	GoalGapLabel            string `json:"goal_gap_label"`
	QualityTier             int    `json:"quality_tier"`
}

// Content is the output bundle for one request: the 7-line letter plus
// plan copy, CTA, consultation memo, and fixed metadata.
type Content struct {
	LetterID    string `json:"letter_id"`
	Letter      string `json:"letter"`
	PlanSave    string `json:"plan_save"`
	PlanGrow    string `json:"plan_grow"`
	PlanProtect string `json:"plan_protect"`
	CTA         string `json:"cta"`
	Summary     string `json:"summary"`
	Disclaimer  string `json:"disclaimer"`
	Method      string `json:"method"`
	Evidence    string `json:"evidence"`
	Polished    bool   `json:"polished"`
}
