// Package projection derives the 10-year household forecast that feeds the
// letter engine. Everything here is a pure function of the validated input.
package projection

import (
	"math"

	"github.com/ymorimoto/mirai-letter/internal/letter"
)

const (
	// HorizonYears is fixed; the data model allows more horizons but only
	// one is ever produced.
	HorizonYears = 10

	// Monthly spending references. Multi-person households scale from the
	// two-person reference by a power law to model shared living costs.
	singleRefJPY       = 160_000
	multiRefJPY        = 255_000
	referenceHousehold = 2.0
	scaleExponent      = 0.85

	// Take-home band approximating post-tax income uncertainty.
	takeHomeLow  = 0.75
	takeHomeHigh = 0.85

	// Annual growth scenarios for the invested portion, compounded monthly.
	growthAnnualLow  = 0.02
	growthAnnualHigh = 0.06

	// Fixed regional baseline spend used only for the quality tier; this is
	// deliberately distinct from the household-size estimate above.
	regionalBaselineJPY = 180_000
)

// Quality tier thresholds over residual monthly cash flow, in yen.
var qualityThresholds = [...]int64{0, 20_000, 60_000, 120_000}

// EstimateSpendingMonthly returns the estimated monthly living cost for a
// household of the given size, rounded to the nearest yen.
func EstimateSpendingMonthly(household int) int64 {
	if household <= 1 {
		return singleRefJPY
	}
	scaled := multiRefJPY * math.Pow(float64(household)/referenceHousehold, scaleExponent)
	return int64(math.Round(scaled))
}

// Compute maps a validated input to its single 10-year projection record.
// It is total and deterministic; out-of-contract input is the caller's bug.
func Compute(in letter.Input) letter.Projection {
	spendNow := EstimateSpendingMonthly(in.HouseholdNow)
	spendFuture := EstimateSpendingMonthly(in.HouseholdNow + in.KidsFuture)
	blended := int64(math.Round(float64(spendNow+spendFuture) / 2))

	monthlyGross := float64(in.AnnualIncomeJPY) / 12
	surplusLow := clampNonNegative(int64(math.Round(monthlyGross*takeHomeLow)) - blended)
	surplusHigh := clampNonNegative(int64(math.Round(monthlyGross*takeHomeHigh)) - blended)

	stated := in.MonthlySavingsJPY + in.MonthlyInvestJPY
	usedLow := minI64(stated, surplusLow)
	usedHigh := minI64(stated, surplusHigh)

	// Split the capped low-band total back into savings/invest, preserving
	// the user's stated ratio.
	var usedSavings, usedInvest int64
	if stated > 0 {
		usedSavings = int64(math.Round(float64(usedLow) * float64(in.MonthlySavingsJPY) / float64(stated)))
		usedInvest = usedLow - usedSavings
	}

	// Cash accumulates linearly at zero yield.
	savingsFuture := in.CurrentSavingsJPY + in.MonthlySavingsJPY*12*HorizonYears

	// Invested money compounds monthly from the surplus-capped contribution.
	investMin := futureValue(in.CurrentInvestJPY, usedInvest, growthAnnualLow)
	investMax := futureValue(in.CurrentInvestJPY, usedInvest, growthAnnualHigh)

	totalMin := savingsFuture + investMin
	totalMax := savingsFuture + investMax

	runwayMin := runwayMonths(totalMin, blended)
	runwayMax := runwayMonths(totalMax, blended)

	return letter.Projection{
		Years:                   HorizonYears,
		SpendNowJPY:             spendNow,
		SpendFutureJPY:          spendFuture,
		SpendBlendedJPY:         blended,
		SurplusLowJPY:           surplusLow,
		SurplusHighJPY:          surplusHigh,
		UsedMonthlyTotalLowJPY:  usedLow,
		UsedMonthlyTotalHighJPY: usedHigh,
		UsedMonthlySavingsJPY:   usedSavings,
		UsedMonthlyInvestJPY:    usedInvest,
		SavingsFutureJPY:        savingsFuture,
		InvestMinJPY:            investMin,
		InvestMaxJPY:            investMax,
		TotalMinJPY:             totalMin,
		TotalMaxJPY:             totalMax,
		RunwayMinMonths:         runwayMin,
		RunwayMaxMonths:         runwayMax,
		GoalGapLabel:            goalGapLabel(usedHigh, runwayMax),
		QualityTier:             qualityTier(monthlyGross, stated),
	}
}

// futureValue is the standard future value of a lump sum plus a monthly
// annuity contribution, compounded monthly over the fixed horizon.
func futureValue(lump, monthly int64, annualRate float64) int64 {
	r := annualRate / 12
	n := float64(HorizonYears * 12)
	growth := math.Pow(1+r, n)
	fv := float64(lump) * growth
	if r > 0 {
		fv += float64(monthly) * (growth - 1) / r
	} else {
		fv += float64(monthly) * n
	}
	return int64(math.Round(fv))
}

func runwayMonths(netWorth, monthlySpend int64) int {
	if monthlySpend <= 0 {
		return 0
	}
	return int(math.Round(float64(netWorth) / float64(monthlySpend)))
}

// goalGapLabel is a coarse three-bucket heuristic, not planning advice.
func goalGapLabel(usedHigh int64, runwayMax int) string {
	if usedHigh == 0 || runwayMax < 6 {
		return letter.GapFar
	}
	if runwayMax < 12 {
		return letter.GapAlmost
	}
	return letter.GapAchieved
}

// qualityTier buckets residual cash flow after the fixed regional baseline
// and the user's planned contribution into five ordinal bands.
func qualityTier(monthlyGross float64, plannedContribution int64) int {
	residual := int64(math.Round(monthlyGross)) - regionalBaselineJPY - plannedContribution
	tier := 1
	for _, threshold := range qualityThresholds {
		if residual >= threshold {
			tier++
		}
	}
	return tier
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
