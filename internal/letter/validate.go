package letter

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinAge            = 18
	MaxAge            = 80
	MinHousehold      = 1
	MaxHousehold      = 6
	MaxKidsFuture     = 4
	MaxAnnualIncome   = 200_000_000
	MaxMonthlyAmount  = 10_000_000
	MaxHoldingAmount  = 2_000_000_000
	MaxGoalOtherRunes = 40
)

// FieldError names the offending input field so the API can surface a
// machine-readable validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErrorf(field, format string, args ...any) error {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks every field against its documented bounds. The engines
// assume a validated Input; callers must not skip this.
func (in Input) Validate() error {
	if in.Age < MinAge || in.Age > MaxAge {
		return fieldErrorf("age", "must be between %d and %d", MinAge, MaxAge)
	}
	if in.HouseholdNow < MinHousehold || in.HouseholdNow > MaxHousehold {
		return fieldErrorf("household_now", "must be between %d and %d", MinHousehold, MaxHousehold)
	}
	if in.KidsFuture < 0 || in.KidsFuture > MaxKidsFuture {
		return fieldErrorf("kids_future", "must be between 0 and %d", MaxKidsFuture)
	}
	if in.AnnualIncomeJPY < 0 || in.AnnualIncomeJPY > MaxAnnualIncome {
		return fieldErrorf("annual_income_jpy", "must be between 0 and %d", int64(MaxAnnualIncome))
	}
	if in.MonthlySavingsJPY < 0 || in.MonthlySavingsJPY > MaxMonthlyAmount {
		return fieldErrorf("monthly_savings_jpy", "must be between 0 and %d", int64(MaxMonthlyAmount))
	}
	if in.MonthlyInvestJPY < 0 || in.MonthlyInvestJPY > MaxMonthlyAmount {
		return fieldErrorf("monthly_invest_jpy", "must be between 0 and %d", int64(MaxMonthlyAmount))
	}
	if in.CurrentSavingsJPY < 0 || in.CurrentSavingsJPY > MaxHoldingAmount {
		return fieldErrorf("current_savings_jpy", "must be between 0 and %d", int64(MaxHoldingAmount))
	}
	if in.CurrentInvestJPY < 0 || in.CurrentInvestJPY > MaxHoldingAmount {
		return fieldErrorf("current_invest_jpy", "must be between 0 and %d", int64(MaxHoldingAmount))
	}
	if !in.Goal.Valid() {
		return fieldErrorf("goal", "must be one of entrepreneur, fire, mortgage, overseas, other")
	}
	other := strings.TrimSpace(in.GoalOther)
	if in.Goal == GoalOther {
		if other == "" {
			return fieldErrorf("goal_other", "required when goal is other")
		}
		if utf8.RuneCountInString(other) > MaxGoalOtherRunes {
			return fieldErrorf("goal_other", "must be at most %d characters", MaxGoalOtherRunes)
		}
	}
	return nil
}
