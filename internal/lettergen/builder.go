package lettergen

import (
	"strings"

	"github.com/ymorimoto/mirai-letter/internal/letter"
	"github.com/ymorimoto/mirai-letter/internal/letterlint"
)

// Build assembles the deterministic 7-line letter for the given input and
// projection. Identical input always produces identical output.
func Build(in letter.Input, proj letter.Projection) string {
	return BuildWithSeverity(in, proj, Severity(in, proj))
}

// BuildWithSeverity is Build with the derived severity replaced by an
// explicit value (0-4). Used by tests and tone previews.
func BuildWithSeverity(in letter.Input, proj letter.Projection, severity int) string {
	if severity < 0 {
		severity = 0
	}
	if severity > 4 {
		severity = 4
	}

	situation := ClassifySituation(in)
	variant := PickVariant(in.Age, in.HouseholdNow, in.KidsFuture, in.Goal)
	key := ScenarioKey(in, proj)
	seed := seedFor(key, in.Goal, variant, severity)
	band := severityBand(severity)

	pool2 := line2Pools[situation][band]
	pool3 := line3Pool(in)[band]

	line2 := pool2[int(seed%uint32(len(pool2)))]
	line3 := pickLine3(pool3, seed, line2)

	// Distress must be legible in harder scenarios.
	if severity >= 3 && !containsStrained(line2) && !containsStrained(line3) {
		line3 = forceStrained(pool3, seed, line2, line3)
	}

	line4 := line4Table[variant][severity]

	return strings.Join([]string{
		openingLine,
		line2,
		line3,
		line4,
		letterlint.HookLine,
		letterlint.MethodsLine,
		closingLine,
	}, "\n")
}

// line3Pool resolves the goal-progress pool: the stated goal, or the
// category inferred from the free-text goal for open-ended requests.
func line3Pool(in letter.Input) [3][]string {
	key := string(in.Goal)
	if in.Goal == letter.GoalOther {
		key, _ = InferOtherCategory(in.GoalOther)
	}
	pool, ok := line3Pools[key]
	if !ok {
		pool = line3Pools["other"]
	}
	return pool
}

// pickLine3 probes the pool from the seeded index, skipping candidates that
// share line 2's ending category or form a denied ending pair with it. If no
// candidate satisfies both constraints, the first one that at least avoids
// the category clash wins; failing that, the seeded candidate itself.
func pickLine3(pool []string, seed uint32, line2 string) string {
	start := int((seed >> 8) % uint32(len(pool)))
	cat2 := endingCategory(line2)

	for i := 0; i < len(pool); i++ {
		cand := pool[(start+i)%len(pool)]
		if endingCategory(cand) == cat2 {
			continue
		}
		if joinDenied(line2, cand) {
			continue
		}
		return cand
	}
	for i := 0; i < len(pool); i++ {
		cand := pool[(start+i)%len(pool)]
		if endingCategory(cand) != cat2 {
			return cand
		}
	}
	return pool[start]
}

// forceStrained substitutes a strained-vocabulary candidate for line 3,
// preferring one that still avoids the ending-category clash.
func forceStrained(pool []string, seed uint32, line2, current string) string {
	start := int((seed >> 8) % uint32(len(pool)))
	cat2 := endingCategory(line2)

	for i := 0; i < len(pool); i++ {
		cand := pool[(start+i)%len(pool)]
		if containsStrained(cand) && endingCategory(cand) != cat2 && !joinDenied(line2, cand) {
			return cand
		}
	}
	for i := 0; i < len(pool); i++ {
		cand := pool[(start+i)%len(pool)]
		if containsStrained(cand) {
			return cand
		}
	}
	return current
}

// ReplaceMiddleLines rebuilds a letter with lines 2 and 3 swapped out,
// keeping the fixed frame intact. Used when accepting a polished rewrite.
func ReplaceMiddleLines(base, line2, line3 string) string {
	lines := strings.Split(base, "\n")
	if len(lines) != 7 {
		return base
	}
	lines[1] = strings.TrimSpace(line2)
	lines[2] = strings.TrimSpace(line3)
	return strings.Join(lines, "\n")
}
