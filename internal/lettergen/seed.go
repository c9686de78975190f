package lettergen

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/ymorimoto/mirai-letter/internal/letter"
)

// PickVariant derives the letter style (0-2) from the household profile.
// Pure and idempotent: identical input always yields the same variant, which
// makes the letter "style" vary by profile without any randomness.
func PickVariant(age, householdNow, kidsFuture int, goal letter.Goal) int {
	sum := age*3 + householdNow*5 + kidsFuture*7 + goal.Code()*11
	return sum % 3
}

// seedFor is the stable hash standing in for a random choice. Collisions are
// resolved downstream by linear probing with wraparound over the pool,
// skipping disallowed candidates.
func seedFor(scenarioKey string, goal letter.Goal, variant, severity int) uint32 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%d|%d", scenarioKey, goal, variant, severity)
	return h.Sum32()
}

// endingCategory buckets a sentence by how it ends, so consecutive lines do
// not repeat the same register.
func endingCategory(s string) string {
	t := strings.TrimSpace(s)
	t = strings.TrimRight(t, "。！？!?")
	switch {
	case strings.HasSuffix(t, "よ"):
		return "yo"
	case strings.HasSuffix(t, "ね"):
		return "ne"
	case strings.HasSuffix(t, "かな"), strings.HasSuffix(t, "かしら"):
		return "kana"
	default:
		return "plain"
	}
}

// joinDenied reports whether concatenating the two lines produces one of the
// fixed repetitive-ending patterns.
func joinDenied(line2, line3 string) bool {
	joined := line2 + line3
	for _, pattern := range deniedJoins {
		if strings.Contains(joined, pattern) {
			return true
		}
	}
	return false
}

func containsStrained(s string) bool {
	for _, w := range strainedVocab {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
