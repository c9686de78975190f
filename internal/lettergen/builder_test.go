package lettergen

import (
	"strings"
	"testing"

	"github.com/ymorimoto/mirai-letter/internal/letter"
	"github.com/ymorimoto/mirai-letter/internal/letterlint"
	"github.com/ymorimoto/mirai-letter/internal/projection"
)

func buildInput(goal letter.Goal) letter.Input {
	return letter.Input{
		Age:               34,
		HouseholdNow:      2,
		KidsFuture:        1,
		AnnualIncomeJPY:   5_000_000,
		MonthlySavingsJPY: 25_000,
		CurrentSavingsJPY: 1_200_000,
		MonthlyInvestJPY:  15_000,
		CurrentInvestJPY:  400_000,
		Goal:              goal,
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	in := buildInput(letter.GoalFIRE)
	proj := projection.Compute(in)
	first := Build(in, proj)
	for i := 0; i < 10; i++ {
		if got := Build(in, proj); got != first {
			t.Fatalf("build not deterministic on attempt %d:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestBuildFixedFrame(t *testing.T) {
	in := buildInput(letter.GoalMortgage)
	proj := projection.Compute(in)
	lines := letterlint.Lines(Build(in, proj))
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(lines))
	}
	if lines[0] != openingLine {
		t.Fatalf("line 1: got %q", lines[0])
	}
	if lines[4] != letterlint.HookLine {
		t.Fatalf("line 5: got %q", lines[4])
	}
	if lines[5] != letterlint.MethodsLine {
		t.Fatalf("line 6: got %q", lines[5])
	}
	if lines[6] != closingLine {
		t.Fatalf("line 7: got %q", lines[6])
	}
}

// Every goal, every severity, several household shapes: the assembled letter
// must pass the full lint and keep its structural properties.
func TestBuildAllCombinationsPassLint(t *testing.T) {
	shapes := []struct {
		household, kids int
	}{
		{1, 0},
		{2, 0},
		{2, 2},
		{4, 1},
	}
	for _, goal := range letter.Goals {
		for _, shape := range shapes {
			for sev := 0; sev <= 4; sev++ {
				in := buildInput(goal)
				in.HouseholdNow = shape.household
				in.KidsFuture = shape.kids
				if goal == letter.GoalOther {
					in.GoalOther = "世界一周の旅行"
				}
				proj := projection.Compute(in)
				text := BuildWithSeverity(in, proj, sev)
				if vs := letterlint.Check(text); len(vs) != 0 {
					t.Fatalf("goal=%s household=%d kids=%d severity=%d: lint violations %v\n%s",
						goal, shape.household, shape.kids, sev, vs, text)
				}
				lines := letterlint.Lines(text)
				if !letterlint.SingleSentence(lines[3]) {
					t.Fatalf("line 4 not a single sentence: %q", lines[3])
				}
				if endingCategory(lines[1]) == endingCategory(lines[2]) {
					t.Fatalf("lines 2 and 3 share ending %q:\n%q\n%q",
						endingCategory(lines[1]), lines[1], lines[2])
				}
				if joinDenied(lines[1], lines[2]) {
					t.Fatalf("denied join between lines 2 and 3:\n%q\n%q", lines[1], lines[2])
				}
			}
		}
	}
}

func TestBuildHighSeverityCarriesStrainedVocab(t *testing.T) {
	for _, goal := range letter.Goals {
		for sev := 3; sev <= 4; sev++ {
			in := buildInput(goal)
			if goal == letter.GoalOther {
				in.GoalOther = "資格の勉強"
			}
			proj := projection.Compute(in)
			lines := letterlint.Lines(BuildWithSeverity(in, proj, sev))
			if !containsStrained(lines[1]) && !containsStrained(lines[2]) {
				t.Fatalf("goal=%s severity=%d: no strained vocabulary in lines 2/3:\n%q\n%q",
					goal, sev, lines[1], lines[2])
			}
		}
	}
}

func TestBuildLowSeverityAvoidsHardBand(t *testing.T) {
	in := buildInput(letter.GoalFIRE)
	proj := projection.Compute(in)
	lines := letterlint.Lines(BuildWithSeverity(in, proj, 0))
	for _, pool := range [][]string{line2Pools[ClassifySituation(in)][bandHard], line3Pools["fire"][bandHard]} {
		for _, hard := range pool {
			if lines[1] == hard || lines[2] == hard {
				t.Fatalf("calm letter picked a hard-band sentence: %q", hard)
			}
		}
	}
}

func TestBuildLine4FollowsVariantAndSeverity(t *testing.T) {
	in := buildInput(letter.GoalOverseas)
	proj := projection.Compute(in)
	variant := PickVariant(in.Age, in.HouseholdNow, in.KidsFuture, in.Goal)
	for sev := 0; sev <= 4; sev++ {
		lines := letterlint.Lines(BuildWithSeverity(in, proj, sev))
		if lines[3] != line4Table[variant][sev] {
			t.Fatalf("severity %d: line 4 got %q want %q", sev, lines[3], line4Table[variant][sev])
		}
	}
}

func TestBuildSeverityClamped(t *testing.T) {
	in := buildInput(letter.GoalFIRE)
	proj := projection.Compute(in)
	if BuildWithSeverity(in, proj, -3) != BuildWithSeverity(in, proj, 0) {
		t.Fatal("negative severity should clamp to 0")
	}
	if BuildWithSeverity(in, proj, 9) != BuildWithSeverity(in, proj, 4) {
		t.Fatal("oversized severity should clamp to 4")
	}
}

func TestReplaceMiddleLines(t *testing.T) {
	in := buildInput(letter.GoalEntrepreneur)
	proj := projection.Compute(in)
	base := Build(in, proj)
	got := ReplaceMiddleLines(base, " 新しい二行目。 ", "新しい三行目。")
	lines := letterlint.Lines(got)
	if lines[1] != "新しい二行目。" || lines[2] != "新しい三行目。" {
		t.Fatalf("middle lines not replaced: %q / %q", lines[1], lines[2])
	}
	if lines[0] != openingLine || lines[4] != letterlint.HookLine || lines[6] != closingLine {
		t.Fatal("fixed frame must survive the replacement")
	}
	if ReplaceMiddleLines("only\ntwo lines", "a", "b") != "only\ntwo lines" {
		t.Fatal("malformed base should be returned unchanged")
	}
}

func TestPlanFallsBackToOther(t *testing.T) {
	save, grow, protect, cta := Plan(letter.Goal("unknown"))
	oSave, oGrow, oProtect, oCTA := Plan(letter.GoalOther)
	if save != oSave || grow != oGrow || protect != oProtect || cta != oCTA {
		t.Fatal("unknown goal should fall back to the other plan copy")
	}
}

func TestSummaryMentionsKeyFigures(t *testing.T) {
	in := buildInput(letter.GoalFIRE)
	proj := projection.Compute(in)
	summary := Summary(in, proj)
	for _, want := range []string{yen(proj.SpendBlendedJPY), yen(proj.SavingsFutureJPY), proj.GoalGapLabel} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestBuildContentBundle(t *testing.T) {
	in := buildInput(letter.GoalMortgage)
	proj := projection.Compute(in)
	content := BuildContent(in, proj)

	if content.LetterID == "" {
		t.Fatal("letter id must be set")
	}
	if content.Polished {
		t.Fatal("template content must not be marked polished")
	}
	if content.Letter != Build(in, proj) {
		t.Fatal("content letter must match the deterministic build")
	}
	if content.Disclaimer != Disclaimer || content.Method != Method || content.Evidence != Evidence {
		t.Fatal("fixed metadata fields must be populated")
	}
	if vs := letterlint.CheckBundle(content.Letter, content.PlanSave, content.PlanGrow, content.PlanProtect, content.CTA); len(vs) != 0 {
		t.Fatalf("bundle lint violations: %v", vs)
	}
	other := BuildContent(in, proj)
	if other.LetterID == content.LetterID {
		t.Fatal("letter ids must be unique per build")
	}
}

func TestYenFormatting(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0円"},
		{999, "999円"},
		{1_000, "1,000円"},
		{255_000, "255,000円"},
		{4_400_000, "4,400,000円"},
		{-12_345, "-12,345円"},
	}
	for _, tc := range cases {
		if got := yen(tc.in); got != tc.want {
			t.Fatalf("yen(%d): got %q want %q", tc.in, got, tc.want)
		}
	}
}
