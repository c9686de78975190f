package letterlint

import (
	"strings"
	"testing"
)

func goodLetter() string {
	return strings.Join([]string{
		"十年後のわたしから、いまのあなたへ。",
		"毎日の暮らし、ちゃんと積み重なってるよ。",
		"あの夢、こっちでは形になり始めてる。",
		"この調子で続ければ、十年後は少し広い部屋で笑ってるよ。",
		HookLine,
		MethodsLine,
		"十年後のこの場所で、待ってるね。",
	}, "\n")
}

func TestGoodLetterIsValid(t *testing.T) {
	letter := goodLetter()
	if vs := Check(letter); len(vs) != 0 {
		t.Fatalf("expected no violations, got %v", vs)
	}
	if !Valid(letter) {
		t.Fatal("Valid should agree with Check")
	}
}

func TestLinesSkipsBlankAndPadding(t *testing.T) {
	got := Lines("a\n\n  b  \n\nc\n")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("lines: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestForbiddenVocabDetected(t *testing.T) {
	text := "毎月3万円をNISAで積み立てよう。"
	found := ForbiddenVocab(text)
	if len(found) != 3 {
		t.Fatalf("expected 円, 万, NISA; got %v", found)
	}
}

func TestForbiddenPhraseDetected(t *testing.T) {
	letter := strings.Replace(goodLetter(), "積み重なってるよ。", "絶対に大丈夫だよ。", 1)
	vs := Check(letter)
	if len(vs) != 1 || vs[0].Rule != "forbidden_phrase" {
		t.Fatalf("expected single forbidden_phrase violation, got %v", vs)
	}
}

func TestLineCountViolations(t *testing.T) {
	six := strings.Join(Lines(goodLetter())[:6], "\n")
	if HasLineCount(six) {
		t.Fatal("six lines should fail the line count")
	}
	eight := goodLetter() + "\nもう一行。"
	if HasLineCount(eight) {
		t.Fatal("eight lines should fail the line count")
	}
}

func TestFixedLinesMustBeVerbatim(t *testing.T) {
	broken := strings.Replace(goodLetter(), HookLine, "実はね、理由があるの。", 1)
	if HasFixedHook(broken) {
		t.Fatal("paraphrased hook should fail")
	}
	broken = strings.Replace(goodLetter(), MethodsLine, MethodsLine+"ね", 1)
	if HasFixedMethods(broken) {
		t.Fatal("suffixed methods line should fail")
	}
}

func TestSingleSentence(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"この調子で続ければ、笑ってるよ。", true},
		{"ほんとに？", true},
		{"二つの文。分かれてる。", false},
		{"。先頭で終わらない。", false},
		{"句点がない", false},
		{"", false},
		{"途中。で切れる", false},
	}
	for _, tc := range cases {
		if got := SingleSentence(tc.in); got != tc.want {
			t.Fatalf("SingleSentence(%q): got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestLetterBudget(t *testing.T) {
	if !WithinLetterBudget(strings.Repeat("あ", LetterMaxRunes)) {
		t.Fatal("letter at exactly the cap should pass")
	}
	if WithinLetterBudget(strings.Repeat("あ", LetterMaxRunes+1)) {
		t.Fatal("letter one rune over the cap should fail")
	}
}

func TestCheckBundleCombinedBudget(t *testing.T) {
	letter := goodLetter()
	padding := strings.Repeat("あ", CombinedMaxRunes)
	vs := CheckBundle(letter, padding, "", "", "")
	found := false
	for _, v := range vs {
		if v.Rule == "combined_budget" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected combined_budget violation, got %v", vs)
	}
	if vs := CheckBundle(letter, "ためる習慣を整えよう。", "ふやす仕組みを持とう。", "まもる備えをしよう。", "無料相談はこちら。"); len(vs) != 0 {
		t.Fatalf("short fields should fit the combined cap, got %v", vs)
	}
}
