// Package letterlint validates a candidate letter against the structural and
// lexical constraints every delivered letter must satisfy. All predicates are
// pure, stateless, and order-independent; a letter is valid only when every
// one of them passes.
package letterlint

import (
	"strings"
	"unicode/utf8"
)

const (
	// HookLine must appear verbatim as line 5.
	HookLine = "実はね、ここまで来られたのには理由があるの。"
	// MethodsLine must appear verbatim as line 6.
	MethodsLine = "やってきたのは、ためる・ふやす・まもる、この三つだけ。"

	// LineCount is the fixed letter shape.
	LineCount = 7

	// LetterMaxRunes caps the whole letter; CombinedMaxRunes caps the letter
	// together with the four short plan/CTA fields.
	LetterMaxRunes   = 280
	CombinedMaxRunes = 600
)

// forbiddenVocab holds numeric/financial jargon and the product brand; none
// of these may reach the letter body.
var forbiddenVocab = []string{
	"円",
	"万",
	"年率",
	"利回り",
	"複利",
	"投資信託",
	"NISA",
	"iDeCo",
	"リターン",
	"ポートフォリオ",
	"ミライレター",
}

// forbiddenPhrases are deprecated phrasings removed from the content corpus.
var forbiddenPhrases = []string{
	"頑張ってください",
	"絶対に大丈夫",
	"必ず成功",
	"安心してください",
	"儲かる",
}

var terminalMarks = []rune{'。', '！', '？', '!', '?'}

// Violation describes one failed predicate.
type Violation struct {
	Rule   string
	Detail string
}

// Lines splits a letter into trimmed non-empty lines.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ForbiddenVocab returns every forbidden term found in the text.
func ForbiddenVocab(text string) []string {
	var found []string
	for _, term := range forbiddenVocab {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}

// ForbiddenPhrases returns every deprecated phrasing found in the text.
func ForbiddenPhrases(text string) []string {
	var found []string
	for _, phrase := range forbiddenPhrases {
		if strings.Contains(text, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

// HasLineCount reports whether the letter has exactly LineCount non-empty lines.
func HasLineCount(text string) bool {
	return len(Lines(text)) == LineCount
}

// HasFixedHook reports whether line 5 is the fixed hook sentence verbatim.
func HasFixedHook(text string) bool {
	lines := Lines(text)
	return len(lines) >= 5 && lines[4] == HookLine
}

// HasFixedMethods reports whether line 6 is the fixed methods sentence verbatim.
func HasFixedMethods(text string) bool {
	lines := Lines(text)
	return len(lines) >= 6 && lines[5] == MethodsLine
}

// SingleSentence reports whether s contains exactly one terminal punctuation
// mark and ends with it.
func SingleSentence(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	count := 0
	for _, r := range s {
		if isTerminal(r) {
			count++
		}
	}
	if count != 1 {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	return isTerminal(last)
}

// SingleSentenceLine4 applies SingleSentence to line 4 of the letter.
func SingleSentenceLine4(text string) bool {
	lines := Lines(text)
	return len(lines) >= 4 && SingleSentence(lines[3])
}

// WithinLetterBudget reports whether the whole letter fits the rune cap.
func WithinLetterBudget(text string) bool {
	return utf8.RuneCountInString(text) <= LetterMaxRunes
}

// WithinCombinedBudget reports whether the letter plus the four short fields
// fit the combined rune cap.
func WithinCombinedBudget(text, planSave, planGrow, planProtect, cta string) bool {
	total := utf8.RuneCountInString(text) +
		utf8.RuneCountInString(planSave) +
		utf8.RuneCountInString(planGrow) +
		utf8.RuneCountInString(planProtect) +
		utf8.RuneCountInString(cta)
	return total <= CombinedMaxRunes
}

func isTerminal(r rune) bool {
	for _, m := range terminalMarks {
		if r == m {
			return true
		}
	}
	return false
}

// Check runs every letter-body predicate and returns all violations.
func Check(text string) []Violation {
	var vs []Violation
	for _, term := range ForbiddenVocab(text) {
		vs = append(vs, Violation{Rule: "forbidden_vocab", Detail: term})
	}
	for _, phrase := range ForbiddenPhrases(text) {
		vs = append(vs, Violation{Rule: "forbidden_phrase", Detail: phrase})
	}
	if !HasLineCount(text) {
		vs = append(vs, Violation{Rule: "line_count", Detail: "letter must have exactly 7 non-empty lines"})
	}
	if !HasFixedHook(text) {
		vs = append(vs, Violation{Rule: "fixed_hook", Detail: "line 5 must be the fixed hook sentence"})
	}
	if !HasFixedMethods(text) {
		vs = append(vs, Violation{Rule: "fixed_methods", Detail: "line 6 must be the fixed methods sentence"})
	}
	if !SingleSentenceLine4(text) {
		vs = append(vs, Violation{Rule: "line4_single_sentence", Detail: "line 4 must be exactly one sentence"})
	}
	if !WithinLetterBudget(text) {
		vs = append(vs, Violation{Rule: "letter_budget", Detail: "letter exceeds the rune cap"})
	}
	return vs
}

// CheckBundle runs Check plus the combined budget over the short fields.
func CheckBundle(text, planSave, planGrow, planProtect, cta string) []Violation {
	vs := Check(text)
	if !WithinCombinedBudget(text, planSave, planGrow, planProtect, cta) {
		vs = append(vs, Violation{Rule: "combined_budget", Detail: "letter plus plan fields exceed the combined cap"})
	}
	return vs
}

// Valid reports whether the letter passes every predicate.
func Valid(text string) bool {
	return len(Check(text)) == 0
}
