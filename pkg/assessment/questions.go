package assessment

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/beevik/etree"

	"github.com/coursetools/bbexport-go/pkg/utils"
)

// questionType is one supported kind: its TSV type code plus the answer
// extraction specific to that kind's response grammar.
type questionType struct {
	code    string
	extract func(item *etree.Element) ([]string, error)
}

// Keyed by the bbmd_questiontype metadata value. Anything else is skipped.
var questionTypes = map[string]questionType{
	"True/False":        {code: "TF", extract: extractTrueFalse},
	"Fill in the Blank": {code: "FIB", extract: extractFillInBlank},
	"Multiple Choice":   {code: "MC", extract: extractMultipleChoice},
	"Multiple Answer":   {code: "MA", extract: extractMultipleAnswer},
	"Ordering":          {code: "ORD", extract: extractOrdering},
	"Essay":             {code: "ESS", extract: extractEssay},
}

func correctCondition(item *etree.Element) (*etree.Element, error) {
	cond := item.FindElement(".//respcondition[@title='correct']")
	if cond == nil {
		return nil, fmt.Errorf("no respcondition titled \"correct\"")
	}

	return cond, nil
}

// andIdents reads the direct varequal children of the AND-expression nested in
// the "correct" respcondition, in document order. Deeper nesting is not
// followed; the grammar lists the matching identifiers first.
func andIdents(item *etree.Element) ([]string, error) {
	cond, err := correctCondition(item)
	if err != nil {
		return nil, err
	}

	and := cond.FindElement(".//and")
	if and == nil {
		return nil, fmt.Errorf("no and-expression under the \"correct\" respcondition")
	}

	idents := make([]string, 0)
	for _, child := range and.ChildElements() {
		if child.Tag == "varequal" {
			idents = append(idents, strings.TrimSpace(child.Text()))
		}
	}

	return idents, nil
}

type choice struct {
	ident string
	text  string
}

// choices lists the question's answer options (response_label definitions) in
// document order, with display text stripped of markup.
func choices(item *etree.Element) []choice {
	labels := item.FindElements(".//response_label")
	out := make([]choice, 0, len(labels))
	for _, label := range labels {
		out = append(out, choice{
			ident: label.SelectAttrValue("ident", ""),
			text:  utils.StripTags(utils.TextOf(label, ".//mat_formattedtext")),
		})
	}

	return out
}

// choicePairs emits every choice as a (text, correct/incorrect) column pair.
func choicePairs(item *etree.Element, correct map[string]bool) []string {
	out := make([]string, 0)
	for _, c := range choices(item) {
		verdict := "incorrect"
		if correct[c.ident] {
			verdict = "correct"
		}
		out = append(out, c.text, verdict)
	}

	return out
}

func extractTrueFalse(item *etree.Element) ([]string, error) {
	cond, err := correctCondition(item)
	if err != nil {
		return nil, err
	}

	answer := cond.FindElement(".//varequal")
	if answer == nil {
		return nil, fmt.Errorf("no varequal under the \"correct\" respcondition")
	}

	return []string{utils.StripTags(answer.Text())}, nil
}

// Fill-in-the-Blank uses the inverted-title convention: every respcondition
// NOT titled "incorrect" holds one accepted answer. A question where nothing
// survives still emits its row, just with no answer columns.
func extractFillInBlank(item *etree.Element) ([]string, error) {
	answers := make([]string, 0)
	for _, cond := range item.FindElements(".//respcondition") {
		if cond.SelectAttrValue("title", "") == "incorrect" {
			continue
		}

		value := cond.FindElement(".//varequal")
		if value == nil {
			continue
		}
		answers = append(answers, utils.StripTags(value.Text()))
	}

	return answers, nil
}

func extractMultipleChoice(item *etree.Element) ([]string, error) {
	cond, err := correctCondition(item)
	if err != nil {
		return nil, err
	}

	answer := cond.FindElement(".//varequal")
	if answer == nil {
		return nil, fmt.Errorf("no varequal under the \"correct\" respcondition")
	}

	correct := map[string]bool{strings.TrimSpace(answer.Text()): true}
	return choicePairs(item, correct), nil
}

func extractMultipleAnswer(item *etree.Element) ([]string, error) {
	idents, err := andIdents(item)
	if err != nil {
		return nil, err
	}

	correct := make(map[string]bool, len(idents))
	for _, ident := range idents {
		correct[ident] = true
	}

	return choicePairs(item, correct), nil
}

// Ordering resolves the AND-expression identifiers through the flow-label
// definitions: the emitted sequence follows correctness order, not the
// labels' document order.
func extractOrdering(item *etree.Element) ([]string, error) {
	idents, err := andIdents(item)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string)
	for _, c := range choices(item) {
		labels[c.ident] = c.text
	}

	out := make([]string, 0, len(idents))
	for _, ident := range idents {
		text, ok := labels[ident]
		if !ok {
			slog.Warn("[assessment] ordering identifier has no flow-label, emitting it verbatim", "ident", ident)
			text = ident
		}
		out = append(out, text)
	}

	return out, nil
}

// Essay has no answer key; the answer column stays empty. A model-solution
// column could be added here once the import format grows one.
func extractEssay(_ *etree.Element) ([]string, error) {
	return []string{""}, nil
}
