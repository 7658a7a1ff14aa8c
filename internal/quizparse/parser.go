// Package quizparse turns a model's free-text quiz reply into questions.
//
// The reply grammar is line oriented:
//
//	reply       = block { blank-line+ block }
//	blank-line  = a line holding only whitespace
//	block       = question-line { choice-line }
//	choice-line = [ "(" ] enumerator ")" space+ choice-text [ marker ]
//	enumerator  = one letter, or one or two digits
//	marker      = "(correct)", matched case-insensitively anywhere in the line
//
// The first block is a preamble (e.g. "Here are three questions:") unless it
// already contains choice lines; see Preamble.
package quizparse

import (
	"regexp"
	"strings"

	"quiz-brief/internal/domain"
)

// CorrectMarker is the token the model appends behind the correct choice.
const CorrectMarker = "(correct)"

// Preamble selects how the first block of a reply is treated.
type Preamble int

const (
	// PreambleAuto drops the first block only when it has no choice lines.
	PreambleAuto Preamble = iota
	// PreambleAlways drops the first block unconditionally.
	PreambleAlways
	// PreambleNever treats every block as a question.
	PreambleNever
)

// Options tune the parser. The zero value is the default policy.
type Options struct {
	Preamble Preamble
	// Lenient skips choice lines without an enumerator instead of failing.
	Lenient bool
}

var (
	blankLineSep  = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)*`)
	choicePrefix  = regexp.MustCompile(`^\s*\(?([A-Za-z]|[0-9]{1,2})\)\s+`)
	bareChoice    = regexp.MustCompile(`^\s*\(?([A-Za-z]|[0-9]{1,2})\)\s*$`)
	correctMarker = regexp.MustCompile(`(?i)\s*\(correct\)`)
)

// Parse parses raw with the default options.
func Parse(raw string) ([]domain.Question, error) {
	return ParseWithOptions(raw, Options{})
}

// ParseWithOptions parses raw into questions in block order.
// It never returns a nil slice on success.
func ParseWithOptions(raw string, opts Options) ([]domain.Question, error) {
	blocks := splitBlocks(raw)
	if len(blocks) == 0 {
		return nil, domain.NewParseError("quiz reply is empty", 0, 0)
	}

	start := 0
	switch opts.Preamble {
	case PreambleAlways:
		start = 1
	case PreambleAuto:
		if !hasChoiceLine(blocks[0]) {
			start = 1
		}
	}

	questions := make([]domain.Question, 0, len(blocks)-start)
	for i := start; i < len(blocks); i++ {
		q, err := parseBlock(blocks[i], i+1, opts)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// ParseChoice parses a single choice line such as "b) 4 (correct)" or "(b) 4".
func ParseChoice(line string) (domain.Choice, bool) {
	correct := correctMarker.MatchString(line)
	stripped := correctMarker.ReplaceAllString(line, "")

	loc := choicePrefix.FindStringIndex(stripped)
	if loc == nil {
		return domain.Choice{}, false
	}
	text := strings.TrimSpace(stripped[loc[1]:])
	if text == "" {
		return domain.Choice{}, false
	}
	return domain.Choice{Text: text, Correct: correct}, true
}

func splitBlocks(raw string) [][]string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var blocks [][]string
	for _, chunk := range blankLineSep.Split(raw, -1) {
		var lines []string
		for _, l := range strings.Split(chunk, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) > 0 {
			blocks = append(blocks, lines)
		}
	}
	return blocks
}

func hasChoiceLine(block []string) bool {
	for _, l := range block[1:] {
		if choicePrefix.MatchString(l) {
			return true
		}
	}
	return false
}

func parseBlock(lines []string, blockNo int, opts Options) (domain.Question, error) {
	q := domain.Question{
		Text:    lines[0],
		Choices: make([]domain.Choice, 0, len(lines)-1),
	}
	for j, line := range lines[1:] {
		choice, ok := ParseChoice(line)
		if ok {
			q.Choices = append(q.Choices, choice)
			continue
		}
		if opts.Lenient {
			continue
		}
		lineNo := j + 2
		if bareChoice.MatchString(correctMarker.ReplaceAllString(line, "")) {
			return domain.Question{}, domain.NewParseError("choice line has no text", blockNo, lineNo).
				WithContext("content", line)
		}
		return domain.Question{}, domain.NewParseError("choice line is missing an enumerator such as \"a) \"", blockNo, lineNo).
			WithContext("content", line)
	}
	return q, nil
}
