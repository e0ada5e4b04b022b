package quiz

import (
	"fmt"
	"strings"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
)

const systemPrompt = `You help readers check their understanding of the sections they just finished.

Rules:
- Write simple multiple-choice questions about the listed topics only.
- Every question has exactly 4 options and exactly one of them is correct.
- correct_answer must be copied character for character from options.
- Distractors should be plausible for someone who skimmed, not absurd.
- Return JSON that matches the provided schema.`

// categoryFocus steers the questions toward what matters for each kind of book.
func categoryFocus(c catalog.Category) string {
	switch c {
	case catalog.CategoryAcademic:
		return "These topics come from an academic book. Focus on the key definitions, formulas or core concepts they cover."
	case catalog.CategoryTechnical:
		return "These topics come from a technical paper. Focus on the methodology, main findings or technical terminology they cover."
	default:
		return "These topics come from a novel. Focus on the plot, what the characters do, or important dialogue in them."
	}
}

func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write %d multiple-choice questions with %d options each.\n\n", input.Count, OptionsPerQuiz)
	b.WriteString(categoryFocus(input.Category))
	b.WriteString("\n\nTopics:\n")
	for _, t := range input.Topics {
		fmt.Fprintf(&b, "- %s\n", t)
	}

	return strings.TrimRight(b.String(), "\n")
}
