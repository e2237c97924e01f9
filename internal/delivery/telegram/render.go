package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/service"
)

// previewEntries is the number of entries shown in a deck card.
const previewEntries = 10

// renderQuestion renders the prompt of a question in MarkdownV2.
func renderQuestion(q entities.Question, order, total int) string {
	var sb strings.Builder
	sb.WriteString(md(fmt.Sprintf("Question %d/%d", order+1, total)))
	sb.WriteString("\n\n")

	switch q := q.(type) {
	case entities.MCQQuestion:
		sb.WriteString(bold(q.Question))
		sb.WriteString("\n")
		sb.WriteString(md("Choose the meaning:"))
	case entities.TFQuestion:
		sb.WriteString(bold(q.Question))
		sb.WriteString(md(" means "))
		sb.WriteString(italic(q.Meaning))
		sb.WriteString("\n")
		sb.WriteString(md("True or false?"))
	case entities.FillQuestion:
		sb.WriteString(bold(q.Question))
		sb.WriteString("\n")
		sb.WriteString(md("Type the meaning:"))
	}

	return sb.String()
}

// renderFeedback renders the verdict on an answered question.
func renderFeedback(res *service.AnswerResult) string {
	answer := res.CorrectAnswer
	if tf, ok := res.Question.(entities.TFQuestion); ok {
		answer = formatBool(tf.Answer)
	}

	switch res.Status {
	case entities.StatusCorrect:
		return md("✅ Correct!")
	case entities.StatusIncorrect:
		return md("❌ Incorrect. Answer: ") + bold(answer)
	default:
		return md("⏭ Skipped. Answer: ") + bold(answer)
	}
}

// renderResult renders the final score.
func renderResult(score entities.Score) string {
	return fmt.Sprintf("%s\n\n%s",
		bold("🏁 Quiz finished"),
		md(fmt.Sprintf("Score: %d/%d (%.0f%%)", score.Correct, score.Total, score.Percent())),
	)
}

// renderDeck renders a deck card with the first entries.
func renderDeck(deck *entities.Deck) string {
	var sb strings.Builder
	sb.WriteString(bold(deck.Title))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("Entries: %d, ready for quizzes: %d", len(deck.Entries), deck.EligibleCount())))
	sb.WriteString("\n\n")

	for i, e := range deck.Entries {
		if i == previewEntries {
			sb.WriteString(md(fmt.Sprintf("… and %d more", len(deck.Entries)-previewEntries)))
			break
		}
		sb.WriteString(bold(e.Word))
		if e.IPA != "" {
			sb.WriteString(" " + md(e.IPA))
		}
		if e.Meaning != "" {
			sb.WriteString(md(" - " + e.Meaning))
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderSettings renders the quiz preferences.
func renderSettings(settings *entities.UserSettings) string {
	kinds := make([]string, 0, len(settings.QuizKinds))
	for _, k := range settings.QuizKinds {
		kinds = append(kinds, msgKindName(k))
	}

	return fmt.Sprintf("%s\n\n%s\n%s",
		bold("⚙️ Settings"),
		md("Question types: "+strings.Join(kinds, ", ")),
		md(fmt.Sprintf("Questions per quiz: %d", settings.QuizLength)),
	)
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
