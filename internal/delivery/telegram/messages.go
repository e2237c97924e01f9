// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

// Error messages.
const (
	msgInternalError    = "Something went wrong. Please try again later."
	msgUnknownCommand   = "Unknown command. Send /help to see what I can do."
	msgUseNew           = "Usage: /new <deck title>"
	msgTitleInvalid     = "The deck title must be 1 to 64 characters long."
	msgEmptyDeck        = "I couldn't find any words in that. Send one entry per line: word, IPA, meaning."
	msgEnrichmentFailed = "I couldn't look up these words right now. Please try again later or send the meanings yourself."
	msgNoActiveDeck     = "You have no active deck. Create one with /new <title>."
	msgNoDecks          = "You have no decks yet. Create one with /new <title>."
	msgDeckNotFound     = "This deck no longer exists."
	msgNoQuestions      = "This deck has no entries with a meaning, so there is nothing to ask."
	msgNoActiveQuiz     = "There is no quiz in progress. Start one with /quiz."
	msgStaleQuestion    = "This question has already been answered."
	msgSessionNotFound  = "This quiz no longer exists."
	msgUnsupportedFile  = "Please send a .csv, .tsv or .txt file."
	msgFileTooLarge     = "The file is too large."
	msgNothingPending   = "Send /new <title> to create a deck, or /help for the list of commands."
	msgCancelled        = "Cancelled."
	msgDeckDeleted      = "Deck deleted."
	msgDeckSelected     = "Deck selected for quizzes."
	msgLastKind         = "At least one question type must stay enabled."
)

const msgHelp = `I turn word lists into quizzes.

/new <title> - create a deck, then send the list as text or a .csv/.tsv/.txt file
/decks - your decks
/quiz - start a quiz on the active deck
/settings - question types and quiz length
/export - download the active deck as CSV and JSON
/cancel - stop the current quiz or import

Each line of a list is "word, IPA, meaning". Two columns are read as word and meaning, a single column as words only.`

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func msgWelcome() string {
	var sb strings.Builder
	sb.WriteString(bold("Vocabulary decks"))
	sb.WriteString("\n\n")
	sb.WriteString(md(msgHelp))
	return sb.String()
}

func msgAwaitingDeck(title string) string {
	return fmt.Sprintf("%s %s\n\n%s",
		md("New deck:"),
		bold(title),
		md("Now send the word list as a message or a .csv/.tsv/.txt file."),
	)
}

func msgDeckImported(deck *entities.Deck) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n\n", md("✅ Deck saved:"), bold(deck.Title)))
	sb.WriteString(md(fmt.Sprintf("Entries: %d\nReady for quizzes: %d", len(deck.Entries), deck.EligibleCount())))
	sb.WriteString("\n\n")
	sb.WriteString(md("It is now your active deck. Send /quiz to practice."))
	return sb.String()
}

func msgKindName(k entities.QuestionKind) string {
	switch k {
	case entities.KindMCQ:
		return "Multiple choice"
	case entities.KindTF:
		return "True or false"
	case entities.KindFill:
		return "Fill in the word"
	default:
		return string(k)
	}
}
