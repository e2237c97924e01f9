package telegram

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionDeck     = "deck"
	actionQuiz     = "quiz"
	actionSettings = "settings"
)

// Deck sub-actions.
const (
	deckOpen   = "open"
	deckSelect = "sel"
	deckDelete = "del"
	deckExport = "exp"
	deckList   = "list"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizOption = "opt"
	quizTF     = "tf"
	quizSkip   = "skip"
	quizExport = "export"
)

// Settings sub-actions.
const (
	settingsMenu   = "menu"
	settingsKind   = "kind"
	settingsLength = "len"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	return n, err == nil
}

func (cd callbackData) int64Param(i int) (int64, bool) {
	n, err := strconv.ParseInt(cd.param(i), 10, 64)
	return n, err == nil
}

func (cd callbackData) uuidParam(i int) (uuid.UUID, bool) {
	id, err := uuid.Parse(cd.param(i))
	return id, err == nil
}

func buildDeckCallback(subAction string, deckID uuid.UUID) string {
	return callbackData{
		Action: actionDeck,
		Params: []string{subAction, deckID.String()},
	}.encode()
}

func buildDeckListCallback() string {
	return callbackData{Action: actionDeck, Params: []string{deckList}}.encode()
}

func buildQuizStartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizStart}}.encode()
}

// buildQuizOptionCallback builds callback data for picking a multiple-choice option.
// The question index guards against presses on stale keyboards.
func buildQuizOptionCallback(sessionID int64, order, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizOption,
			strconv.FormatInt(sessionID, 10),
			strconv.Itoa(order),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

func buildQuizTFCallback(sessionID int64, order int, value bool) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizTF,
			strconv.FormatInt(sessionID, 10),
			strconv.Itoa(order),
			strconv.FormatBool(value),
		},
	}.encode()
}

func buildQuizSkipCallback(sessionID int64, order int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizSkip, strconv.FormatInt(sessionID, 10), strconv.Itoa(order)},
	}.encode()
}

func buildQuizExportCallback(sessionID int64) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizExport, strconv.FormatInt(sessionID, 10)},
	}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

func buildSettingsKindCallback(kind entities.QuestionKind) string {
	return buildSettingsCallback(settingsKind, string(kind))
}

func buildSettingsLengthCallback(n int) string {
	return buildSettingsCallback(settingsLength, strconv.Itoa(n))
}
