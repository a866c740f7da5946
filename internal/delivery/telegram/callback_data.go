package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionEntry        = "entry"
	actionBookmark     = "bookmark"
	actionRelated      = "related"
	actionStudy        = "study"
	actionCategory     = "cat"
	actionTheme        = "theme"
	actionAchievements = "ach"
	actionHistory      = "history"
	actionReset        = "reset"
	actionDaily        = "daily"
	actionStats        = "stats"
)

// Study sub-actions.
const (
	studyStart  = "start"
	studyReveal = "reveal"
	studyAnswer = "answer"
	studyEnd    = "end"
)

// History sub-actions.
const (
	historyRun   = "run"
	historyClear = "clear"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
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

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
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

func buildEntryCallback(itemID string) string {
	return callbackData{Action: actionEntry, Params: []string{itemID}}.encode()
}

func buildBookmarkCallback(itemID string) string {
	return callbackData{Action: actionBookmark, Params: []string{itemID}}.encode()
}

func buildRelatedCallback(itemID string) string {
	return callbackData{Action: actionRelated, Params: []string{itemID}}.encode()
}

func buildStudyCallback(subAction string) string {
	return callbackData{Action: actionStudy, Params: []string{subAction}}.encode()
}

func buildStudyAnswerCallback(isCorrect bool) string {
	return callbackData{
		Action: actionStudy,
		Params: []string{studyAnswer, strconv.FormatBool(isCorrect)},
	}.encode()
}

func buildCategoryCallback(category string) string {
	return callbackData{Action: actionCategory, Params: []string{category}}.encode()
}

func buildThemeCallback(theme string) string {
	return callbackData{Action: actionTheme, Params: []string{theme}}.encode()
}

func buildAchievementsCallback(category string) string {
	return callbackData{Action: actionAchievements, Params: []string{category}}.encode()
}

func buildHistoryRunCallback(index int) string {
	return callbackData{Action: actionHistory, Params: []string{historyRun, strconv.Itoa(index)}}.encode()
}

func buildHistoryClearCallback() string {
	return callbackData{Action: actionHistory, Params: []string{historyClear}}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}
