package cache

import "strings"

// WorksheetKeyPrefix namespaces worksheet records in the key-value store.
const WorksheetKeyPrefix = "analysis_"

// QuizSessionKeyPrefix namespaces quiz session logs.
const QuizSessionKeyPrefix = "quiz_session_"

// WorksheetKey is the storage key of an item's worksheet: analysis_<itemId>.
func WorksheetKey(itemID string) string {
	return WorksheetKeyPrefix + itemID
}

// QuizSessionKey is the storage key of a quiz session log.
func QuizSessionKey(sessionID string) string {
	return QuizSessionKeyPrefix + sessionID
}

// ItemIDFromKey reverses WorksheetKey. ok is false for keys outside the
// worksheet namespace.
func ItemIDFromKey(key string) (itemID string, ok bool) {
	itemID, ok = strings.CutPrefix(key, WorksheetKeyPrefix)
	if !ok || itemID == "" {
		return "", false
	}
	return itemID, true
}
