package validation

import (
	"strings"
	"testing"

	"art-atlas/internal/domain"
	"art-atlas/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestValidateItemID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateItemID("benin-bronze_plaque.1"))

	errs := v.ValidateItemID("  ")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, domain.CodeMissingField, errs[0].Code)
	}
	assert.Len(t, v.ValidateItemID("nok head"), 1)
	assert.Len(t, v.ValidateItemID(strings.Repeat("a", 101)), 1)
}

func TestValidateCheckAnswerRequest(t *testing.T) {
	v := NewValidator()
	session, question := util.NewULID(), util.NewULID()

	assert.Empty(t, v.ValidateCheckAnswerRequest(session, question, "Yoruba"))
	assert.Len(t, v.ValidateCheckAnswerRequest("", "", ""), 3)
	assert.Len(t, v.ValidateCheckAnswerRequest("abc", question, "x"), 1)
	assert.Len(t, v.ValidateCheckAnswerRequest(session, question, strings.Repeat("x", 2001)), 1)
}

func TestValidateSessionID(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateSessionID(""))
	assert.Empty(t, v.ValidateSessionID(util.NewULID()))
	assert.Len(t, v.ValidateSessionID("session-1"), 1)
}

func TestValidateFeaturedCount(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateFeaturedCount(6, 24))
	assert.Len(t, v.ValidateFeaturedCount(0, 24), 1)
	assert.Len(t, v.ValidateFeaturedCount(25, 24), 1)
}

func TestValidateWorksheetResponses(t *testing.T) {
	v := NewValidator()
	keys := []string{"firstImpression", "symbolicMeaning"}

	ok := domain.WorksheetResponses{FirstImpression: "calm, frontal"}
	assert.Empty(t, v.ValidateWorksheetResponses(ok, keys))

	long := domain.WorksheetResponses{SymbolicMeaning: strings.Repeat("x", MaxResponseLength+1)}
	errs := v.ValidateWorksheetResponses(long, keys)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "responses.symbolicMeaning", errs[0].Field)
	}
}
