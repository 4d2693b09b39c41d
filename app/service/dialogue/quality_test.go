package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarrantsFollowupShortAnswer(t *testing.T) {
	t.Parallel()

	// Under ten words never triggers a follow-up, keywords or not.
	assert.False(t, warrantsFollowup("architecture design database api"))
	assert.False(t, warrantsFollowup("I don't know"))
}

func TestWarrantsFollowupKeywordCount(t *testing.T) {
	t.Parallel()

	// Long enough but only one distinct keyword.
	assert.False(t, warrantsFollowup(
		"I wrote a lot of code for the billing system and the database was quite big honestly"))

	// Two distinct keywords in a substantive answer.
	assert.True(t, warrantsFollowup(
		"I had to design the architecture of the service so it could handle peak traffic without downtime"))

	// Keyword matching is case-insensitive.
	assert.True(t, warrantsFollowup(
		"We chose a layered Architecture and had to Optimize the slow parts of the request pipeline"))
}

func TestWarrantsFollowupRepeatedKeyword(t *testing.T) {
	t.Parallel()

	// The same keyword repeated still counts once.
	assert.False(t, warrantsFollowup(
		"the database was slow so we moved the database to another database server last year again"))
}
