package validate

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func testService() *Service {
	return &Service{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func TestEmailValidation(t *testing.T) {
	t.Parallel()

	svc := testService()

	assert.True(t, svc.Email("john.doe@example.com"))
	assert.True(t, svc.Email("mikesmith@gmail.com"))

	assert.False(t, svc.Email(""))
	assert.False(t, svc.Email("not-an-email"))
	assert.False(t, svc.Email("john doe@example.com"))
}

func TestPhoneValidation(t *testing.T) {
	t.Parallel()

	svc := testService()

	assert.True(t, svc.Phone("+14155552671"))
	assert.True(t, svc.Phone("+44 20 7946 0958"))

	// Without a country code there is no region to validate against.
	assert.False(t, svc.Phone("12345"))
	assert.False(t, svc.Phone(""))
	// Right shape, nonexistent numbering plan range.
	assert.False(t, svc.Phone("+1 000 000 0000"))
}
