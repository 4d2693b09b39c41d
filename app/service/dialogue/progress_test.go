package dialogue

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionStartsAtZero(t *testing.T) {
	t.Parallel()

	session := newTestSession(&stubGenerator{}, allValidStub(), &stubStore{})

	assert.Zero(t, session.Snapshot().CompletionPercentage)
}

func TestCompletionProfilePhaseBounds(t *testing.T) {
	t.Parallel()

	session := newTestSession(&stubGenerator{response: "Question?"}, allValidStub(), &stubStore{})
	ctx := context.Background()

	for _, input := range []string{
		"hello", "John Doe", "+1234567890", "john.doe@example.com",
		"New York, USA", "5", "Backend Developer",
	} {
		session.Handle(ctx, input)

		percentage := session.Snapshot().CompletionPercentage
		assert.GreaterOrEqual(t, percentage, 0)
		assert.LessOrEqual(t, percentage, 60)
	}
}

func TestCompletionMonotonicAcrossFullSession(t *testing.T) {
	t.Parallel()

	generator := &stubGenerator{
		response: "Question?",
		answers:  map[string]string{"skipping": "no"},
	}
	session := newTestSession(generator, allValidStub(), &stubStore{})
	ctx := context.Background()

	inputs := []string{
		"hello", "John Doe", "+1234567890", "john.doe@example.com",
		"New York, USA", "5", "Backend Developer", "Python, SQL",
	}
	for i := 0; i < 10; i++ {
		inputs = append(inputs, fmt.Sprintf("answer %d", i))
	}

	previous := session.Snapshot().CompletionPercentage
	for _, input := range inputs {
		session.Handle(ctx, input)

		current := session.Snapshot().CompletionPercentage
		assert.GreaterOrEqual(t, current, previous, "completion dropped after %q", input)
		previous = current
	}

	require.Equal(t, StateCompleted, session.State())
	assert.Equal(t, 100, session.Snapshot().CompletionPercentage)
}

func TestCompletionTechnicalPhaseScaling(t *testing.T) {
	t.Parallel()

	generator := &stubGenerator{
		response: "Question?",
		answers:  map[string]string{"skipping": "no"},
	}
	session := screeningSession(t, generator, &stubStore{}, "Python, Java")
	ctx := context.Background()

	// Base 60 right after entering the screening.
	assert.Equal(t, 60, session.Snapshot().CompletionPercentage)

	// Each of 10 questions is worth 4 points.
	session.Handle(ctx, "answer one")
	assert.Equal(t, 64, session.Snapshot().CompletionPercentage)

	session.Handle(ctx, "answer two")
	assert.Equal(t, 68, session.Snapshot().CompletionPercentage)
}

func TestExperienceLevelBands(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Junior", experienceLevel(0))
	assert.Equal(t, "Junior", experienceLevel(2))
	assert.Equal(t, "Mid-Level", experienceLevel(5))
	assert.Equal(t, "Senior", experienceLevel(10))
	assert.Equal(t, "Principal/Staff", experienceLevel(11))
}

func TestTechnicalProgressReport(t *testing.T) {
	t.Parallel()

	generator := &stubGenerator{
		response: "Question?",
		answers:  map[string]string{"skipping": "no"},
	}
	session := screeningSession(t, generator, &stubStore{}, "Python, Java")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		session.Handle(ctx, fmt.Sprintf("answer %d", i))
	}

	progress := session.TechnicalProgress()
	assert.Equal(t, []string{"Python", "Java"}, progress.Technologies)
	assert.Equal(t, "Java", progress.CurrentTech)
	assert.True(t, progress.Progress["Python"].IsCompleted)
	assert.True(t, progress.Progress["Java"].IsCurrent)
	assert.Zero(t, progress.Progress["Java"].Completed)
}

func TestTechnicalProgressEmptyBeforeScreening(t *testing.T) {
	t.Parallel()

	session := newTestSession(&stubGenerator{}, allValidStub(), &stubStore{})

	progress := session.TechnicalProgress()
	assert.Empty(t, progress.Technologies)
	assert.Empty(t, progress.CurrentTech)
}
