package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTechStackSeparators(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Python", "Javascript", "React"}, ParseTechStack("Python, JavaScript, React"))
	assert.Equal(t, []string{"Java", "Spring"}, ParseTechStack("Java and Spring"))
	assert.Equal(t, []string{"C++", "C#"}, ParseTechStack("C++ / C#"))
	assert.Equal(t, []string{"Go", "Rust"}, ParseTechStack("  Go; Rust  "))
	assert.Equal(t, []string{"Html", "CSS"}, ParseTechStack("html & CSS"))
}

func TestParseTechStackNormalization(t *testing.T) {
	t.Parallel()

	// Acronyms keep their casing, dotted names capitalize the first segment.
	assert.Equal(t, []string{"SQL"}, ParseTechStack("SQL"))
	assert.Equal(t, []string{"Node.js"}, ParseTechStack("node.js"))
	assert.Equal(t, []string{"Node.js"}, ParseTechStack("NODE.js"))
	assert.Equal(t, []string{"Python"}, ParseTechStack("pYTHON"))
}

func TestParseTechStackDeduplication(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Python", "Java"}, ParseTechStack("python, Java, python, java"))

	// An all-caps duplicate is a different normalized token, it survives.
	assert.Equal(t, []string{"Python", "PYTHON"}, ParseTechStack("python, PYTHON"))
}

func TestParseTechStackEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseTechStack(""))
	assert.Empty(t, ParseTechStack("  ,, and // "))
	assert.Empty(t, ParseTechStack(" .;:- "))
}

func TestParseTechStackTrimsPunctuation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Python", "Postgresql"}, ParseTechStack(" python., postgresql;- "))
}
