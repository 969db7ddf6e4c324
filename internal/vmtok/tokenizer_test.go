package vmtok

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizer_StripsCommentsAndBlankLines(t *testing.T) {
	src := strings.Join([]string{
		"// full line comment",
		"",
		"push constant 7 // inline comment",
		"   ",
		"add",
	}, "\n")

	lines, err := All(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "push constant 7", lines[0].Command)
	assert.Equal(t, 3, lines[0].Number)
	assert.Equal(t, "add", lines[1].Command)
	assert.Equal(t, 5, lines[1].Number)
}

func TestTokenizer_IdempotentOverTwoPasses(t *testing.T) {
	src := "push constant 1\n// comment\npop local 0\n"

	first, err := All(strings.NewReader(src))
	require.NoError(t, err)
	second, err := All(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTokenizer_EmptySource(t *testing.T) {
	lines, err := All(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}
