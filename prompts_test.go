package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedContext(t *testing.T) {
	got := feedContext(sampleItems[:2])
	want := "Storm trekt over land: Code oranje in het noorden.: https://example.com/storm\n" +
		"Kabinet presenteert begroting: Meer geld voor onderwijs.: https://example.com/begroting"
	assert.Equal(t, want, got)
	assert.Empty(t, feedContext(nil))
}

func TestGenerateMessages(t *testing.T) {
	msgs := generateMessages(sampleItems)
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleSystem, msgs[0].Role)

	content := msgs[0].Content
	assert.Contains(t, content, "puzzle of 6 words")
	assert.Contains(t, content, feedContext(sampleItems))
	assert.Contains(t, content, "BETWEEN 0 AND 14")
	assert.Contains(t, content, "in Dutch")
	assert.NotContains(t, content, "%!", "format verbs must all be consumed")
}

func TestVerifyMessages(t *testing.T) {
	p, err := ParsePuzzle(twoWordPuzzle)
	require.NoError(t, err)

	msgs := verifyMessages(p)
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, twoWordPuzzle)
	assert.Contains(t, msgs[0].Content, "15x15")
	assert.False(t, strings.Contains(msgs[0].Content, "%!"))
}
