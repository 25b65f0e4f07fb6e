package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPipelineRun(t *testing.T) {
	feed := &stubFeed{items: sampleItems}
	llm := &scriptedCompleter{replies: []string{twoWordPuzzle, twoWordPuzzle}}
	p := NewPipeline(feed, llm, zap.NewNop())

	puzzle, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, twoWordPuzzle, puzzle.String())
	assert.Equal(t, 2, llm.calls())

	// The generation prompt carries every feed item.
	gen := llm.received[0][0]
	assert.Equal(t, RoleSystem, gen.Role)
	for _, it := range sampleItems {
		assert.Contains(t, gen.Content, it.Title+": "+it.Content+": "+it.Link)
	}

	// The verification prompt carries the generated puzzle.
	assert.Contains(t, llm.received[1][0].Content, puzzle.String())
}

func TestPipelineFetchError(t *testing.T) {
	feed := &stubFeed{err: errors.New("dial tcp: connection refused")}
	llm := &scriptedCompleter{}
	p := NewPipeline(feed, llm, zap.NewNop())

	puzzle, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, puzzle)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Unwrap().Error(), "connection refused")
	assert.Equal(t, msgFetchFailed, err.Error())
	assert.Zero(t, llm.calls(), "completion must not be called when the feed fails")
}

func TestPipelineGenerationNotJSON(t *testing.T) {
	feed := &stubFeed{items: sampleItems}
	llm := &scriptedCompleter{replies: []string{"Sure! Here is your puzzle.", twoWordPuzzle}}
	p := NewPipeline(feed, llm, zap.NewNop())

	_, err := p.Run(context.Background())
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 1, llm.calls(), "verification must not run")
}

func TestPipelineGenerationAPIError(t *testing.T) {
	feed := &stubFeed{items: sampleItems}
	llm := &scriptedCompleter{errs: []error{errors.New("429 too many requests")}}
	p := NewPipeline(feed, llm, zap.NewNop())

	_, err := p.Run(context.Background())
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, msgGenerateFailed, err.Error())
	assert.Equal(t, 1, llm.calls(), "no retry")
}

func TestPipelineVerificationNotJSON(t *testing.T) {
	feed := &stubFeed{items: sampleItems}
	llm := &scriptedCompleter{replies: []string{twoWordPuzzle, `{"words": [`}}
	p := NewPipeline(feed, llm, zap.NewNop())

	puzzle, err := p.Run(context.Background())
	assert.Nil(t, puzzle, "an unverified puzzle is never returned")
	var ve *VerificationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, msgVerifyFailed, err.Error())
	assert.Equal(t, 2, llm.calls())
}

func TestPipelineReturnsVerifierOutput(t *testing.T) {
	// The verifier's answer wins even when it differs from the draft.
	corrected := strings.Replace(twoWordPuzzle, `"row":2,"col":5`, `"row":1,"col":5`, 1)
	feed := &stubFeed{items: sampleItems}
	llm := &scriptedCompleter{replies: []string{twoWordPuzzle, corrected}}
	p := NewPipeline(feed, llm, zap.NewNop())

	puzzle, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, corrected, puzzle.String())
}

func TestStageString(t *testing.T) {
	cases := map[Stage]string{
		StageFetching:   "fetching",
		StageGenerating: "generating",
		StageVerifying:  "verifying",
		StageDone:       "done",
		StageFailed:     "failed",
		Stage(42):       "unknown",
	}
	for stage, want := range cases {
		assert.Equal(t, want, stage.String())
	}
}
