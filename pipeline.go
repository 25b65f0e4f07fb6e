package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Stage is a step of a puzzle request.
type Stage int

const (
	StageFetching Stage = iota
	StageGenerating
	StageVerifying
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageFetching:
		return "fetching"
	case StageGenerating:
		return "generating"
	case StageVerifying:
		return "verifying"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Pipeline runs fetch, generate and verify in order for one request.
type Pipeline struct {
	feed      FeedSource
	generator *PuzzleGenerator
	logger    *zap.Logger
}

// NewPipeline wires the feed and the completion model together.
func NewPipeline(feed FeedSource, completer Completer, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		feed:      feed,
		generator: NewPuzzleGenerator(completer),
		logger:    logger,
	}
}

// Run produces a verified puzzle. On failure it returns a *FetchError,
// *GenerationError or *VerificationError and no puzzle.
func (p *Pipeline) Run(ctx context.Context) (*Puzzle, error) {
	log := loggerFrom(ctx, p.logger)
	stage := StageFetching
	enter := func(next Stage) {
		log.Debug("stage transition", zap.Stringer("from", stage), zap.Stringer("to", next))
		stage = next
	}
	fail := func(stageErr error) error {
		log.Error("puzzle stage failed",
			zap.Stringer("stage", stage),
			zap.NamedError("cause", errors.Unwrap(stageErr)))
		enter(StageFailed)
		return stageErr
	}

	items, err := p.feed.Fetch(ctx)
	if err != nil {
		return nil, fail(&FetchError{Err: err})
	}

	enter(StageGenerating)
	draft, err := p.generator.Generate(ctx, items)
	if err != nil {
		return nil, fail(&GenerationError{Err: err})
	}
	log.Debug("puzzle generated", zap.String("puzzle", draft.String()))

	enter(StageVerifying)
	verified, err := p.generator.Verify(ctx, draft)
	if err != nil {
		return nil, fail(&VerificationError{Err: err})
	}

	enter(StageDone)
	inspect(log, verified)
	return verified, nil
}

// inspect logs geometry problems the model left in the puzzle.
func inspect(log *zap.Logger, puzzle *Puzzle) {
	problems, err := puzzle.Problems()
	if err != nil {
		log.Warn("puzzle does not match the word schema", zap.Error(err))
		return
	}
	if len(problems) > 0 {
		log.Warn("puzzle has geometry problems",
			zap.Int("count", len(problems)),
			zap.Stringers("problems", problems))
	}
}
