package main

import (
	"context"
	"fmt"
)

// PuzzleGenerator asks a completion model to build and then correct a
// word-search puzzle. It does not check the geometry it gets back.
type PuzzleGenerator struct {
	completer Completer
}

// NewPuzzleGenerator creates a generator backed by c.
func NewPuzzleGenerator(c Completer) *PuzzleGenerator {
	return &PuzzleGenerator{completer: c}
}

// Generate requests a puzzle built from the given news items.
func (g *PuzzleGenerator) Generate(ctx context.Context, items []FeedItem) (*Puzzle, error) {
	text, err := g.completer.Complete(ctx, generateMessages(items))
	if err != nil {
		return nil, fmt.Errorf("generate completion: %w", err)
	}
	p, err := ParsePuzzle(text)
	if err != nil {
		return nil, fmt.Errorf("parse generated puzzle: %w", err)
	}
	return p, nil
}

// Verify sends the puzzle back once with correction instructions and
// returns the model's corrected version.
func (g *PuzzleGenerator) Verify(ctx context.Context, p *Puzzle) (*Puzzle, error) {
	text, err := g.completer.Complete(ctx, verifyMessages(p))
	if err != nil {
		return nil, fmt.Errorf("verify completion: %w", err)
	}
	verified, err := ParsePuzzle(text)
	if err != nil {
		return nil, fmt.Errorf("parse verified puzzle: %w", err)
	}
	return verified, nil
}
