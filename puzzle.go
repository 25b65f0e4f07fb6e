package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// gridSize is the side of the square word-search grid. Valid coordinates
// are 0..gridSize-1.
const gridSize = 15

// FeedItem is a single news entry used as context for the puzzle.
type FeedItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Link    string `json:"link"`
}

// LetterPosition places one letter of a word on the grid.
type LetterPosition struct {
	Letter string `json:"letter"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// PuzzleWord is a word to find, with its hint and source article.
type PuzzleWord struct {
	Word      string           `json:"word"`
	Hint      string           `json:"hint"`
	Link      string           `json:"link"`
	Positions []LetterPosition `json:"positions"`
}

// Puzzle is the JSON object produced by the model. It keeps the raw bytes
// so that it is sent back to clients exactly as it was received.
type Puzzle struct {
	raw json.RawMessage
}

// ParsePuzzle checks that text is a JSON object and wraps it.
func ParsePuzzle(text string) (*Puzzle, error) {
	data := bytes.TrimSpace([]byte(text))
	if len(data) == 0 {
		return nil, errors.New("empty puzzle JSON")
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid puzzle JSON: %q", truncate(string(data), 200))
	}
	if data[0] != '{' {
		return nil, fmt.Errorf("puzzle JSON is not an object: %q", truncate(string(data), 200))
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("compact puzzle JSON: %w", err)
	}
	return &Puzzle{raw: buf.Bytes()}, nil
}

// MarshalJSON returns the puzzle as received from the model.
func (p *Puzzle) MarshalJSON() ([]byte, error) {
	if p == nil || len(p.raw) == 0 {
		return []byte("null"), nil
	}
	return p.raw, nil
}

// UnmarshalJSON stores any JSON object verbatim.
func (p *Puzzle) UnmarshalJSON(data []byte) error {
	parsed, err := ParsePuzzle(string(data))
	if err != nil {
		return err
	}
	p.raw = parsed.raw
	return nil
}

// String returns the compact JSON text of the puzzle.
func (p *Puzzle) String() string {
	return string(p.raw)
}

// Words decodes the "words" array. Fields of unexpected types make it fail;
// the puzzle itself stays usable.
func (p *Puzzle) Words() ([]PuzzleWord, error) {
	var doc struct {
		Words []PuzzleWord `json:"words"`
	}
	if err := json.Unmarshal(p.raw, &doc); err != nil {
		return nil, fmt.Errorf("decode puzzle words: %w", err)
	}
	return doc.Words, nil
}

// Problem describes a geometry rule a puzzle word breaks.
type Problem struct {
	Word   string `json:"word"`
	Reason string `json:"reason"`
}

func (p Problem) String() string {
	return p.Word + ": " + p.Reason
}

// Problems inspects the grid geometry of the puzzle. It reports out of
// bounds letters, cells claimed twice, words that are not a straight
// contiguous run, and words whose letters do not spell them. Nothing is
// modified.
func (p *Puzzle) Problems() ([]Problem, error) {
	words, err := p.Words()
	if err != nil {
		return nil, err
	}

	var problems []Problem
	type cell struct{ row, col int }
	owner := make(map[cell]string)

	for _, w := range words {
		if len(w.Positions) == 0 {
			problems = append(problems, Problem{w.Word, "no positions"})
			continue
		}

		spelled := ""
		for _, pos := range w.Positions {
			spelled += pos.Letter

			if pos.Row < 0 || pos.Row >= gridSize || pos.Col < 0 || pos.Col >= gridSize {
				problems = append(problems, Problem{w.Word, fmt.Sprintf("letter %q out of bounds at (%d,%d)", pos.Letter, pos.Row, pos.Col)})
				continue
			}

			c := cell{pos.Row, pos.Col}
			if prev, ok := owner[c]; ok {
				problems = append(problems, Problem{w.Word, fmt.Sprintf("cell (%d,%d) already used by %s", pos.Row, pos.Col, prev)})
				continue
			}
			owner[c] = w.Word
		}

		if w.Word != "" && utf8.RuneCountInString(w.Word) != len(w.Positions) {
			problems = append(problems, Problem{w.Word, fmt.Sprintf("%d letters but %d positions", utf8.RuneCountInString(w.Word), len(w.Positions))})
		} else if w.Word != "" && spelled != w.Word {
			problems = append(problems, Problem{w.Word, fmt.Sprintf("positions spell %q", spelled)})
		}

		if !isStraightRun(w.Positions) {
			problems = append(problems, Problem{w.Word, "letters are not a horizontal or vertical run"})
		}
	}
	return problems, nil
}

// isStraightRun reports whether the positions step by exactly one cell along
// a single row or a single column.
func isStraightRun(positions []LetterPosition) bool {
	if len(positions) < 2 {
		return true
	}
	dr := positions[1].Row - positions[0].Row
	dc := positions[1].Col - positions[0].Col
	if !(dr == 0 && (dc == 1 || dc == -1)) && !(dc == 0 && (dr == 1 || dr == -1)) {
		return false
	}
	for i := 2; i < len(positions); i++ {
		if positions[i].Row-positions[i-1].Row != dr || positions[i].Col-positions[i-1].Col != dc {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
