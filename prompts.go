package main

import (
	"fmt"
	"strings"
)

const (
	puzzleWordCount = 6
	hintLanguage    = "Dutch"
)

const generatePrompt = `Create a wordfinder puzzle of %[1]d words based on the following RSS feed titles and their contents:

%[2]s

Return a JSON object in this format:
{
  "words": [
    {
      "word": "APPLE",
      "hint": "A red round fruit",
      "link": "LINK_FROM_RSS",
      "positions": [
        {"letter": "A", "row": 1, "col": 1},
        {"letter": "P", "row": 1, "col": 2},
        {"letter": "P", "row": 1, "col": 3},
        {"letter": "L", "row": 1, "col": 4},
        {"letter": "E", "row": 1, "col": 5}
      ]
    },
    {
      "word": "ORANGE",
      "hint": "An orange colored round fruit",
      "link": "LINK_FROM_RSS",
      "positions": [
        {"letter": "O", "row": 2, "col": 1},
        {"letter": "R", "row": 3, "col": 1},
        {"letter": "A", "row": 4, "col": 1},
        {"letter": "N", "row": 5, "col": 1},
        {"letter": "G", "row": 6, "col": 1},
        {"letter": "E", "row": 7, "col": 1}
      ]
    }
  ]
}

IMPORTANT:

1. WORDS CAN NOT INTERSECT WITH EACH OTHER.
2. EVERY ROW AND COL MUST BE BETWEEN 0 AND %[3]d. %[4]d OR HIGHER IS NOT ALLOWED.
3. WHEN A WORD INTERSECTS, GENERATE ALL POSITIONS OF THAT WORD AGAIN. REPEAT UNTIL THERE ARE NO INTERSECTIONS AT ALL.
4. LETTERS HAVE TO BE ADJACENT. EITHER THE ROWS OR THE COLS OF A SINGLE WORD MUST MATCH.
5. THE LINK OF EACH WORD IS THE LINK OF THE ARTICLE IT COMES FROM.

Write the hints in %[5]s, based on the content of the news articles.`

const verifyPrompt = `This is a JSON which contains words and their corresponding letter positions for a wordfinder puzzle:

%[1]s

Check the JSON for duplicate letters. Go over ALL of the letter objects and check if ANY letter in the WHOLE JSON has a duplicate row/col combination.

For example, if the letter K from word 1 has row: 14, col: 5, then no letter from another word can also have row: 14 and col: 5.

WORDS CAN NOT INTERSECT WITH EACH OTHER.
Repeat until no duplicates remain.

Also check that no letter has a row or col of %[2]d or higher. Words must be horizontal or vertical (they either have matching rows or matching cols; use some variation to make the puzzle more random). If a word is too long and goes out of bounds (e.g. a 10 letter word that starts at col 12 while the grid is only %[2]dx%[2]d) find a new place for it. Every tile (e.g. row: 1, col: 1) can only hold 1 letter.

If you find any duplicate, generate new positions for all of the letters of THAT word.
Repeat until no duplicates remain.
When you are done, return the improved JSON in the same format.`

// feedContext flattens the items into "title: content: link" lines.
func feedContext(items []FeedItem) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s: %s: %s", it.Title, it.Content, it.Link))
	}
	return strings.Join(lines, "\n")
}

// generateMessages builds the request asking for a new puzzle.
func generateMessages(items []FeedItem) []Message {
	return []Message{{
		Role:    RoleSystem,
		Content: fmt.Sprintf(generatePrompt, puzzleWordCount, feedContext(items), gridSize-1, gridSize, hintLanguage),
	}}
}

// verifyMessages builds the request asking the model to correct a puzzle.
func verifyMessages(p *Puzzle) []Message {
	return []Message{{
		Role:    RoleSystem,
		Content: fmt.Sprintf(verifyPrompt, p.String(), gridSize),
	}}
}
