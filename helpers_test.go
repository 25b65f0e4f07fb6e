package main

import (
	"context"
	"errors"
	"strconv"
	"sync"
)

// stubFeed returns fixed items or an error.
type stubFeed struct {
	items []FeedItem
	err   error
	calls int
}

func (f *stubFeed) Fetch(context.Context) ([]FeedItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

// scriptedCompleter answers each call with the next scripted reply and
// records the messages it was sent.
type scriptedCompleter struct {
	mu       sync.Mutex
	replies  []string
	errs     []error
	received [][]Message
}

func (c *scriptedCompleter) Complete(_ context.Context, messages []Message) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := len(c.received)
	c.received = append(c.received, messages)
	if i < len(c.errs) && c.errs[i] != nil {
		return "", c.errs[i]
	}
	if i >= len(c.replies) {
		return "", errors.New("unexpected completion call")
	}
	return c.replies[i], nil
}

func (c *scriptedCompleter) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.received)
}

var sampleItems = []FeedItem{
	{Title: "Storm trekt over land", Content: "Code oranje in het noorden.", Link: "https://example.com/storm"},
	{Title: "Kabinet presenteert begroting", Content: "Meer geld voor onderwijs.", Link: "https://example.com/begroting"},
	{Title: "Ajax wint van PSV", Content: "Spannende topper in Amsterdam.", Link: "https://example.com/ajax"},
}

const twoWordPuzzle = `{"words":[` +
	`{"word":"STORM","hint":"Harde wind","link":"https://example.com/storm","positions":[` +
	`{"letter":"S","row":0,"col":0},{"letter":"T","row":0,"col":1},{"letter":"O","row":0,"col":2},` +
	`{"letter":"R","row":0,"col":3},{"letter":"M","row":0,"col":4}]},` +
	`{"word":"AJAX","hint":"Voetbalclub","link":"https://example.com/ajax","positions":[` +
	`{"letter":"A","row":2,"col":5},{"letter":"J","row":3,"col":5},{"letter":"A","row":4,"col":5},` +
	`{"letter":"X","row":5,"col":5}]}]}`

// sixWordPuzzle builds a valid puzzle with one horizontal word per row.
func sixWordPuzzle() string {
	words := []string{"STORM", "AJAX", "BEGROTING", "KABINET", "REGEN", "PSV"}
	out := `{"words":[`
	for i, w := range words {
		if i > 0 {
			out += ","
		}
		out += `{"word":"` + w + `","hint":"hint","link":"https://example.com","positions":[`
		for j, r := range w {
			if j > 0 {
				out += ","
			}
			out += `{"letter":"` + string(r) + `","row":` + strconv.Itoa(i*2) + `,"col":` + strconv.Itoa(j) + `}`
		}
		out += `]}`
	}
	return out + `]}`
}
