package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

const (
	defaultFeedURL = "https://www.nu.nl/rss/Algemeen"
	maxFeedItems   = 10
	feedUserAgent  = "wordfinder/1.0"
)

// FeedSource returns the news items a puzzle is built from.
type FeedSource interface {
	Fetch(ctx context.Context) ([]FeedItem, error)
}

// RSSFetcher reads an RSS, Atom or JSON feed from a fixed URL.
type RSSFetcher struct {
	url    string
	parser *gofeed.Parser
	logger *zap.Logger
}

// NewRSSFetcher creates a fetcher for url. A nil client uses
// http.DefaultClient.
func NewRSSFetcher(url string, client *http.Client, logger *zap.Logger) *RSSFetcher {
	if url == "" {
		url = defaultFeedURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	p := gofeed.NewParser()
	p.Client = client
	p.UserAgent = feedUserAgent
	return &RSSFetcher{url: url, parser: p, logger: logger}
}

// Fetch downloads the feed and returns its first maxFeedItems entries.
func (f *RSSFetcher) Fetch(ctx context.Context) ([]FeedItem, error) {
	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.url, err)
	}

	n := min(len(feed.Items), maxFeedItems)
	items := make([]FeedItem, 0, n)
	for _, it := range feed.Items[:n] {
		summary := it.Content
		if strings.TrimSpace(summary) == "" {
			summary = it.Description
		}
		items = append(items, FeedItem{
			Title:   strings.TrimSpace(it.Title),
			Content: plainText(summary),
			Link:    strings.TrimSpace(it.Link),
		})
	}

	f.logger.Debug("feed fetched",
		zap.String("url", f.url),
		zap.Int("available", len(feed.Items)),
		zap.Int("kept", len(items)))
	return items, nil
}

// plainText strips markup from an HTML fragment and collapses whitespace.
func plainText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
