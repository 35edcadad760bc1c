package feed

import (
	"bytes"
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Placeholder title for entries that carry none.
const untitledPlaceholder = "(bez titulku)"

const idLength = 12

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses raw feed data and normalizes every entry into an Article
// attributed to the given source name.
func (p *Parser) Run(data []byte, sourceName string) ([]Article, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	articles := make([]Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		articles = append(articles, p.normalizeItem(item, sourceName))
	}

	return articles, nil
}

// normalizeItem converts one gofeed.Item into an Article. It never fails;
// missing fields degrade to placeholders, empty strings or a zero sort key.
func (p *Parser) normalizeItem(item *gofeed.Item, sourceName string) Article {
	article := Article{
		ID:      p.entryID(item),
		Title:   strings.TrimSpace(cmp.Or(item.Title, untitledPlaceholder)),
		Link:    item.Link,
		Summary: item.Description,
		Source:  sourceName,
	}

	if published := p.publishedAt(item); published != nil {
		utc := published.UTC()
		article.Published = &utc
		article.SortKey = utc.Unix()
	}

	return article
}

// publishedAt picks the entry's publish time, falling back to its update
// time. Undated entries return nil and sort after all dated ones.
func (p *Parser) publishedAt(item *gofeed.Item) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed
	}
	return nil
}

// entryID derives a stable fingerprint from the entry's link, falling back
// to its title. Identical fallback input yields identical IDs; that is a
// known limitation, not a bug.
func (p *Parser) entryID(item *gofeed.Item) string {
	raw := cmp.Or(item.Link, item.Title)
	hash := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(hash[:])[:idLength]
}
