// Package goquery provides a goquery-based implementation of
// prospekt.Extractor for the Prospektmaschine catalog listing markup.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ksiska/prospekt"
	"golang.org/x/net/html"
)

// Selectors for the listing tile and its display fields. Tile markup
// varies entry to entry (some tiles lack logos, some lack dates), so
// each field is resolved independently and falls back to its sentinel.
const (
	tileSelector         = ".brochure-thumb"
	titleSelector        = ".grid-item-content strong"
	thumbnailSelector    = ".img-container img"
	shopLogoSelector     = ".grid-logo img"
	validityHiddenSmall  = ".grid-item-content small.hidden-sm"
	validityVisibleSmall = ".grid-item-content small.visible-sm"
)

// shopLogoPrefix is the fixed literal the site prepends to logo alt text.
const shopLogoPrefix = "Logo "

// Ensure Extractor implements prospekt.Extractor at compile time.
var _ prospekt.Extractor = (*Extractor)(nil)

// Extractor extracts leaflet records from catalog listing HTML.
type Extractor struct {
	now func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithNow overrides the clock used for ParsedTime stamps.
// Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract selects all listing tiles and resolves one leaflet per tile,
// in document order. A tile with no resolvable fields still yields a
// fully-defaulted leaflet; the only failure mode is input that cannot
// be parsed as markup at all.
func (e *Extractor) Extract(rawHTML string) ([]*prospekt.Leaflet, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, prospekt.Errorf(prospekt.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	// One timestamp per run, shared across all entries.
	parsedTime := e.now().Format(prospekt.ParsedTimeLayout)

	var leaflets []*prospekt.Leaflet
	doc.Find(tileSelector).Each(func(_ int, tile *goquery.Selection) {
		validFrom, validTo := prospekt.ParseValidity(resolveValidityText(tile))
		leaflets = append(leaflets, &prospekt.Leaflet{
			Title:      resolveTitle(tile),
			Thumbnail:  resolveThumbnail(tile),
			ShopName:   resolveShopName(tile),
			ValidFrom:  validFrom,
			ValidTo:    validTo,
			ParsedTime: parsedTime,
		})
	})

	return leaflets, nil
}

// resolveTitle returns the first bold-emphasis text in the tile's
// content area.
func resolveTitle(tile *goquery.Selection) string {
	title := strings.TrimSpace(tile.Find(titleSelector).First().Text())
	if title == "" {
		return prospekt.Unknown
	}
	return title
}

// resolveThumbnail returns the tile image's direct source attribute,
// falling back to the lazy-load attribute when the direct one is absent
// or empty. An empty src carries no usable URL, so it is treated the
// same as an absent one.
func resolveThumbnail(tile *goquery.Selection) string {
	img := tile.Find(thumbnailSelector).First()
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := img.Attr("data-src"); ok {
		return src
	}
	return ""
}

// resolveShopName returns the logo image's alt text with the site's
// fixed "Logo " prefix stripped.
func resolveShopName(tile *goquery.Selection) string {
	alt, ok := tile.Find(shopLogoSelector).First().Attr("alt")
	if !ok {
		return prospekt.Unknown
	}
	name := strings.TrimPrefix(alt, shopLogoPrefix)
	if name == "" {
		return prospekt.Unknown
	}
	return name
}

// resolveValidityText returns the tile's raw validity text. The site
// renders the same text twice for different viewport sizes; the
// hidden-on-small variant is tried first, then the visible-on-small
// variant. Only one is expected to be present per tile.
func resolveValidityText(tile *goquery.Selection) string {
	for _, selector := range []string{validityHiddenSmall, validityVisibleSmall} {
		if node := tile.Find(selector).First(); node.Length() > 0 {
			return strings.TrimSpace(node.Text())
		}
	}
	return ""
}
