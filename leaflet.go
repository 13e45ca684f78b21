package prospekt

import "context"

// Unknown is the sentinel recorded for any field that could not be
// resolved from the page markup. It distinguishes "absent but handled"
// from a missing or null field: every Leaflet field is always present.
const Unknown = "Unknown"

// ParsedTimeLayout is the layout of Leaflet.ParsedTime.
const ParsedTimeLayout = "2006-01-02 15:04:05"

// Leaflet represents one listing tile from the catalog page.
// All fields are strings and never empty of meaning: unresolved fields
// carry Unknown, except Thumbnail whose default is "" (no image
// attribute found rather than field inapplicable). ValidFrom and
// ValidTo are ISO dates ("YYYY-MM-DD") or Unknown, independently.
// ParsedTime is shared across all leaflets of one extraction run.
type Leaflet struct {
	Title      string `json:"title"`
	Thumbnail  string `json:"thumbnail"`
	ShopName   string `json:"shop_name"`
	ValidFrom  string `json:"valid_from"`
	ValidTo    string `json:"valid_to"`
	ParsedTime string `json:"parsed_time"`
}

// Validate returns an error if the leaflet contains invalid fields.
// Field absence is represented by sentinels, so the only invalid state
// is a sentinel slot left uninitialized.
func (l *Leaflet) Validate() error {
	if l.Title == "" {
		return Errorf(EINVALID, "leaflet title required (use Unknown for unresolved)")
	}
	if l.ShopName == "" {
		return Errorf(EINVALID, "leaflet shop name required (use Unknown for unresolved)")
	}
	if l.ValidFrom == "" || l.ValidTo == "" {
		return Errorf(EINVALID, "leaflet validity dates required (use Unknown for unresolved)")
	}
	if l.ParsedTime == "" {
		return Errorf(EINVALID, "leaflet parsed time required")
	}
	return nil
}

// Extractor extracts leaflet records from a raw markup document.
type Extractor interface {
	// Extract locates each listing tile and resolves its display
	// fields. Tiles appear in the result in document order. A tile
	// with unresolvable fields still yields a fully-defaulted
	// leaflet; Extract fails only when the input is not parseable
	// as markup at all (EINVALID).
	Extract(html string) ([]*Leaflet, error)
}

// LeafletWriter persists an ordered sequence of leaflets.
type LeafletWriter interface {
	WriteLeaflets(ctx context.Context, leaflets []*Leaflet) error
}
