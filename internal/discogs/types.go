package discogs

import "strings"

// Pagination mirrors the pagination block Discogs attaches to every
// search response.
type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Items   int `json:"items"`
}

// SearchResponse mirrors the payload returned by /database/search.
type SearchResponse struct {
	Pagination Pagination `json:"pagination"`
	Results    []Record   `json:"results"`
}

// Record describes one search hit in transport-friendly form. Discogs
// packs artist and release title into a single "Artist - Title" string;
// use Artist and ReleaseTitle to split them.
type Record struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Year        string    `json:"year"`
	Genres      []string  `json:"genre"`
	Styles      []string  `json:"style"`
	Formats     []string  `json:"format"`
	Labels      []string  `json:"label"`
	Country     string    `json:"country"`
	CoverImage  string    `json:"cover_image"`
	Thumb       string    `json:"thumb"`
	ResourceURL string    `json:"resource_url"`
	Price       float64   `json:"lowest_price,omitempty"`
	Community   Community `json:"community"`
}

// Community reports how many collectors want or have a release.
type Community struct {
	Want int `json:"want"`
	Have int `json:"have"`
}

// Artist returns the artist half of the combined title, or the whole
// title when Discogs did not use the combined form.
func (r Record) Artist() string {
	artist, _, ok := strings.Cut(r.Title, " - ")
	if !ok {
		return strings.TrimSpace(r.Title)
	}
	return strings.TrimSpace(artist)
}

// ReleaseTitle returns the release half of the combined title.
func (r Record) ReleaseTitle() string {
	_, title, ok := strings.Cut(r.Title, " - ")
	if !ok {
		return strings.TrimSpace(r.Title)
	}
	return strings.TrimSpace(title)
}

// Label returns the first label, which is all the list view shows.
func (r Record) Label() string {
	if len(r.Labels) == 0 {
		return ""
	}
	return r.Labels[0]
}

// Release mirrors the payload returned by /releases/{id}. Only the
// fields the detail view renders are modeled.
type Release struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Artists     []ArtistRef    `json:"artists"`
	Year        int            `json:"year"`
	Genres      []string       `json:"genres"`
	Styles      []string       `json:"styles"`
	Labels      []LabelRef     `json:"labels"`
	Country     string         `json:"country"`
	Formats     []Format       `json:"formats"`
	Tracklist   []Track        `json:"tracklist"`
	Community   Community      `json:"community"`
	LowestPrice float64        `json:"lowest_price"`
	NumForSale  int            `json:"num_for_sale"`
	URI         string         `json:"uri"`
	Notes       string         `json:"notes"`
	Images      []ReleaseImage `json:"images"`
}

// ArtistRef is a credited artist on a release.
type ArtistRef struct {
	Name string `json:"name"`
}

// LabelRef is a label credit on a release.
type LabelRef struct {
	Name  string `json:"name"`
	CatNo string `json:"catno"`
}

// Format describes one physical format entry.
type Format struct {
	Name         string   `json:"name"`
	Qty          string   `json:"qty"`
	Descriptions []string `json:"descriptions"`
}

// Track is a single tracklist entry.
type Track struct {
	Position string `json:"position"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// ReleaseImage is one image attached to a release.
type ReleaseImage struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// ArtistLine joins the credited artists for display.
func (r Release) ArtistLine() string {
	names := make([]string, 0, len(r.Artists))
	for _, a := range r.Artists {
		if name := strings.TrimSpace(a.Name); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}
