package discogs

import (
	"reflect"
	"testing"
)

func TestRecord_SplitsCombinedTitle(t *testing.T) {
	r := Record{Title: "Portishead - Dummy"}
	if got := r.Artist(); got != "Portishead" {
		t.Fatalf("Artist() = %q, want Portishead", got)
	}
	if got := r.ReleaseTitle(); got != "Dummy" {
		t.Fatalf("ReleaseTitle() = %q, want Dummy", got)
	}

	// No separator: both halves fall back to the whole title.
	r = Record{Title: "Untitled"}
	if r.Artist() != "Untitled" || r.ReleaseTitle() != "Untitled" {
		t.Fatalf("fallback split = %q / %q, want Untitled both", r.Artist(), r.ReleaseTitle())
	}
}

func TestRefine_NoLocalParamsReturnsSameResponse(t *testing.T) {
	resp := &SearchResponse{Results: []Record{{ID: 1}, {ID: 2}}}
	got := Refine(resp, SearchParams{Query: "x", Genre: "rock"})
	if got != resp {
		t.Fatal("Refine without local params should return the response unchanged")
	}
}

func TestRefine_PriceBoundsAndCap(t *testing.T) {
	resp := &SearchResponse{
		Pagination: Pagination{Page: 1, Pages: 2, Items: 80, PerPage: 50},
		Results: []Record{
			{ID: 1, Price: 5},
			{ID: 2, Price: 25},
			{ID: 3},          // no price data: kept despite bounds
			{ID: 4, Price: 12},
			{ID: 5, Price: 14},
		},
	}

	got := Refine(resp, SearchParams{MinPrice: "10", MaxPrice: "20", MaxReleases: "2"})

	wantIDs := []int64{3, 4}
	gotIDs := make([]int64, 0, len(got.Results))
	for _, r := range got.Results {
		gotIDs = append(gotIDs, r.ID)
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Fatalf("Refine kept %v, want %v", gotIDs, wantIDs)
	}

	// The server pagination block is preserved verbatim.
	if got.Pagination != resp.Pagination {
		t.Fatalf("Refine pagination = %#v, want %#v", got.Pagination, resp.Pagination)
	}

	// Input response is not mutated.
	if len(resp.Results) != 5 {
		t.Fatalf("input results mutated: %d entries", len(resp.Results))
	}
}

func TestRefine_IgnoresMalformedBounds(t *testing.T) {
	resp := &SearchResponse{Results: []Record{{ID: 1, Price: 5}}}
	got := Refine(resp, SearchParams{MinPrice: "lots", MaxReleases: "-3"})
	if len(got.Results) != 1 {
		t.Fatalf("Refine dropped records on malformed bounds: %#v", got.Results)
	}
}
