package discogs

import "strconv"

// Refine applies the params that have no /database/search equivalent:
// price bounds and the max-releases cap. Records without price data are
// kept when a price bound is set, since Discogs only reports prices on
// a subset of search hits. The pagination block is left untouched so
// page navigation still reflects the server's view of the result set.
func Refine(resp *SearchResponse, params SearchParams) *SearchResponse {
	if resp == nil {
		return nil
	}

	minPrice, hasMin := parsePrice(params.MinPrice)
	maxPrice, hasMax := parsePrice(params.MaxPrice)
	maxReleases, hasCap := parseCap(params.MaxReleases)

	if !hasMin && !hasMax && !hasCap {
		return resp
	}

	kept := make([]Record, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.Price > 0 {
			if hasMin && r.Price < minPrice {
				continue
			}
			if hasMax && r.Price > maxPrice {
				continue
			}
		}
		kept = append(kept, r)
		if hasCap && len(kept) >= maxReleases {
			break
		}
	}

	out := *resp
	out.Results = kept
	return &out
}

func parsePrice(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func parseCap(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
