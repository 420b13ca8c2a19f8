package beatport

import (
	"errors"
	"testing"
)

const samplePage = `<html><head><title>Search</title>` +
	`<script id="__NEXT_DATA__" type="application/json">` +
	`{"props":{"pageProps":{"dehydratedState":{"queries":[{"state":{"data":{"data":[` +
	`{"track_name":"Strobe","mix_name":"Original Mix",` +
	`"artists":[{"artist_name":"deadmau5"}],` +
	`"genre":[{"genre_name":"Progressive House"}]},` +
	`{"track_name":"Strobe","mix_name":"Club Edit",` +
	`"artists":[{"artist_name":"deadmau5"},{"artist_name":"Someone Else"}],` +
	`"genre":[{"genre_name":"Electro House"},{"genre_name":""}]}` +
	`]}}}]}}}}</script></head><body></body></html>`

func TestParseSearchPage(t *testing.T) {
	candidates, err := ParseSearchPage(samplePage)
	if err != nil {
		t.Fatalf("ParseSearchPage failed: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}

	first := candidates[0]
	if first.TrackName != "Strobe" || first.MixName != "Original Mix" {
		t.Errorf("unexpected first candidate: %+v", first)
	}
	if len(first.Artists) != 1 || first.Artists[0] != "deadmau5" {
		t.Errorf("unexpected artists: %v", first.Artists)
	}
	if len(first.Genres) != 1 || first.Genres[0] != "Progressive House" {
		t.Errorf("unexpected genres: %v", first.Genres)
	}

	// Empty genre names are dropped, result order is preserved.
	second := candidates[1]
	if second.MixName != "Club Edit" {
		t.Errorf("expected result order preserved, got %+v", second)
	}
	if len(second.Genres) != 1 || second.Genres[0] != "Electro House" {
		t.Errorf("expected empty genre name dropped, got %v", second.Genres)
	}
	if len(second.Artists) != 2 {
		t.Errorf("expected both artists, got %v", second.Artists)
	}
}

func TestParseSearchPageNoPayload(t *testing.T) {
	pages := []string{
		"",
		"<html><body>plain page</body></html>",
		`<script id="__NEXT_DATA__">{}</script>`,                       // no json type attribute
		`__NEXT_DATA__ type="application/json">{"props":{}}`,           // unterminated script
		`type="application/json">{"props":{}}</script>`,                // marker missing
	}
	for _, page := range pages {
		if _, err := ParseSearchPage(page); !errors.Is(err, ErrNoPayload) {
			t.Errorf("page %q: expected ErrNoPayload, got %v", page, err)
		}
	}
}

func TestParseSearchPageMalformedPayload(t *testing.T) {
	page := `__NEXT_DATA__ type="application/json">{"props":</script>`
	if _, err := ParseSearchPage(page); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestParseSearchPageSchemaDrift(t *testing.T) {
	pages := []string{
		`__NEXT_DATA__ type="application/json">{}</script>`,
		`__NEXT_DATA__ type="application/json">{"props":{"pageProps":{}}}</script>`,
		`__NEXT_DATA__ type="application/json">{"props":{"pageProps":{"dehydratedState":{"queries":[]}}}}</script>`,
		`__NEXT_DATA__ type="application/json">{"props":{"pageProps":{"dehydratedState":{"queries":[{"state":{}}]}}}}</script>`,
		`__NEXT_DATA__ type="application/json">{"props":{"pageProps":{"dehydratedState":{"queries":[{"state":{"data":{}}}]}}}}</script>`,
	}
	for _, page := range pages {
		if _, err := ParseSearchPage(page); !errors.Is(err, ErrSchemaDrift) {
			t.Errorf("page %q: expected ErrSchemaDrift, got %v", page, err)
		}
	}
}

func TestParseSearchPageEmptyResults(t *testing.T) {
	page := `__NEXT_DATA__ type="application/json">` +
		`{"props":{"pageProps":{"dehydratedState":{"queries":[{"state":{"data":{"data":[]}}}]}}}}</script>`
	candidates, err := ParseSearchPage(page)
	if err != nil {
		t.Fatalf("empty result list should parse cleanly, got %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}
