package beatport

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	nextDataMarker = "__NEXT_DATA__"
	payloadOpen    = `type="application/json">`
	payloadClose   = "</script>"
)

// Parse failures are typed so the resolver can warn once and degrade to a
// miss instead of surfacing scrape breakage to callers. The page structure
// is not under our control and changes without notice.
var (
	// ErrNoPayload means the search page carried no embedded JSON payload.
	ErrNoPayload = errors.New("beatport: no embedded JSON payload in search page")
	// ErrMalformedPayload means the embedded payload was not valid JSON.
	ErrMalformedPayload = errors.New("beatport: embedded JSON payload is malformed")
	// ErrSchemaDrift means the payload parsed but the expected navigation
	// path to the result list is gone.
	ErrSchemaDrift = errors.New("beatport: search page schema has changed")
)

// ParseSearchPage pulls the embedded __NEXT_DATA__ JSON out of a search
// results page and returns the candidate tracks in result order. An empty
// result list is a valid outcome, not an error.
func ParseSearchPage(body string) ([]Candidate, error) {
	payload, ok := extractPayload(body)
	if !ok {
		return nil, ErrNoPayload
	}

	var page nextData
	if err := json.Unmarshal([]byte(payload), &page); err != nil {
		return nil, ErrMalformedPayload
	}

	tracks, err := page.resultList()
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(tracks))
	for _, t := range tracks {
		c := Candidate{TrackName: t.TrackName, MixName: t.MixName}
		for _, a := range t.Artists {
			c.Artists = append(c.Artists, a.ArtistName)
		}
		for _, g := range t.Genre {
			if g.GenreName != "" {
				c.Genres = append(c.Genres, g.GenreName)
			}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// extractPayload locates the script block following the __NEXT_DATA__
// marker and returns its raw JSON body.
func extractPayload(body string) (string, bool) {
	at := strings.Index(body, nextDataMarker)
	if at < 0 {
		return "", false
	}
	rest := body[at:]

	open := strings.Index(rest, payloadOpen)
	if open < 0 {
		return "", false
	}
	rest = rest[open+len(payloadOpen):]

	end := strings.Index(rest, payloadClose)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// resultList walks the fixed schema path, validating every step before
// extraction.
func (d *nextData) resultList() ([]searchTrack, error) {
	if d.Props == nil || d.Props.PageProps == nil || d.Props.PageProps.DehydratedState == nil {
		return nil, ErrSchemaDrift
	}
	queries := d.Props.PageProps.DehydratedState.Queries
	if len(queries) == 0 || queries[0].State == nil || queries[0].State.Data == nil || queries[0].State.Data.Data == nil {
		return nil, ErrSchemaDrift
	}
	return *queries[0].State.Data.Data, nil
}
