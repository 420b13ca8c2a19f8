package genre

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const lastfmKeyWarning = "Warning: LASTFM_API_KEY not set - Last.fm lookups disabled. Set the env var for better genre results."

// ResolveLastfm returns up to three title-cased Last.fm tags for the
// artist, keeping only tags whose usage count clears the popularity
// threshold. The cleaned artist name is tried before the raw one.
func (r *Resolver) ResolveLastfm(ctx context.Context, artist, artistClean string) []string {
	if r.tags == nil || !r.tags.Enabled() {
		r.warner.Warnf("lastfm-key", lastfmKeyWarning)
		return nil
	}

	// Title caser is not safe for concurrent use, so build one per call.
	caser := cases.Title(language.English)

	tried := ""
	for _, name := range []string{artistClean, artist} {
		if name == "" || name == tried {
			continue
		}
		tried = name
		tags, err := r.tags.TopTags(ctx, name)
		if err != nil {
			continue
		}
		var genres []string
		for _, tag := range tags {
			if tag.Count <= r.minTagCount {
				continue
			}
			genres = append(genres, caser.String(tag.Name))
			if len(genres) == maxGenresPerSource {
				break
			}
		}
		if len(genres) > 0 {
			return genres
		}
	}
	return nil
}
