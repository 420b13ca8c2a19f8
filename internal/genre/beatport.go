package genre

import (
	"context"
	"errors"
	"sort"
	"strings"

	"djtagger/internal/api/beatport"
)

const beatportSchemaWarning = "Warning: Beatport page structure changed - scraping may be broken. Falling back to other sources."

// ResolveBeatport looks a track up on Beatport and returns up to three
// genre names for the best-scoring result, or nil when no trustworthy
// match exists. Outages and page-structure changes degrade to nil; the
// result, including a confirmed miss, is cached per artist and title.
func (r *Resolver) ResolveBeatport(ctx context.Context, artist, title string) []string {
	if r.catalog == nil {
		return nil
	}

	cacheKey := strings.ToLower(artist + "|" + title)
	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached
	}

	info := ExtractMixInfo(title)
	artistSearch := strings.TrimSpace(ampersandRe.ReplaceAllString(artist, " "))
	query := strings.TrimSpace(info.BaseTitle + " " + artistSearch)
	if info.MixAnnotation != "" && !IsGenericMix(info.MixAnnotation) {
		query += " " + NormalizeMix(info.MixAnnotation)
	}

	results, err := r.catalog.SearchTracks(ctx, query)
	if err != nil {
		// A throttled or cancelled request never reached the catalog, so
		// it must not become a cached miss.
		if errors.Is(err, beatport.ErrThrottled) || ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, beatport.ErrNoPayload) ||
			errors.Is(err, beatport.ErrMalformedPayload) ||
			errors.Is(err, beatport.ErrSchemaDrift) {
			r.warner.Warnf("beatport-schema", beatportSchemaWarning)
		}
		r.cache.Put(cacheKey, nil)
		return nil
	}
	if len(results) == 0 {
		r.cache.Put(cacheKey, nil)
		return nil
	}

	if len(results) > maxScoredCandidates {
		results = results[:maxScoredCandidates]
	}
	// Score against the raw artist: flattening ampersands is only for
	// search recall, and would break both containment against catalog
	// names that keep the "&" and the per-part split.
	artistLower := strings.ToLower(artist)
	baseTitleLower := strings.ToLower(info.BaseTitle)
	scores := make([]int, len(results))
	for i, candidate := range results {
		scores[i] = r.policy.Score(candidate, artistLower, baseTitleLower, info.MixAnnotation)
	}
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	best := order[0]

	// A low-confidence match for a named remix is worse than no match at
	// all, since it attaches the wrong remix's genre.
	if info.MixAnnotation != "" && !IsGenericMix(info.MixAnnotation) && scores[best] < r.policy.MinRemixScore {
		r.cache.Put(cacheKey, nil)
		return nil
	}

	genres := results[best].Genres
	if len(genres) > maxGenresPerSource {
		genres = genres[:maxGenresPerSource]
	}
	r.cache.Put(cacheKey, genres)
	return genres
}
