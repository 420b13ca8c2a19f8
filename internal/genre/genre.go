// Package genre resolves track genres by cascading three sources: the
// Beatport catalog, Last.fm crowd tags, and the local audio classifier.
// The first source with an answer wins, with Last.fm results enriched by
// classifier predictions when the catalog had nothing.
package genre

import (
	"context"

	"djtagger/internal/api/beatport"
	"djtagger/internal/api/lastfm"
	"djtagger/internal/shared"
)

// Source identifies where a resolution's genres came from.
type Source string

const (
	SourceBeatport Source = "beatport"
	SourceLastfmML Source = "lastfm+ml"
	SourceML       Source = "ml"
)

const (
	defaultCacheSize    = 500
	defaultMinTagCount  = 20
	maxScoredCandidates = 10
	maxGenresPerSource  = 3
)

// TrackIdentity is the file-derived identity of a track. ArtistClean is
// the artist with any trailing country suffix stripped; it is preferred
// for lookups when present.
type TrackIdentity struct {
	Artist      string
	ArtistClean string
	Title       string
}

// Resolution is the outcome of a genre lookup.
type Resolution struct {
	Genres []string
	Source Source
}

// CatalogSearcher searches a track catalog. Satisfied by beatport.Client.
type CatalogSearcher interface {
	SearchTracks(ctx context.Context, query string) ([]beatport.Candidate, error)
}

// TagLookup fetches crowd tags for an artist. Satisfied by lastfm.Client.
type TagLookup interface {
	Enabled() bool
	TopTags(ctx context.Context, artist string) ([]lastfm.Tag, error)
}

// Options tunes a Resolver. Zero values fall back to the defaults.
type Options struct {
	CacheSize      int
	LastfmMinCount int
	Policy         ScoringPolicy
	Warner         *shared.WarnOnce
}

// Resolver runs the source cascade for individual tracks.
type Resolver struct {
	catalog     CatalogSearcher
	tags        TagLookup
	cache       *BoundedCache[[]string]
	policy      ScoringPolicy
	warner      *shared.WarnOnce
	minTagCount int
}

// NewResolver builds a Resolver over the given sources. Either source may
// be nil, in which case its tier simply never produces genres.
func NewResolver(catalog CatalogSearcher, tags TagLookup, opts Options) *Resolver {
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	if opts.LastfmMinCount <= 0 {
		opts.LastfmMinCount = defaultMinTagCount
	}
	if opts.Policy == (ScoringPolicy{}) {
		opts.Policy = DefaultScoringPolicy()
	}
	if opts.Warner == nil {
		opts.Warner = shared.NewWarnOnce()
	}
	return &Resolver{
		catalog:     catalog,
		tags:        tags,
		cache:       NewBoundedCache[[]string](opts.CacheSize),
		policy:      opts.Policy,
		warner:      opts.Warner,
		minTagCount: opts.LastfmMinCount,
	}
}
