package genre

import (
	"context"
	"strings"

	"djtagger/internal/classifier"
)

// Resolve runs the full source cascade for one track. Catalog genres win
// outright; otherwise Last.fm tags are merged with classifier predictions
// above keepProb; otherwise the classifier predictions stand alone. The
// returned source always reflects which tier answered, so the ML tier is
// reported even when it produced no genres.
func (r *Resolver) Resolve(ctx context.Context, track TrackIdentity, predictions []classifier.Prediction, useBeatport bool, keepProb float64) Resolution {
	var catalogGenres []string
	if useBeatport {
		artist := track.ArtistClean
		if artist == "" {
			artist = track.Artist
		}
		catalogGenres = r.ResolveBeatport(ctx, artist, track.Title)
	}
	if len(catalogGenres) > 0 {
		return Resolution{Genres: catalogGenres, Source: SourceBeatport}
	}

	tagGenres := r.ResolveLastfm(ctx, track.Artist, track.ArtistClean)

	var mlGenres []string
	for _, prediction := range predictions {
		if prediction.Probability >= keepProb {
			mlGenres = append(mlGenres, prediction.Label)
			if len(mlGenres) == maxGenresPerSource {
				break
			}
		}
	}

	if len(tagGenres) > 0 {
		merged := make([]string, 0, len(tagGenres)+len(mlGenres))
		merged = append(merged, tagGenres...)
		for _, genre := range mlGenres {
			if !containsFold(merged, genre) {
				merged = append(merged, genre)
			}
		}
		return Resolution{Genres: merged, Source: SourceLastfmML}
	}
	return Resolution{Genres: mlGenres, Source: SourceML}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
