package genre

import (
	"regexp"
	"strings"

	"djtagger/internal/api/beatport"
)

// ScoringPolicy holds the weights used to rank catalog search results
// against a local file. Positive weights reward agreement, negative ones
// punish contradictions.
type ScoringPolicy struct {
	TitleExact   int
	TitlePartial int
	TitleMiss    int

	ArtistMatch     int
	ArtistPartMatch int

	MixExact          int
	MixOverlapBase    int
	MixOverlapPerWord int
	MixDisjoint       int
	MixGenericPenalty int
	NoMixGenericBonus int

	// MinRemixScore is the floor a best match must reach before it is
	// trusted for a named remix. Below it the whole lookup is rejected,
	// since a wrong remix match yields a wrong genre.
	MinRemixScore int
}

// DefaultScoringPolicy returns the standard weights.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		TitleExact:   10,
		TitlePartial: 3,
		TitleMiss:    -10,

		ArtistMatch:     5,
		ArtistPartMatch: 2,

		MixExact:          25,
		MixOverlapBase:    15,
		MixOverlapPerWord: 3,
		MixDisjoint:       -20,
		MixGenericPenalty: -15,
		NoMixGenericBonus: 3,

		MinRemixScore: 10,
	}
}

var artistSplitRe = regexp.MustCompile(`\s*[&,]\s*`)

// Score rates how well a catalog candidate matches the local file.
// artistLower and baseTitleLower are the file's artist and base title in
// lowercase; fileMix is the file's mix annotation verbatim.
func (p ScoringPolicy) Score(c beatport.Candidate, artistLower, baseTitleLower, fileMix string) int {
	score := 0

	trackNameLower := strings.ToLower(c.TrackName)
	if strings.Contains(trackNameLower, baseTitleLower) || strings.Contains(baseTitleLower, trackNameLower) {
		score += p.TitleExact
	} else {
		partial := false
		for _, word := range strings.Fields(baseTitleLower) {
			if len(word) > 2 && strings.Contains(trackNameLower, word) {
				partial = true
				break
			}
		}
		if partial {
			score += p.TitlePartial
		} else {
			score += p.TitleMiss
		}
	}

	for _, artist := range c.Artists {
		candidateLower := strings.ToLower(artist)
		if candidateLower == "" {
			continue
		}
		if strings.Contains(candidateLower, artistLower) || strings.Contains(artistLower, candidateLower) {
			score += p.ArtistMatch
			break
		}
	}
	// Multi-artist credits get a smaller per-name bonus so collabs still
	// rank when only one artist appears on the catalog side.
	if parts := artistSplitRe.Split(artistLower, -1); len(parts) > 1 {
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			for _, artist := range c.Artists {
				candidateLower := strings.ToLower(artist)
				if candidateLower == "" {
					continue
				}
				if strings.Contains(candidateLower, part) || strings.Contains(part, candidateLower) {
					score += p.ArtistPartMatch
					break
				}
			}
		}
	}

	if fileMix != "" {
		fileNorm := NormalizeMix(fileMix)
		candidateNorm := NormalizeMix(c.MixName)
		if fileNorm != "" && fileNorm == candidateNorm {
			score += p.MixExact
		} else if fileNorm != "" && candidateNorm != "" {
			fileTokens := RemixTokens(fileMix)
			candidateTokens := RemixTokens(c.MixName)
			if len(fileTokens) > 0 && len(candidateTokens) > 0 {
				overlap := 0
				for token := range fileTokens {
					if candidateTokens[token] {
						overlap++
					}
				}
				if overlap > 0 {
					score += p.MixOverlapBase + p.MixOverlapPerWord*overlap
				} else {
					score += p.MixDisjoint
				}
			}
		}
		if !IsGenericMix(fileMix) && IsGenericMix(c.MixName) {
			score += p.MixGenericPenalty
		}
	} else if IsGenericMix(c.MixName) {
		score += p.NoMixGenericBonus
	}

	return score
}
