package genre

import (
	"testing"

	"djtagger/internal/api/beatport"
)

func TestScoreCanonicalMatch(t *testing.T) {
	policy := DefaultScoringPolicy()
	candidate := beatport.Candidate{
		TrackName: "Strobe",
		MixName:   "Original Mix",
		Artists:   []string{"Deadmau5"},
		Genres:    []string{"Progressive House"},
	}
	// Title contains +10, artist contains +5, generic candidate mix with
	// no mix requested +3.
	if got := policy.Score(candidate, "deadmau5", "strobe", ""); got != 18 {
		t.Errorf("score = %d, want 18", got)
	}
}

func TestScoreExactRemix(t *testing.T) {
	policy := DefaultScoringPolicy()
	candidate := beatport.Candidate{
		TrackName: "Opus",
		MixName:   "Eric Prydz Remix",
		Artists:   []string{"Eric Prydz"},
	}
	// Title +10, artist +5, exact remix +25.
	if got := policy.Score(candidate, "eric prydz", "opus", "Eric Prydz Remix"); got != 40 {
		t.Errorf("score = %d, want 40", got)
	}
}

func TestScoreSignals(t *testing.T) {
	policy := DefaultScoringPolicy()
	tests := []struct {
		name      string
		candidate beatport.Candidate
		artist    string
		baseTitle string
		fileMix   string
		want      int
	}{
		{
			name:      "title word overlap only",
			candidate: beatport.Candidate{TrackName: "Strobe Lights", MixName: "Club Edit", Artists: []string{"Somebody Else"}},
			artist:    "deadmau5",
			baseTitle: "strobe anthem",
			fileMix:   "",
			want:      3,
		},
		{
			name:      "title miss",
			candidate: beatport.Candidate{TrackName: "Ghosts n Stuff", MixName: "Club Edit", Artists: []string{"Deadmau5"}},
			artist:    "deadmau5",
			baseTitle: "strobe",
			fileMix:   "",
			want:      -5,
		},
		{
			name: "multi artist per part bonus",
			candidate: beatport.Candidate{
				TrackName: "Sun and Moon",
				MixName:   "Original Mix",
				Artists:   []string{"Above & Beyond", "Richard Bedford"},
			},
			artist:    "above & beyond, richard bedford",
			baseTitle: "sun and moon",
			fileMix:   "",
			// Title +10, contains-match +5, three delimited parts +2 each,
			// generic +3.
			want: 24,
		},
		{
			name: "candidate contained in a delimited part",
			candidate: beatport.Candidate{
				TrackName: "Sirens of the Sea",
				MixName:   "Original Mix",
				Artists:   []string{"OceanLab"},
			},
			artist:    "above & beyond pres. oceanlab",
			baseTitle: "sirens of the sea",
			fileMix:   "",
			// Title +10, contains-match +5, the "beyond pres. oceanlab"
			// part contains the candidate name +2, generic +3.
			want: 20,
		},
		{
			name: "remix token overlap",
			candidate: beatport.Candidate{
				TrackName: "Opus",
				MixName:   "Four Tet VIP Remix",
				Artists:   []string{"Eric Prydz"},
			},
			artist:    "eric prydz",
			baseTitle: "opus",
			fileMix:   "Four Tet Remix",
			// Title +10, artist +5, overlap 15 + 3*2 tokens.
			want: 36,
		},
		{
			name: "wrong remix penalty",
			candidate: beatport.Candidate{
				TrackName: "Opus",
				MixName:   "Deadmau5 Remix",
				Artists:   []string{"Eric Prydz"},
			},
			artist:    "eric prydz",
			baseTitle: "opus",
			fileMix:   "Four Tet Remix",
			// Title +10, artist +5, disjoint tokens -20.
			want: -5,
		},
		{
			name: "generic fallback penalty for specific remix",
			candidate: beatport.Candidate{
				TrackName: "Opus",
				MixName:   "Original Mix",
				Artists:   []string{"Eric Prydz"},
			},
			artist:    "eric prydz",
			baseTitle: "opus",
			fileMix:   "Four Tet Remix",
			// Title +10, artist +5, generic candidate for a named remix -15.
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Score(tt.candidate, tt.artist, tt.baseTitle, tt.fileMix); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	policy := DefaultScoringPolicy()
	candidate := beatport.Candidate{
		TrackName: "Strobe",
		MixName:   "Club Edit",
		Artists:   []string{"Deadmau5"},
	}
	first := policy.Score(candidate, "deadmau5", "strobe", "Club Edit")
	for i := 0; i < 10; i++ {
		if got := policy.Score(candidate, "deadmau5", "strobe", "Club Edit"); got != first {
			t.Fatalf("score changed between calls: %d then %d", first, got)
		}
	}
}
