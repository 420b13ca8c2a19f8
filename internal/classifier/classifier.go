// Package classifier loads audio-analysis sidecar files produced by the
// offline ML classifier. Each audio file may have a neighbouring
// "<name>.analysis.json" holding genre predictions and mood features.
package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

const sidecarSuffix = ".analysis.json"

// Prediction is a single genre label with the classifier's confidence.
// The sidecar encodes predictions either as ["label", 0.42] pairs or as
// objects, depending on the classifier version that wrote it.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

func (p *Prediction) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var pair []json.RawMessage
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("prediction pair has %d elements, want 2", len(pair))
		}
		if err := json.Unmarshal(pair[0], &p.Label); err != nil {
			return fmt.Errorf("prediction label: %w", err)
		}
		if err := json.Unmarshal(pair[1], &p.Probability); err != nil {
			return fmt.Errorf("prediction probability: %w", err)
		}
		return nil
	}
	type plain Prediction
	return json.Unmarshal(data, (*plain)(p))
}

// Moods holds the classifier's four mood axes, each in [0, 1].
type Moods struct {
	Happy      float64 `json:"happy"`
	Sad        float64 `json:"sad"`
	Aggressive float64 `json:"aggressive"`
	Relaxed    float64 `json:"relaxed"`
}

// Analysis is the full sidecar payload for one audio file.
type Analysis struct {
	Genres    []Prediction `json:"genres"`
	Moods     Moods        `json:"moods"`
	Valence   float64      `json:"valence"`
	Energy    float64      `json:"energy"`
	RawEnergy float64      `json:"raw_energy"`
	Duration  float64      `json:"duration"`
}

// SidecarPath returns the analysis path for an audio file.
func SidecarPath(audioPath string) string {
	return audioPath + sidecarSuffix
}

// Load reads and decodes a sidecar file.
func Load(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis file: %w", err)
	}
	var analysis Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis file %s: %w", path, err)
	}
	return &analysis, nil
}

// LoadForAudio loads the sidecar belonging to an audio file.
func LoadForAudio(audioPath string) (*Analysis, error) {
	return Load(SidecarPath(audioPath))
}
