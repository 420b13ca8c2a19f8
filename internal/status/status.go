// Package status maintains a JSON status file so long runs can be
// watched from another terminal. Writes are best effort and never fail
// the run.
package status

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

const timeFormat = "2006-01-02 15:04:05"

// Status is the snapshot written to the status file.
type Status struct {
	State            string         `json:"state"`
	Mode             string         `json:"mode"`
	Version          string         `json:"version"`
	Total            int            `json:"total"`
	ToProcess        int            `json:"to_process"`
	Skipped          int            `json:"skipped"`
	Processed        int            `json:"processed"`
	Failed           int            `json:"failed"`
	Current          string         `json:"current"`
	CurrentFolder    string         `json:"current_folder"`
	GenreSources     map[string]int `json:"genre_sources"`
	Started          string         `json:"started"`
	Finished         string         `json:"finished,omitempty"`
	AvgSeconds       float64        `json:"avg_seconds"`
	EtaHours         float64        `json:"eta_hours"`
	LastTrackSeconds float64        `json:"last_track_seconds"`
	ElapsedHours     float64        `json:"elapsed_hours"`
	Updated          string         `json:"updated"`
}

// Reporter serialises status updates to a file.
type Reporter struct {
	mu     sync.Mutex
	path   string
	status Status
}

// NewReporter creates a reporter writing to path. An empty path disables
// reporting entirely.
func NewReporter(path string) *Reporter {
	return &Reporter{
		path: path,
		status: Status{
			State:        "starting",
			GenreSources: make(map[string]int),
			Started:      time.Now().Format(timeFormat),
		},
	}
}

// Update applies fn to the status under lock and writes the result out.
func (r *Reporter) Update(fn func(*Status)) {
	if r == nil || r.path == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.status)
	r.status.Updated = time.Now().Format(timeFormat)
	data, err := json.MarshalIndent(&r.status, "", "  ")
	if err != nil {
		return
	}
	// Ignore write failures; the status file is purely informational.
	_ = os.WriteFile(r.path, data, 0644)
}
