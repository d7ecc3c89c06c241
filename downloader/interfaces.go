package downloader

import (
	"context"
	"net/http"
	"time"
)

// Doer performs a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// SoundFetcher downloads every note sample in order.
type SoundFetcher interface {
	// Run fetches all notes sequentially. It returns an error only for
	// faults that end the run: transport failures and filesystem errors.
	Run(ctx context.Context) (*Summary, error)
}

// Result describes one attempted note download.
type Result struct {
	Note       Note          `json:"note"`
	URL        string        `json:"url"`
	StatusCode int           `json:"status_code"`
	Path       string        `json:"path,omitempty"`
	Bytes      int64         `json:"bytes"`
	Duration   time.Duration `json:"duration"` // decoded audio length, zero if unknown
}

// Saved reports whether the note's file was written.
func (r Result) Saved() bool {
	return r.Path != ""
}

// Summary collects the results of a run in attempt order.
type Summary struct {
	TargetDir string   `json:"target_dir"`
	Results   []Result `json:"results"`
}

// Saved returns the number of notes written to disk.
func (s *Summary) Saved() int {
	n := 0
	for _, r := range s.Results {
		if r.Saved() {
			n++
		}
	}
	return n
}

// Failed returns the notes that received a non-200 response.
func (s *Summary) Failed() []Note {
	var failed []Note
	for _, r := range s.Results {
		if !r.Saved() {
			failed = append(failed, r.Note)
		}
	}
	return failed
}
