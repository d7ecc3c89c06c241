package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	successLine = color.New(color.FgGreen)
	failureLine = color.New(color.FgRed)
)

// SoundFetcherImpl implements the SoundFetcher interface
type SoundFetcherImpl struct {
	client    Doer
	baseURL   string
	targetDir string
	notes     []Note

	out         io.Writer // console lines: "Downloading ...", success/failure
	progressOut io.Writer // progress bars; nil disables them
	logger      *zap.Logger
}

// Option configures a SoundFetcherImpl.
type Option func(*SoundFetcherImpl)

// WithClient sets the HTTP client. The default is a zero http.Client,
// which has no timeout.
func WithClient(client Doer) Option {
	return func(sf *SoundFetcherImpl) { sf.client = client }
}

// WithBaseURL replaces the remote sample directory.
func WithBaseURL(baseURL string) Option {
	return func(sf *SoundFetcherImpl) { sf.baseURL = baseURL }
}

// WithTargetDir sets where samples are written.
func WithTargetDir(dir string) Option {
	return func(sf *SoundFetcherImpl) { sf.targetDir = dir }
}

// WithOutput sets the writer for the per-note console lines.
func WithOutput(w io.Writer) Option {
	return func(sf *SoundFetcherImpl) { sf.out = w }
}

// WithProgress renders a progress bar per body on w.
func WithProgress(w io.Writer) Option {
	return func(sf *SoundFetcherImpl) { sf.progressOut = w }
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(sf *SoundFetcherImpl) { sf.logger = logger }
}

// NewSoundFetcher creates a fetcher for the standard tuning notes.
func NewSoundFetcher(opts ...Option) *SoundFetcherImpl {
	sf := &SoundFetcherImpl{
		client:    &http.Client{},
		baseURL:   DefaultBaseURL,
		targetDir: DefaultTargetDir,
		notes:     Notes(),
		out:       os.Stdout,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(sf)
	}
	return sf
}

// Run implements the SoundFetcher interface. On a fatal error the returned
// summary holds the notes attempted before the failure.
func (sf *SoundFetcherImpl) Run(ctx context.Context) (*Summary, error) {
	if err := os.MkdirAll(sf.targetDir, os.ModePerm); err != nil {
		return nil, NewDownloadErrorWithCause(ErrorFileSystemError, "failed to create target directory", err).
			WithContext("dir", sf.targetDir)
	}

	sf.logger.Debug("starting sound fetch",
		zap.String("target_dir", sf.targetDir),
		zap.String("base_url", sf.baseURL),
		zap.Int("notes", len(sf.notes)))

	summary := &Summary{TargetDir: sf.targetDir}
	for _, note := range sf.notes {
		result, err := sf.fetchNote(ctx, note)
		if result != nil {
			summary.Results = append(summary.Results, *result)
		}
		if err != nil {
			return summary, err
		}
	}

	sf.logger.Info("sound fetch finished",
		zap.Int("saved", summary.Saved()),
		zap.Int("attempted", len(summary.Results)))

	return summary, nil
}

// fetchNote downloads a single note. A non-200 status is reported on the
// console and returns a result with no error.
func (sf *SoundFetcherImpl) fetchNote(ctx context.Context, note Note) (*Result, error) {
	url := SoundURL(sf.baseURL, note)
	fmt.Fprintf(sf.out, "Downloading %s...\n", url)

	log := sf.logger.With(zap.String("note", string(note)), zap.String("url", url))
	log.Debug("requesting sample", zap.Float64("frequency_hz", note.Frequency()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewDownloadErrorWithCause(ErrorInvalidURL, "failed to build request", err).
			WithContext("note", string(note))
	}

	resp, err := sf.client.Do(req)
	if err != nil {
		log.Error("request failed", zap.Error(err))
		return nil, NewDownloadErrorWithCause(ErrorNetworkFailure, "request failed", err).
			WithContext("note", string(note)).
			WithContext("url", url)
	}
	defer resp.Body.Close()

	result := &Result{
		Note:       note,
		URL:        url,
		StatusCode: resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		badStatus := NewDownloadError(ErrorBadStatus, resp.Status).WithContext("note", string(note))
		log.Warn("skipping note", zap.Int("status", resp.StatusCode), zap.Error(badStatus))
		failureLine.Fprintf(sf.out, "Failed to download %s\n", note.FileName())
		return result, nil
	}

	body, err := io.ReadAll(sf.bodyReader(resp, note))
	if err != nil {
		log.Error("reading body failed", zap.Error(err))
		return result, NewDownloadErrorWithCause(ErrorNetworkFailure, "failed to read response body", err).
			WithContext("note", string(note)).
			WithContext("url", url)
	}

	path := filepath.Join(sf.targetDir, note.FileName())
	if err := os.WriteFile(path, body, 0o666); err != nil {
		log.Error("writing sample failed", zap.String("path", path), zap.Error(err))
		return result, NewDownloadErrorWithCause(ErrorFileSystemError, "failed to write sample", err).
			WithContext("note", string(note)).
			WithContext("path", path)
	}

	result.Path = path
	result.Bytes = int64(len(body))

	if dur, err := Mp3Duration(path); err != nil {
		log.Debug("could not decode sample", zap.Error(err))
	} else {
		result.Duration = dur
	}

	log.Debug("sample saved",
		zap.String("path", path),
		zap.Int64("bytes", result.Bytes),
		zap.Duration("duration", result.Duration))
	successLine.Fprintf(sf.out, "Successfully downloaded %s\n", note.FileName())

	return result, nil
}

// bodyReader returns resp.Body, wrapped with a progress bar when enabled.
func (sf *SoundFetcherImpl) bodyReader(resp *http.Response, note Note) io.Reader {
	if sf.progressOut == nil {
		return resp.Body
	}

	bar := newProgressBar(sf.progressOut, resp.ContentLength, note)
	return NewProgressReader(resp.Body, resp.ContentLength, func(read, total int64) {
		_ = bar.Set64(read)
		if total > 0 && read >= total {
			_ = bar.Finish()
		}
	})
}
