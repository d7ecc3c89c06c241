// Package downloader fetches the six reference guitar string samples used by
// the tuner and stores them as MP3 files on disk.
//
// The package defines:
//   - Note: the fixed, ordered set of string identifiers and their URL/file mapping
//   - SoundFetcher: a sequential fetcher that downloads each note with plain GETs
//   - Error handling with structured DownloadError types
//   - Summary/Result values describing what a run did
//
// Downloads run one at a time in note order. A non-200 response is reported and
// skipped; a transport failure ends the run.
package downloader
