package downloader

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/tcolgate/mp3"
)

// Mp3Duration sums the frame durations of the MP3 file at path.
// The file is only read; callers treat a failure as "duration unknown".
func Mp3Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := mp3.NewDecoder(f)
	var (
		frame   mp3.Frame
		skipped int
		total   time.Duration
	)
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return total, err
		}
		total += frame.Duration()
	}
	return total, nil
}
