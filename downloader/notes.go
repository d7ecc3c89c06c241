package downloader

const (
	// DefaultBaseURL is the remote directory holding the acoustic samples.
	DefaultBaseURL = "https://guitar-tuner.org/sounds/acoustic_mp3/"

	// DefaultTargetDir is where samples are written, relative to the working directory.
	DefaultTargetDir = "public/sounds/guitar"

	soundExtension = ".mp3"
)

// Note identifies a guitar string pitch, e.g. "e2".
type Note string

const (
	NoteE2 Note = "e2"
	NoteA2 Note = "a2"
	NoteD3 Note = "d3"
	NoteG3 Note = "g3"
	NoteB3 Note = "b3"
	NoteE4 Note = "e4"
)

var standardTuning = [...]Note{NoteE2, NoteA2, NoteD3, NoteG3, NoteB3, NoteE4}

// Notes returns the notes in download order, low E to high E.
func Notes() []Note {
	notes := make([]Note, len(standardTuning))
	copy(notes, standardTuning[:])
	return notes
}

// FileName returns the local file name for the note's sample.
func (n Note) FileName() string {
	return string(n) + soundExtension
}

// Frequency returns the nominal pitch in Hz, or 0 for an unknown note.
func (n Note) Frequency() float64 {
	switch n {
	case NoteE2:
		return 82.41
	case NoteA2:
		return 110.00
	case NoteD3:
		return 146.83
	case NoteG3:
		return 196.00
	case NoteB3:
		return 246.94
	case NoteE4:
		return 329.63
	default:
		return 0
	}
}

// SoundURL builds the sample URL by plain concatenation: base + note + ".mp3".
func SoundURL(baseURL string, note Note) string {
	return baseURL + string(note) + soundExtension
}
