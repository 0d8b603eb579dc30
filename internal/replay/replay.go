// Package replay records the per-tick input of a run and plays it back
// headless. Since a round is a pure function of its input and frame deltas,
// the recorded frames reproduce the run exactly.
//
// A recording is a msgpack stream: one Header followed by one Frame per tick.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
)

// Version is the recording format version.
const Version = 1

var (
	// ErrBadRecording is returned for streams that are not recordings.
	ErrBadRecording = errors.New("replay: malformed recording")
	// ErrVersion is returned for recordings from an incompatible format.
	ErrVersion = errors.New("replay: unsupported version")
)

// Header describes how the recorded run was started. It carries the full
// config and level set so playback does not depend on files on disk.
type Header struct {
	Version    int                   `msgpack:"version"`
	GameID     string                `msgpack:"game"`
	StartLevel int                   `msgpack:"start"`
	Recorded   int64                 `msgpack:"recorded"` // Unix seconds
	Config     config.ArkanoidConfig `msgpack:"config"`
	Levels     []levels.Level        `msgpack:"levels"`
}

// Frame is one tick of input.
type Frame struct {
	Actions    []int   `msgpack:"a,omitempty"`
	Movement   float64 `msgpack:"m,omitempty"`
	PointerX   float64 `msgpack:"px,omitempty"`
	HasPointer bool    `msgpack:"hp,omitempty"`
	Delta      int64   `msgpack:"d"` // Nanoseconds
}

// NewFrame captures an input frame and its delta.
func NewFrame(in core.InputFrame, dt time.Duration) Frame {
	f := Frame{
		Movement:   in.Movement,
		PointerX:   in.PointerX,
		HasPointer: in.HasPointer,
		Delta:      int64(dt),
	}
	for _, a := range in.Pressed() {
		f.Actions = append(f.Actions, int(a))
	}
	return f
}

// Input rebuilds the input frame.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range f.Actions {
		in.Set(core.Action(a))
	}
	in.Movement = f.Movement
	if f.HasPointer {
		in.SetPointer(f.PointerX)
	}
	return in
}

// Duration returns the frame delta.
func (f Frame) Duration() time.Duration {
	return time.Duration(f.Delta)
}

// Recorder appends frames to a recording stream.
type Recorder struct {
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	closer io.Closer
	frames int
}

// NewRecorder writes h to w and returns a recorder for the frames that follow.
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	h.Version = Version
	buf := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(buf)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("replay: write header: %w", err)
	}
	return &Recorder{buf: buf, enc: enc}, nil
}

// Create starts a recording file at path.
func Create(path string, h Header) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("replay: create directory: %w", err)
		}
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	r, err := NewRecorder(f, h)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Record appends one tick.
func (r *Recorder) Record(in core.InputFrame, dt time.Duration) error {
	f := NewFrame(in, dt)
	if err := r.enc.Encode(&f); err != nil {
		return fmt.Errorf("replay: write frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes the stream and closes the file opened by Create.
func (r *Recorder) Close() error {
	err := r.buf.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Recording is a decoded recording.
type Recording struct {
	Header Header
	Frames []Frame
}

// Read decodes a recording stream.
func Read(r io.Reader) (*Recording, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))

	var rec Recording
	if err := dec.Decode(&rec.Header); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrBadRecording, err)
	}
	if rec.Header.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Header.Version)
	}

	for {
		var f Frame
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d: %w", ErrBadRecording, len(rec.Frames), err)
		}
		rec.Frames = append(rec.Frames, f)
	}
	return &rec, nil
}

// Load reads a recording file.
func Load(path string) (*Recording, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	return Read(f)
}
