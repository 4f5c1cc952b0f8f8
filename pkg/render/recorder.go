package render

import (
	"sync"
	"time"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
)

var _ ports.Renderer = (*Recorder)(nil)

// Stamped is a frame with the clock reading at which it was rendered.
type Stamped struct {
	At    time.Time    `json:"at"`
	Frame domain.Frame `json:"frame"`
}

// Recorder is a ports.Renderer that keeps every frame.
type Recorder struct {
	mu     sync.Mutex
	now    func() time.Time
	frames []Stamped
}

// NewRecorder creates a recorder stamping frames with now.
func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{now: now}
}

// Render appends the frame.
func (r *Recorder) Render(frame domain.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, Stamped{At: r.now(), Frame: frame})
}

// Frames returns a copy of the log.
func (r *Recorder) Frames() []Stamped {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Stamped, len(r.frames))
	copy(out, r.frames)
	return out
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Last returns the most recent frame.
func (r *Recorder) Last() (domain.Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return domain.Frame{}, false
	}
	return r.frames[len(r.frames)-1].Frame, true
}

// Reset drops the log.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = nil
}
