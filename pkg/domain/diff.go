package domain

// FrameDiff represents the changes between two frames.
// It is designed to be serialized to JSON for compact timelines.
type FrameDiff struct {
	Transform *Transform `json:"transform,omitempty"`
	Feedback  *Feedback  `json:"feedback,omitempty"`
	Cursor    *Cursor    `json:"cursor,omitempty"`
	Phase     *Phase     `json:"phase,omitempty"`

	// Transition is set only when the new frame starts one.
	Transition *Transition `json:"transition,omitempty"`
}

// Diff calculates the difference between oldFrame and newFrame.
// If oldFrame is nil, the diff carries the entire newFrame (initial paint).
// It returns nil when nothing a renderer would draw has changed.
func Diff(oldFrame *Frame, newFrame Frame) *FrameDiff {
	d := &FrameDiff{}

	if oldFrame == nil || oldFrame.Transform != newFrame.Transform {
		d.Transform = &newFrame.Transform
		if newFrame.Transition != nil {
			d.Transition = newFrame.Transition
		}
	}
	if oldFrame == nil || oldFrame.Feedback != newFrame.Feedback {
		d.Feedback = &newFrame.Feedback
	}
	if oldFrame == nil || oldFrame.Cursor != newFrame.Cursor {
		d.Cursor = &newFrame.Cursor
	}
	if oldFrame == nil || oldFrame.Phase != newFrame.Phase {
		d.Phase = &newFrame.Phase
	}

	if d.IsEmpty() {
		return nil
	}
	return d
}

// IsEmpty checks if the diff contains any visible change.
func (d *FrameDiff) IsEmpty() bool {
	return d.Transform == nil &&
		d.Feedback == nil &&
		d.Cursor == nil &&
		d.Phase == nil
}
