package simulate

import (
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/aretw0/fling/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Action is the kind of a trace step.
type Action string

const (
	ActionDown   Action = "down"
	ActionMove   Action = "move"
	ActionUp     Action = "up"
	ActionCancel Action = "cancel"
	ActionButton Action = "button"
	ActionWait   Action = "wait"
)

// Input selects the pointer shape of down/move steps.
type Input string

const (
	InputMouse Input = "mouse"
	InputTouch Input = "touch"
)

// Step is one scripted input.
type Step struct {
	Action    Action           `json:"action" mapstructure:"action"`
	Input     Input            `json:"input,omitempty" mapstructure:"input"`
	X         float64          `json:"x,omitempty" mapstructure:"x"`
	Y         float64          `json:"y,omitempty" mapstructure:"y"`
	Direction domain.Direction `json:"direction,omitempty" mapstructure:"direction"`
	After     time.Duration    `json:"after,omitempty" mapstructure:"after"` // clock advance before the step
	For       time.Duration    `json:"for,omitempty" mapstructure:"for"`     // wait length
}

// Trace is a named gesture script.
type Trace struct {
	Name     string  `json:"name" mapstructure:"name"`
	Viewport float64 `json:"viewport,omitempty" mapstructure:"viewport"`
	Steps    []Step  `json:"steps" mapstructure:"steps"`
}

// Load reads a trace from a YAML or JSON file.
func Load(path string) (Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Trace{}, fmt.Errorf("failed to read trace: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML (or JSON) document into a Trace.
func Parse(data []byte) (Trace, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Trace{}, fmt.Errorf("%w: %v", domain.ErrInvalidTrace, err)
	}
	return Decode(raw)
}

// Decode converts a loosely typed document (YAML, JSON or MCP arguments)
// into a validated Trace.
func Decode(raw map[string]any) (Trace, error) {
	var tr Trace
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			millisecondsHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &tr,
	})
	if err != nil {
		return Trace{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Trace{}, fmt.Errorf("%w: %v", domain.ErrInvalidTrace, err)
	}
	if err := tr.Validate(); err != nil {
		return Trace{}, err
	}
	return tr, nil
}

// Validate checks that every step can be replayed.
func (tr Trace) Validate() error {
	if len(tr.Steps) == 0 {
		return fmt.Errorf("%w: no steps", domain.ErrInvalidTrace)
	}
	if tr.Viewport < 0 {
		return fmt.Errorf("%w: negative viewport", domain.ErrInvalidTrace)
	}
	for i, s := range tr.Steps {
		if s.After < 0 || s.For < 0 {
			return fmt.Errorf("%w: step %d: negative delay", domain.ErrInvalidTrace, i)
		}
		switch s.Action {
		case ActionDown, ActionMove:
			if s.Input != "" && s.Input != InputMouse && s.Input != InputTouch {
				return fmt.Errorf("%w: step %d: unknown input %q", domain.ErrInvalidTrace, i, s.Input)
			}
		case ActionButton:
			if s.Direction != domain.Left && s.Direction != domain.Right {
				return fmt.Errorf("%w: step %d: button needs a direction", domain.ErrInvalidTrace, i)
			}
		case ActionUp, ActionCancel, ActionWait:
		default:
			return fmt.Errorf("%w: step %d: unknown action %q", domain.ErrInvalidTrace, i, s.Action)
		}
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// millisecondsHook reads bare numbers as milliseconds for duration fields.
func millisecondsHook(from, to reflect.Type, data any) (any, error) {
	if to != durationType {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	case uint64:
		return time.Duration(v) * time.Millisecond, nil
	case float64:
		return time.Duration(v * float64(time.Millisecond)), nil
	}
	return data, nil
}
