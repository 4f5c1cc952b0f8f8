package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/aretw0/fling/internal/cli"
	"github.com/aretw0/fling/pkg/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const throwLeft = `{
  "name": "throw-left",
  "viewport": 800,
  "steps": [
    {"action": "down", "input": "touch", "x": 200, "y": 0},
    {"action": "move", "input": "touch", "x": 174, "after": 20},
    {"action": "move", "input": "touch", "x": 150, "after": 20},
    {"action": "up"}
  ]
}`

const buttonYAML = `
name: like-button
steps:
  - action: button
    direction: like
`

func TestRunSimulate_JSON(t *testing.T) {
	path := writeFile(t, "throw-left.json", throwLeft)

	var out bytes.Buffer
	err := cli.RunSimulate(context.Background(), cli.SimulateOptions{Traces: []string{path}, JSON: true}, &out)
	require.NoError(t, err)

	var rep simulate.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, "throw-left", rep.Name)
	assert.Equal(t, "commit", rep.Outcome)
	assert.Equal(t, 1, rep.Dispatched())
}

func TestRunSimulate_Text(t *testing.T) {
	paths := []string{
		writeFile(t, "throw-left.json", throwLeft),
		writeFile(t, "button.yaml", buttonYAML),
	}

	var out bytes.Buffer
	err := cli.RunSimulate(context.Background(), cli.SimulateOptions{
		Traces:   paths,
		Timeline: true,
		Config:   cli.Config{ViewportWidth: 390},
	}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, ">>> Trace 'throw-left'")
	assert.Contains(t, text, "commit  left (pass)")
	assert.Contains(t, text, ">>> Trace 'like-button'")
	assert.Contains(t, text, "commit  right (like)")
	assert.Contains(t, text, "Timeline")
}

func TestRunSimulate_ConfigViewport(t *testing.T) {
	path := writeFile(t, "button.yaml", buttonYAML)

	var out bytes.Buffer
	err := cli.RunSimulate(context.Background(), cli.SimulateOptions{
		Traces: []string{path},
		JSON:   true,
		Config: cli.Config{ViewportWidth: 390},
	}, &out)
	require.NoError(t, err)

	var rep simulate.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	require.NotEmpty(t, rep.Timeline)
	// 390px viewport plus the 200px overshoot.
	assert.Contains(t, rep.Timeline[0].CSS, "translate(590px")
}

func TestRunSimulate_Errors(t *testing.T) {
	var out bytes.Buffer

	err := cli.RunSimulate(context.Background(), cli.SimulateOptions{
		Traces: []string{filepath.Join(t.TempDir(), "missing.yaml")},
	}, &out)
	assert.Error(t, err)

	err = cli.RunSimulate(context.Background(), cli.SimulateOptions{
		Traces: []string{writeFile(t, "bad.yaml", "steps: []")},
	}, &out)
	assert.Error(t, err)
}
