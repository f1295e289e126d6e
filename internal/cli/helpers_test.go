package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/maxdiff/internal/harness"
	"github.com/roach88/maxdiff/internal/testutil"
)

const passingSuite = `name: example_max
description: Literal cases for ExampleMax
cases:
  - {name: ascending, a: 1, b: 2, expect: 2}
  - {name: descending, a: 2, b: 1, expect: 2}
  - {name: equal, a: 1, b: 1, expect: 1}
`

const sentinelSuite = `name: example_max_sentinel
cases:
  - {name: ascending, a: 1, b: 2, expect: 2}
  - {name: sentinel, a: 694201337, b: 5, expect: 694201337}
  - {name: equal, a: 1, b: 1, expect: 1}
property:
  seed: 7
  trials: 0
  values: [694201337]
`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), "suite.yaml", content)
}

// reportResponse is a CLIResponse carrying a harness report.
type reportResponse struct {
	Status string          `json:"status"`
	Data   *harness.Report `json:"data"`
	Error  *CLIError       `json:"error"`
}

func decodeReport(t *testing.T, out string) reportResponse {
	t.Helper()
	var resp reportResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.NotNil(t, resp.Data)
	return resp
}
