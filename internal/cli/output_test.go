package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(ErrCodeSuite, "failed to load suite", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeSuite, resp.Error.Code)
	assert.Equal(t, "failed to load suite", resp.Error.Message)
}

func TestOutputFormatter_JSONErrorWithDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	details := map[string]string{"path": "suite.cue", "line": "42"}
	err := formatter.Error(ErrCodeSuite, "invalid suite", details)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.NotNil(t, resp.Error)
	assert.NotNil(t, resp.Error.Details)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("3 cases loaded")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "3 cases loaded")
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: false,
	}

	err := formatter.Error(ErrCodeSuite, "failed to load suite", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E_SUITE]")
	assert.Contains(t, buf.String(), "failed to load suite")
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	details := map[string]string{"path": "suite.cue"}
	err := formatter.Error(ErrCodeSuite, "failed to load suite", details)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E_SUITE]")
	assert.Contains(t, buf.String(), "Details:")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:  "text",
				Writer:  buf,
				Verbose: tt.verbose,
			}

			formatter.VerboseLog("loaded suite %q", "example_max")

			if tt.wantLog {
				assert.Contains(t, buf.String(), `loaded suite "example_max"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestCLIResponse_JSON(t *testing.T) {
	resp := CLIResponse{
		Status: "ok",
		Data:   map[string]int{"checked": 64},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded CLIResponse
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "ok", decoded.Status)
}

func TestCLIError_JSON(t *testing.T) {
	cliErr := CLIError{
		Code:    ErrCodeMismatch,
		Message: "1 mismatching input pair(s)",
		Details: []string{"a=694201337 b=0"},
	}

	data, err := json.Marshal(cliErr)
	require.NoError(t, err)

	var decoded CLIError
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeMismatch, decoded.Code)
	assert.Equal(t, "1 mismatching input pair(s)", decoded.Message)
}

func TestOutputFormatter_Outcome(t *testing.T) {
	tests := []struct {
		name       string
		pass       bool
		wantStatus string
		wantError  bool
	}{
		{"pass", true, "ok", false},
		{"fail", false, "error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{Format: "json", Writer: buf}

			err := formatter.Outcome(tt.pass, map[string]int{"checked": 3}, "1 fixed case(s) failed")
			require.NoError(t, err)

			var resp CLIResponse
			require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.NotNil(t, resp.Data, "report data is kept on failure")
			if tt.wantError {
				require.NotNil(t, resp.Error)
				assert.Equal(t, ErrCodeMismatch, resp.Error.Code)
				assert.Equal(t, "1 fixed case(s) failed", resp.Error.Message)
			} else {
				assert.Nil(t, resp.Error)
			}
		})
	}
}

func TestOutputFormatter_VerboseLogUsesErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}

	formatter.VerboseLog("seed=%d", 7)

	assert.Empty(t, out.String())
	assert.Equal(t, "seed=7\n", errOut.String())
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"mismatch", NewExitError(ExitFailure, "1 fixed case(s) failed"), ExitFailure},
		{"command error", WrapExitError(ExitCommandError, "failed to load suite", errors.New("boom")), ExitCommandError},
		{"wrapped", fmt.Errorf("outer: %w", NewExitError(ExitFailure, "x")), ExitFailure},
		{"plain", errors.New(`unknown flag: --nope`), ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "bad flags", NewExitError(ExitCommandError, "bad flags").Error())

	cause := errors.New("no such file")
	err := WrapExitError(ExitCommandError, "failed to load suite", cause)
	assert.Equal(t, "failed to load suite: no such file", err.Error())
	assert.ErrorIs(t, err, cause)
}
