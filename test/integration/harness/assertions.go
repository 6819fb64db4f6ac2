package harness

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies the command exited with code 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
}

// AssertFailure verifies the command exited with a non-zero code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode, "expected failure, got success\n%s", result)
}

// AssertExitCode verifies the command exited with a specific code.
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode, "unexpected exit code\n%s", result)
}

// AssertStdoutContains verifies stdout contains the expected string.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout mismatch\n%s", result)
}

// AssertStdoutNotContains verifies stdout does not contain the string.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "stdout mismatch\n%s", result)
}

// AssertStderrContains verifies stderr contains the expected string.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr mismatch\n%s", result)
}

// AssertStdoutEmpty verifies nothing but whitespace was written to stdout.
func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout), "expected empty stdout\n%s", result)
}

// AssertStderrEmpty verifies nothing but whitespace was written to stderr.
func AssertStderrEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stderr), "expected empty stderr\n%s", result)
}

// AssertValidJSON verifies stdout is valid JSON and unmarshals it into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "expected JSON\n%s", result)
}

// AssertJSONContains verifies stdout is a JSON object holding key with the expected value.
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q mismatch", key)
}

// String renders the result for assertion messages.
func (r CommandResult) String() string {
	return fmt.Sprintf("exit: %d\nstdout: %s\nstderr: %s", r.ExitCode, r.Stdout, r.Stderr)
}
