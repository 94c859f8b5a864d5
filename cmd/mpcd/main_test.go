package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunTextReport(t *testing.T) {
	input := "Fname\n12 42 3\n4 7\n12 42 3\n4 7"
	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "2"}, strings.NewReader(input), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "2\t")
	require.Empty(t, stderr.String())
}

func TestRunJSONReport(t *testing.T) {
	input := "Fname\n12 42 3\n4 7\n12 42 3\n4 7"
	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "2", "-j"}, strings.NewReader(input), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), `"tokens"`)
}

func TestRunEmptyInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "\n", stdout.String())
}

func TestRunInvalidSeedLength(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "0"}, strings.NewReader(""), &stdout, &stderr)
	require.NotEqual(t, 0, code)
	require.NotEmpty(t, stderr.String())
}

func TestRunMalformedFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--not-a-flag"}, strings.NewReader(""), &stdout, &stderr)
	require.NotEqual(t, 0, code)
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-V"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "mpcd")
}

func TestRunSizes(t *testing.T) {
	input := "Fname\n1 2 3\n"
	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "2", "-S"}, strings.NewReader(input), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "files\t1")
}

func TestRunIngestionError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("garbage before header\n"), &stdout, &stderr)
	require.NotEqual(t, 0, code)
}
