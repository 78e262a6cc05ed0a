package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirrezaask/stenografi"
)

func TestRunParse(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runParse(stenografi.DefaultConfig(), "Abra  stenografi", false, false, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "A BR A\n\nSTENOGRAFI\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunParse_Strict(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runParse(stenografi.DefaultConfig(), "a1e", true, false, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Equal(t, "A E\n", stdout.String())
	assert.Equal(t, "unmatched characters: '1' at word 0 offset 1\n", stderr.String())

	stdout.Reset()
	stderr.Reset()
	assert.Equal(t, 0, runParse(stenografi.DefaultConfig(), "a1e", false, false, &stdout, &stderr))
}

func TestRunParse_ConfiguredAlphabet(t *testing.T) {
	cfg, err := stenografi.ParseConfig("alphabet b r a")
	assert.NoError(t, err)

	var stdout, stderr bytes.Buffer
	runParse(cfg, "bra", false, false, &stdout, &stderr)
	assert.Equal(t, "B R A\n", stdout.String())
}

func TestRunParse_Debug(t *testing.T) {
	var stdout, stderr bytes.Buffer
	runParse(stenografi.DefaultConfig(), "br", false, true, &stdout, &stderr)
	assert.Contains(t, stdout.String(), "lexers.Sentence")
	assert.Contains(t, stdout.String(), "BR\n")
}
