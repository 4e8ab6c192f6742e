package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d options", "General", 2)
	assert.Equal(t, "General: 2 options", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWritefIgnoresWriteErrors(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(failingWriter{}, "lost")
	})
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	code := ReportError(&buf, errors.New("redefinition of option -x"))

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: redefinition of option -x\n", buf.String())
}
