package hl7

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_ReadsWholeFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "msg.hl7")
	req.NoError(os.WriteFile(path, []byte(sampleMessage), 0o644))

	text, err := Load(path)

	req.NoError(err)
	req.Equal(sampleMessage, text)
}

func TestLoad_MissingPath(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "nope.hl7")

	_, err := Load(path)

	req.ErrorIs(err, ErrNotFound)
	req.Contains(err.Error(), path)
}

func TestLoad_DirectoryIsNotAFile(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	_, err := Load(dir)

	req.ErrorIs(err, ErrNotFound)
	req.Contains(err.Error(), dir)
}

func TestLoad_InvalidUTF8(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "latin1.hl7")
	req.NoError(os.WriteFile(path, []byte("PID|1||caf\xe9"), 0o644))

	_, err := Load(path)

	req.ErrorIs(err, ErrDecode)
	var decErr *DecodeError
	req.ErrorAs(err, &decErr)
	req.Equal(path, decErr.Path)
	req.Equal(10, decErr.Offset)
}
