package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	req := require.New(t)
	home := t.TempDir()
	t.Setenv("EDITOR", "")

	cfg, err := LoadFrom(home)

	req.NoError(err)
	req.Equal([]string{filepath.Join(home, "hl7")}, cfg.Roots)
	req.Equal([]string{".hl7", ".txt"}, cfg.Extensions)
	req.Equal(filepath.Join(home, ".config", "hl7v", "catalog.db"), cfg.DBPath)
	req.Equal("less", cfg.Editor)
}

func TestLoadFrom_EditorFromEnv(t *testing.T) {
	t.Setenv("EDITOR", "nvim")

	cfg, err := LoadFrom(t.TempDir())

	require.NoError(t, err)
	require.Equal(t, "nvim", cfg.Editor)
}

func TestLoadFrom_FileOverrides(t *testing.T) {
	req := require.New(t)
	home := t.TempDir()
	req.NoError(os.MkdirAll(filepath.Dir(Path(home)), 0o755))
	req.NoError(os.WriteFile(Path(home), []byte(`
roots = ["~/inbound", "/srv/hl7"]
extensions = [".msg"]
db_path = "~/catalog.db"
editor = "code"
`), 0o644))

	cfg, err := LoadFrom(home)

	req.NoError(err)
	req.Equal([]string{filepath.Join(home, "inbound"), "/srv/hl7"}, cfg.Roots)
	req.Equal([]string{".msg"}, cfg.Extensions)
	req.Equal(filepath.Join(home, "catalog.db"), cfg.DBPath)
	req.Equal("code", cfg.Editor)
}

func TestLoadFrom_BadFile(t *testing.T) {
	req := require.New(t)
	home := t.TempDir()
	req.NoError(os.MkdirAll(filepath.Dir(Path(home)), 0o755))
	req.NoError(os.WriteFile(Path(home), []byte("roots = ["), 0o644))

	_, err := LoadFrom(home)

	req.ErrorContains(err, "parse config")
}
