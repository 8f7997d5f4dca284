package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/arkhe/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arkhe.yaml")
	content := `
log_level: debug
demo:
  space: Z
  input: "21"
protocols:
  double: Creative
  stringify: transmutative
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "demo", cfg.Demo.Graph)
	assert.Equal(t, "n1", cfg.Demo.Node)
	assert.Equal(t, "Z", cfg.Demo.Space)
	assert.Equal(t, 21, cfg.Demo.Input)
	assert.Equal(t, domain.Creative, cfg.Protocols["double"])
	assert.Equal(t, domain.Transmutative, cfg.Protocols["stringify"])
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":          "demo: [",
		"unknown protocol":  "protocols:\n  double: lossy\n",
		"unknown key":       "colour: blue\n",
		"numeric protocol":  "protocols:\n  double: 9\n",
		"negative protocol": "protocols:\n  double: -1\n",
		"bool protocol":     "protocols:\n  double: true\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			assert.Error(t, Parse([]byte(doc), &cfg))
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte(""), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestParse_ProtocolMustBeAName(t *testing.T) {
	for _, value := range []string{"0", "3", "9", "-1", "true", "false", "1.5"} {
		t.Run(value, func(t *testing.T) {
			cfg := Default()
			err := Parse([]byte("protocols:\n  double: "+value+"\n"), &cfg)
			assert.ErrorContains(t, err, domain.ErrUnknownProtocol.Error())
		})
	}
}
