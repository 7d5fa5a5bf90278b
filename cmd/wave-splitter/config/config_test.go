package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
default_profile: studio
profiles:
  studio:
    output_dir: /tmp/segments
    name_pattern: glyph%02d.wav
    encoded_name: secret.wav
    count: 30
    brokers:
      - kafka1.example.com:9092
      - kafka2.example.com:9092
    topic: glyphs
  bare: {}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "studio", c.DefaultProfile)

	p, err := c.Profile("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/segments", p.OutputDir)
	assert.Equal(t, "glyph%02d.wav", p.NamePattern)
	assert.Equal(t, "secret.wav", p.EncodedName)
	assert.Equal(t, 30, p.Count)
	assert.Equal(t, "glyphs", p.Topic)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "profiles: [unterminated"))
	assert.Error(t, err)
}

func TestConfig_Profile(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	p, err := c.Profile("bare")
	require.NoError(t, err)
	assert.Empty(t, p.OutputDir)

	_, err = c.Profile("missing")
	assert.Error(t, err)

	// A dangling default profile is not an error
	c.DefaultProfile = "gone"
	p, err = c.Profile("")
	require.NoError(t, err)
	assert.Equal(t, Profile{}, p)
}

func TestResolveBrokers(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	t.Setenv(EnvBrokers, "env1:9092, env2:9092 ,")

	brokers, err := ResolveBrokers([]string{"flag:9092"}, "", c)
	require.NoError(t, err)
	assert.Equal(t, []string{"flag:9092"}, brokers)

	brokers, err = ResolveBrokers(nil, "", c)
	require.NoError(t, err)
	assert.Equal(t, []string{"kafka1.example.com:9092", "kafka2.example.com:9092"}, brokers)

	brokers, err = ResolveBrokers(nil, "bare", c)
	require.NoError(t, err)
	assert.Equal(t, []string{"env1:9092", "env2:9092"}, brokers)

	t.Setenv(EnvBrokers, "")
	_, err = ResolveBrokers(nil, "bare", c)
	assert.ErrorIs(t, err, ErrNoBrokers)
}
