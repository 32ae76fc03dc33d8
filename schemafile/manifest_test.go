package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "env.schema.yaml", `
required:
  - DATABASE_URL
  - API_KEY
secret:
  - API_KEY
files:
  - .env
  - /etc/app/.env
`)

	m, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"DATABASE_URL", "API_KEY"}, m.Required)
	assert.Equal(t, []string{"API_KEY"}, m.Secret)
	assert.Equal(t, []string{filepath.Join(tmpDir, ".env"), "/etc/app/.env"}, m.Files)
}

func TestLoad_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "env.schema.json", `{
  "required": ["DATABASE_URL", "API_KEY"]
}`)

	m, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"DATABASE_URL", "API_KEY"}, m.Required)
	assert.Empty(t, m.Files)
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "env.schema.toml", `
required = ["DATABASE_URL", "API_KEY"]
secret = [" API_KEY ", "", "API_KEY"]
files = ["local.env"]
`)

	m, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"DATABASE_URL", "API_KEY"}, m.Required)
	assert.Equal(t, []string{"API_KEY"}, m.Secret)
	assert.Equal(t, []string{filepath.Join(tmpDir, "local.env")}, m.Files)
}

func TestLoad_FormatInference(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{
			name:     "yaml extension",
			filename: "schema.yaml",
			content:  "required: [KEY]",
		},
		{
			name:     "yml extension",
			filename: "schema.yml",
			content:  "required: [KEY]",
		},
		{
			name:     "json extension",
			filename: "schema.json",
			content:  `{"required": ["KEY"]}`,
		},
		{
			name:     "toml extension",
			filename: "schema.toml",
			content:  `required = ["KEY"]`,
		},
		{
			name:     "uppercase extension",
			filename: "schema.YAML",
			content:  "required: [KEY]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.filename, tt.content)

			m, err := Load(path, Options{})
			require.NoError(t, err)
			assert.Equal(t, []string{"KEY"}, m.Required)
		})
	}
}

func TestLoad_ExplicitFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "schema.txt", "required: [KEY]")

	m, err := Load(path, Options{Format: "yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"KEY"}, m.Required)
}

func TestLoad_CleansNames(t *testing.T) {
	path := writeFile(t, t.TempDir(), "schema.yaml", `
required:
  - " FOO "
  - ""
  - BAR
  - FOO
`)

	m, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"FOO", "BAR"}, m.Required)
}

func TestLoad_MissingFile_NotRequired(t *testing.T) {
	m, err := Load("/nonexistent/schema.yaml", Options{Required: false})
	require.NoError(t, err)
	assert.Empty(t, m.Required, "should return empty manifest for missing non-required file")
	assert.Empty(t, m.Files)
}

func TestLoad_MissingFile_Required(t *testing.T) {
	m, err := Load("/nonexistent/schema.yaml", Options{Required: true})
	assert.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "required schema file not found")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "invalid.yaml", "required: [unclosed\n\t\tbad")

	m, err := Load(path, Options{})
	assert.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "parse YAML file")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "invalid.json", `{"required": ["KEY"]`)

	m, err := Load(path, Options{})
	assert.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "parse JSON file")
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "invalid.toml", "[section\nrequired = [\"KEY\"]")

	m, err := Load(path, Options{})
	assert.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "parse TOML file")
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "schema.txt", "KEY")

	m, err := Load(path, Options{})
	assert.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	m, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Empty(t, m.Required)
}

func TestLoad_WrongShape(t *testing.T) {
	path := writeFile(t, t.TempDir(), "schema.yaml", "required: not-a-list")

	_, err := Load(path, Options{})
	assert.Error(t, err)
}
