package configpaths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hidgames/classichid/internal/configpaths"
)

func TestCandidatePathsRoutesUserPathByExtension(t *testing.T) {
	type testCase struct {
		name   string
		path   string
		bucket func(json, yaml, toml []string) []string
	}

	cases := []testCase{
		{
			name:   "json",
			path:   "custom.json",
			bucket: func(json, _, _ []string) []string { return json },
		},
		{
			name:   "yaml",
			path:   "custom.yaml",
			bucket: func(_, yaml, _ []string) []string { return yaml },
		},
		{
			name:   "yml",
			path:   "custom.yml",
			bucket: func(_, yaml, _ []string) []string { return yaml },
		},
		{
			name:   "toml",
			path:   "custom.toml",
			bucket: func(_, _, toml []string) []string { return toml },
		},
		{
			name:   "extensionless defaults to json",
			path:   "custom",
			bucket: func(json, _, _ []string) []string { return json },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jsonPaths, yamlPaths, tomlPaths := configpaths.CandidatePaths(tc.path)
			bucket := tc.bucket(jsonPaths, yamlPaths, tomlPaths)
			assert.NotEmpty(t, bucket)
			assert.Equal(t, tc.path, bucket[0])
		})
	}
}

func TestCandidatePathsIncludeWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)

	jsonPaths, yamlPaths, tomlPaths := configpaths.CandidatePaths("")

	assert.Contains(t, jsonPaths, filepath.Join(wd, "classichid.json"))
	assert.Contains(t, jsonPaths, filepath.Join(wd, "config.json"))
	assert.Contains(t, yamlPaths, filepath.Join(wd, "classichid.yaml"))
	assert.Contains(t, yamlPaths, filepath.Join(wd, "classichid.yml"))
	assert.Contains(t, tomlPaths, filepath.Join(wd, "classichid.toml"))
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "deep", "config.json")
	assert.NoError(t, configpaths.EnsureDir(target))
	assert.DirExists(t, filepath.Join(dir, "nested", "deep"))
}
