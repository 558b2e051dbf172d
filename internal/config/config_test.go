package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TAXONOMY_PATH", "")
	t.Setenv("BATCH_CONCURRENCY", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.TaxonomyPath)
	assert.Equal(t, 4, cfg.BatchConcurrency)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestFromEnv_Overrides(t *testing.T) {
	taxonomyFile := filepath.Join(t.TempDir(), "taxonomy.json")
	require.NoError(t, os.WriteFile(taxonomyFile, []byte(`{}`), 0644))

	t.Setenv("PORT", "9090")
	t.Setenv("TAXONOMY_PATH", taxonomyFile)
	t.Setenv("BATCH_CONCURRENCY", "8")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, taxonomyFile, cfg.TaxonomyPath)
	assert.Equal(t, 8, cfg.BatchConcurrency)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{Port: 8080, BatchConcurrency: 4, MaxUploadBytes: 1024},
		},
		{
			name:    "port out of range",
			cfg:     Config{Port: 70000, BatchConcurrency: 4, MaxUploadBytes: 1024},
			wantErr: "port",
		},
		{
			name:    "zero concurrency",
			cfg:     Config{Port: 8080, BatchConcurrency: 0, MaxUploadBytes: 1024},
			wantErr: "concurrency",
		},
		{
			name:    "missing taxonomy file",
			cfg:     Config{Port: 8080, BatchConcurrency: 4, MaxUploadBytes: 1024, TaxonomyPath: "/no/such/file.json"},
			wantErr: "taxonomy file not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
