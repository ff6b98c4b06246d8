package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/resource-hub/internal/apperr"
	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("CUSTOM_STORAGE_TYPE", "")
	t.Setenv("CONTENT_DIR", "")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, storage.File, cfg.Type)
	assert.Equal(t, storage.File, cfg.CustomType)
	assert.Equal(t, DefaultContentDir, cfg.ContentDir)
}

func TestLoadEnv_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown type",
			env:     map[string]string{"STORAGE_TYPE": "mongo"},
			wantErr: "STORAGE_TYPE",
		},
		{
			name:    "pg without connection string",
			env:     map[string]string{"STORAGE_TYPE": "file", "CUSTOM_STORAGE_TYPE": "pg"},
			wantErr: "PG_CONNECTION_STRING",
		},
		{
			name:    "es without addresses",
			env:     map[string]string{"STORAGE_TYPE": "es"},
			wantErr: "ES_ADDRESSES",
		},
		{
			name:    "s3 without bucket",
			env:     map[string]string{"STORAGE_TYPE": "s3", "S3_REGION": "eu-central-1"},
			wantErr: "S3_BUCKET",
		},
		{
			name: "pg max conns not a number",
			env: map[string]string{
				"STORAGE_TYPE":         "pg",
				"PG_CONNECTION_STRING": "postgres://localhost/resources",
				"PG_MAX_CONNS":         "many",
			},
			wantErr: "PG_MAX_CONNS",
		},
		{
			name: "pg with connection string",
			env: map[string]string{
				"STORAGE_TYPE":         "pg",
				"CUSTOM_STORAGE_TYPE":  "none",
				"PG_CONNECTION_STRING": "postgres://localhost/resources",
				"PG_MAX_CONNS":         "8",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"STORAGE_TYPE", "CUSTOM_STORAGE_TYPE", "PG_CONNECTION_STRING", "PG_MAX_CONNS", "ES_ADDRESSES", "S3_BUCKET", "S3_REGION"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadEnv()
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				return
			}

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewSource(t *testing.T) {
	ctx := context.Background()
	cfg := &StorageConfig{Type: storage.InMem, CustomType: storage.None}

	s, err := NewSource(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.Healthy(ctx))

	records, err := s.LoadCustom(ctx, resource.KindBlog)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewSource_Unsupported(t *testing.T) {
	_, err := NewSource(context.Background(), &StorageConfig{Type: "mongo", CustomType: storage.None})
	assert.ErrorContains(t, err, "unsupported source type: mongo")
}

func TestNewIndexer_Unsupported(t *testing.T) {
	_, _, err := NewIndexer(context.Background(), storage.File, &StorageConfig{})
	assert.Error(t, err)
}
