package factory

import (
	"errors"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/resource-hub/internal/apperr"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/es"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/pg"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/s3"
	"github.com/DjordjeVuckovic/resource-hub/pkg/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultContentDir = "./data"
	DefaultIndexName  = "resources"
)

// StorageConfig selects the backend of each dataset. Backend settings are
// only required for the types in use.
type StorageConfig struct {
	Type       storage.Type
	CustomType storage.Type
	ContentDir string
	Pg         pg.PoolConfig
	Es         es.ClientConfig
	S3         s3.Config

	pgMaxConnsErr error
}

func LoadEnv() (*StorageConfig, error) {
	cfg := &StorageConfig{
		Type:       storage.Type(os.Getenv("STORAGE_TYPE")),
		CustomType: storage.Type(os.Getenv("CUSTOM_STORAGE_TYPE")),
		ContentDir: os.Getenv("CONTENT_DIR"),
		Pg: pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		},
		Es: es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		},
		S3: s3.Config{
			Bucket:   os.Getenv("S3_BUCKET"),
			Prefix:   os.Getenv("S3_PREFIX"),
			Region:   os.Getenv("S3_REGION"),
			Endpoint: os.Getenv("S3_ENDPOINT"),
		},
	}
	if v := os.Getenv("PG_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			cfg.pgMaxConnsErr = errors.New("must be an integer")
		}
		cfg.Pg.MaxConns = n
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *StorageConfig) applyDefaults() {
	if c.Type == "" {
		c.Type = storage.File
	}
	if c.CustomType == "" {
		c.CustomType = c.Type
	}
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.Es.IndexName == "" {
		c.Es.IndexName = DefaultIndexName
	}
}

// Uses reports whether either dataset is served by t.
func (c *StorageConfig) Uses(t storage.Type) bool {
	return c.Type == t || c.CustomType == t
}

func (c *StorageConfig) Validate() error {
	supported := make([]any, 0, len(storage.SupportedTypes))
	for _, t := range storage.SupportedTypes {
		supported = append(supported, t)
	}

	err := validation.Errors{
		"STORAGE_TYPE":         validation.Validate(c.Type, validation.Required, validation.In(supported...)),
		"CUSTOM_STORAGE_TYPE":  validation.Validate(c.CustomType, validation.Required, validation.In(supported...)),
		"CONTENT_DIR":          validation.Validate(c.ContentDir, validation.When(c.Uses(storage.File), validation.Required)),
		"PG_CONNECTION_STRING": validation.Validate(c.Pg.ConnStr, validation.When(c.Uses(storage.PG), validation.Required)),
		"PG_MAX_CONNS":         c.validateMaxConns(),
		"ES_ADDRESSES":         validation.Validate(c.Es.Addresses, validation.When(c.Uses(storage.ES), validation.Required)),
		"ES_INDEX_NAME":        validation.Validate(c.Es.IndexName, validation.When(c.Uses(storage.ES), validation.Required)),
		"S3_BUCKET":            validation.Validate(c.S3.Bucket, validation.When(c.Uses(storage.S3), validation.Required)),
		"S3_REGION":            validation.Validate(c.S3.Region, validation.When(c.Uses(storage.S3), validation.Required)),
	}.Filter()
	if err != nil {
		return apperr.NewValidationWrap("invalid storage configuration", err)
	}
	return nil
}

func (c *StorageConfig) validateMaxConns() error {
	if c.pgMaxConnsErr != nil {
		return c.pgMaxConnsErr
	}
	return validation.Validate(c.Pg.MaxConns, validation.Min(0))
}
