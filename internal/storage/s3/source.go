package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
}

// Source reads datasets stored as objects named <prefix>/<kind>/<dataset>.json
// or .yaml in a bucket.
type Source struct {
	client *s3.S3
	bucket string
	prefix string
}

func NewSource(cfg Config) (*Source, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}

	// S3 compatible stores such as MinIO
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewSourceWithClient(s3.New(sess), cfg.Bucket, cfg.Prefix), nil
}

func NewSourceWithClient(client *s3.S3, bucket, prefix string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

var objectExtensions = []string{".json", ".yaml"}

func (s *Source) Load(ctx context.Context, kind resource.Kind, ds storage.Dataset) ([]resource.RawRecord, error) {
	for _, ext := range objectExtensions {
		key := path.Join(s.prefix, string(kind), string(ds)+ext)

		data, err := s.getObject(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err)
		}
		if data == nil {
			continue
		}

		records, err := decode(ext, data)
		if err != nil {
			return nil, fmt.Errorf("decode s3://%s/%s: %w", s.bucket, key, err)
		}
		slog.Debug("Loaded s3 dataset", "bucket", s.bucket, "key", key, "count", len(records))
		return records, nil
	}
	return nil, nil
}

func (s *Source) LoadCanonical(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Canonical)
}

func (s *Source) LoadCustom(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Custom)
}

// getObject returns nil data when the key does not exist.
func (s *Source) getObject(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func isNotFound(err error) bool {
	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
		return true
	}
	var awsErr awserr.Error
	return errors.As(err, &awsErr) && awsErr.Code() == s3.ErrCodeNoSuchKey
}

func decode(ext string, data []byte) ([]resource.RawRecord, error) {
	var maps []map[string]any
	if ext == ".json" {
		if err := json.Unmarshal(data, &maps); err != nil {
			return nil, err
		}
		return resource.Records(maps), nil
	}
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&maps); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return resource.Records(maps), nil
}
