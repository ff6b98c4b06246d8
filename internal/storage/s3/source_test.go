package s3

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noSuchKey = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`

func newTestSource(t *testing.T, objects map[string]string) *Source {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(noSuchKey))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String("eu-central-1"),
		Endpoint:         aws.String(srv.URL),
		S3ForcePathStyle: aws.Bool(true),
		Credentials:      credentials.NewStaticCredentials("test", "test", ""),
	})
	require.NoError(t, err)

	return NewSourceWithClient(s3.New(sess), "content", "resources")
}

func TestSource_Load(t *testing.T) {
	src := newTestSource(t, map[string]string{
		"/content/resources/blog/canonical.json": `[{"id": "a", "title": {"en": "A"}, "date": "2024-01-01"}]`,
		"/content/resources/blog/custom.yaml":    "- id: a\n  title:\n    en: A2\n  date: \"2024-02-01\"\n",
		"/content/resources/news/canonical.json": `{"broken"`,
	})
	ctx := context.Background()

	canonical, err := src.LoadCanonical(ctx, resource.KindBlog)
	require.NoError(t, err)
	require.Len(t, canonical, 1)
	assert.Equal(t, "A", canonical[0].Multilingual("title").Get(resource.LangEnglish))

	custom, err := src.LoadCustom(ctx, resource.KindBlog)
	require.NoError(t, err)
	require.Len(t, custom, 1)
	assert.Equal(t, "2024-02-01", custom[0].String("date"))
	assert.Equal(t, "A2", custom[0].Multilingual("title").Get(resource.LangEnglish))

	missing, err := src.LoadCustom(ctx, resource.KindUpdates)
	require.NoError(t, err)
	assert.Empty(t, missing)

	_, err = src.LoadCanonical(ctx, resource.KindNews)
	assert.ErrorContains(t, err, "news/canonical.json")
}
