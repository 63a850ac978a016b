package s3blob

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hashedalex/polydelta/internal/domain"
)

// snapshotCacheControl keeps CDN copies of the snapshot short-lived; the
// export job overwrites the same keys on every run.
const snapshotCacheControl = "public, max-age=60"

// Writer implements domain.BlobWriter. Uploads go through the SDK upload
// manager so bodies of unknown length need not be seekable.
type Writer struct {
	client   *Client
	uploader *manager.Uploader
}

// NewWriter creates a Writer that uploads into the client's bucket under its
// key prefix.
func NewWriter(c *Client) *Writer {
	return &Writer{
		client:   c,
		uploader: manager.NewUploader(c.s3),
	}
}

// Put uploads data to path (relative to the configured prefix).
func (w *Writer) Put(ctx context.Context, path string, data io.Reader, contentType string) error {
	key := w.client.Key(path)
	_, err := w.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(w.client.bucket),
		Key:          aws.String(key),
		Body:         data,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(snapshotCacheControl),
	})
	if err != nil {
		return fmt.Errorf("s3blob: upload %s: %w", key, err)
	}
	return nil
}

// Compile-time interface check.
var _ domain.BlobWriter = (*Writer)(nil)
