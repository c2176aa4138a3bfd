package aws

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FileStoreClient wraps S3 access for raw uploads and validation reports.
type FileStoreClient struct {
	svc    *s3.Client
	bucket string
}

// NewFileStoreClient creates an S3-backed file store for the given bucket.
func NewFileStoreClient(ctx context.Context, bucket string) (*FileStoreClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	return &FileStoreClient{
		svc:    s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// SourceFileKey returns the object key for an analysis's raw upload.
func SourceFileKey(tenantID, analysisID uuid.UUID) string {
	return fmt.Sprintf("tenants/%s/analyses/%s/source.csv", tenantID, analysisID)
}

// ValidationReportKey returns the object key for an analysis's validation
// report.
func ValidationReportKey(tenantID, analysisID uuid.UUID) string {
	return fmt.Sprintf("tenants/%s/analyses/%s/validation-report.json", tenantID, analysisID)
}

// Upload stores an object under the given key.
func (c *FileStoreClient) Upload(ctx context.Context, key string, content []byte, contentType string) error {
	_, err := c.svc.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload s3://%s/%s", c.bucket, key)
	}
	return nil
}

// Download fetches an object's full contents.
func (c *FileStoreClient) Download(ctx context.Context, key string) ([]byte, error) {
	out, err := c.svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download s3://%s/%s", c.bucket, key)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read s3://%s/%s", c.bucket, key)
	}
	return content, nil
}

// Delete removes an object. Deleting a missing key is not an error.
func (c *FileStoreClient) Delete(ctx context.Context, key string) error {
	_, err := c.svc.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete s3://%s/%s", c.bucket, key)
	}
	return nil
}
