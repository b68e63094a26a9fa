package publish

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/el-go/el/pkg/render"
)

// S3API defines the S3 operations used by S3Publisher.
// Satisfied by *s3.Client; narrow so tests can supply a fake.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads rendered pages to an S3 bucket.
type S3Publisher struct {
	client S3API
	bucket string
	prefix string
	logger *slog.Logger
}

// S3Option configures an S3Publisher.
type S3Option func(*S3Publisher)

// WithPrefix sets a key prefix for all uploaded objects.
func WithPrefix(prefix string) S3Option {
	return func(p *S3Publisher) {
		p.prefix = strings.Trim(prefix, "/")
	}
}

// NewS3Publisher creates a publisher that uploads through the given
// client. Construct the client in main() with the AWS config of your
// choice and inject it here.
func NewS3Publisher(client S3API, bucket string, opts ...S3Option) *S3Publisher {
	p := &S3Publisher{
		client: client,
		bucket: bucket,
		logger: slog.Default().With("component", "publish"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish renders every page in the site and uploads it to the bucket
// with a text/html content type. Fails on the first render or upload
// error.
func (p *S3Publisher) Publish(ctx context.Context, site *Site) error {
	for _, path := range site.Paths() {
		doc, _ := site.Page(path)

		html, err := render.DocumentString(doc)
		if err != nil {
			return fmt.Errorf("render %s: %w", path, err)
		}

		key := objectPath(path)
		if p.prefix != "" {
			key = p.prefix + "/" + key
		}

		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        strings.NewReader(html),
			ContentType: aws.String("text/html; charset=utf-8"),
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", path, err)
		}

		p.logger.Info("uploaded page", "path", path, "bucket", p.bucket, "key", key, "bytes", len(html))
	}

	return nil
}
