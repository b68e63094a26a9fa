package publish

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	puts []*s3.PutObjectInput
	err  error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, params)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Publisher_UploadsRenderedPages(t *testing.T) {
	client := &fakeS3{}
	pub := NewS3Publisher(client, "my-bucket", WithPrefix("/site/"))

	site := NewSite().
		Add("/", testPage("Home")).
		Add("/about", testPage("About"))

	if err := pub.Publish(context.Background(), site); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	if len(client.puts) != 2 {
		t.Fatalf("got %d puts, want 2", len(client.puts))
	}

	first := client.puts[0]
	if aws.ToString(first.Bucket) != "my-bucket" {
		t.Fatalf("bucket = %q", aws.ToString(first.Bucket))
	}
	if aws.ToString(first.Key) != "site/index.html" {
		t.Fatalf("key = %q, want site/index.html", aws.ToString(first.Key))
	}
	if aws.ToString(first.ContentType) != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", aws.ToString(first.ContentType))
	}

	body, err := io.ReadAll(first.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if !strings.Contains(string(body), "<title>Home</title>") {
		t.Fatalf("body missing title: %q", body)
	}

	if aws.ToString(client.puts[1].Key) != "site/about/index.html" {
		t.Fatalf("second key = %q", aws.ToString(client.puts[1].Key))
	}
}

func TestS3Publisher_FailsFastOnUploadError(t *testing.T) {
	uploadErr := errors.New("access denied")
	client := &fakeS3{err: uploadErr}
	pub := NewS3Publisher(client, "my-bucket")

	site := NewSite().Add("/", testPage("Home"))

	err := pub.Publish(context.Background(), site)
	if !errors.Is(err, uploadErr) {
		t.Fatalf("Publish() error = %v, want wrapped %v", err, uploadErr)
	}
}

func TestS3Publisher_HonorsContextCancellation(t *testing.T) {
	client := &fakeS3{}
	pub := NewS3Publisher(client, "my-bucket")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	site := NewSite().Add("/", testPage("Home"))

	err := pub.Publish(ctx, site)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Publish() error = %v, want context.Canceled", err)
	}
}
