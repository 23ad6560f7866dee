package digest

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Publisher uploads rendered digest artifacts to an S3 bucket so the
// latest digest can be served statically. Publishing is optional: when
// no bucket is configured the step is skipped.
type Publisher struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewPublisher builds a publisher for the given bucket, or nil when
// bucket is empty. Credentials come from the standard AWS chain.
func NewPublisher(ctx context.Context, bucket, region, prefix string) (*Publisher, error) {
	if bucket == "" {
		return nil, nil
	}
	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Publisher{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

// Publish uploads each file under the configured prefix, keyed by base
// name. A failed upload is logged and does not block the others.
func (p *Publisher) Publish(ctx context.Context, paths []string) int {
	uploaded := 0
	for _, path := range paths {
		if err := p.putFile(ctx, path); err != nil {
			log.Printf("Warning: upload failed for %s: %v", path, err)
			continue
		}
		uploaded++
	}
	return uploaded
}

func (p *Publisher) putFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	key := filepath.Base(path)
	if p.prefix != "" {
		key = p.prefix + "/" + key
	}
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentTypeFor(path)),
	})
	return err
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".csv":
		return "text/csv; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
