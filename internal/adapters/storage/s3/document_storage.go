// Package s3 uploads KYC documents to an S3 bucket.
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type DocumentStorage struct {
	uploader *s3manager.Uploader
	bucket   string
	region   string
}

var _ portsrepo.DocumentStorage = (*DocumentStorage)(nil)

func NewDocumentStorage(cfg Config) (*DocumentStorage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &DocumentStorage{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
	}, nil
}

// Upload stores body under key and returns the object URL.
func (s *DocumentStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	if out.Location != "" {
		return out.Location, nil
	}
	return ObjectURL(s.bucket, s.region, key), nil
}

// ObjectURL is the virtual-hosted style URL of key.
func ObjectURL(bucket, region, key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, strings.Join(segments, "/"))
}
