package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pageza/fittrack/backend/config"
)

// reportURLExpiry is how long a presigned report link stays valid.
const reportURLExpiry = 24 * time.Hour

// S3ReportArchive uploads report snapshots to the configured bucket.
type S3ReportArchive struct {
	s3Config *config.S3Config
}

// Ensure S3ReportArchive implements ReportArchive
var _ ReportArchive = (*S3ReportArchive)(nil)

// NewS3ReportArchive creates a new S3ReportArchive instance
func NewS3ReportArchive(s3Config *config.S3Config) *S3ReportArchive {
	return &S3ReportArchive{s3Config: s3Config}
}

// Put uploads body as JSON under key and returns a presigned download URL.
func (a *S3ReportArchive) Put(ctx context.Context, key string, body []byte) (string, error) {
	_, err := a.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report to S3: %w", err)
	}
	return a.s3Config.GeneratePresignedURL(ctx, key, reportURLExpiry)
}
