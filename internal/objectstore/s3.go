package objectstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/luminameet/meetingflow/internal/fault"
)

// S3Client abstracts the S3 API operation used by S3Uploader.
// The s3.Client type satisfies this interface.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader implements Uploader backed by Amazon S3 or any S3-compatible
// object store. The caller configures the client with credentials, region,
// and endpoint.
type S3Uploader struct {
	client        S3Client
	bucket        string
	publicBaseURL string
}

// NewS3 creates an S3-backed Uploader. publicBaseURL is the prefix under
// which uploaded keys are publicly reachable.
func NewS3(client S3Client, bucket, publicBaseURL string) *S3Uploader {
	return &S3Uploader{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fault.Wrap(fault.KindUpload, "objectstore.upload", err)
	}
	return u.publicBaseURL + "/" + key, nil
}
