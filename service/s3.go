package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Service is the S3/R2 image storage backend, selected with STORAGE_BACKEND=s3.
// Objects are public; the returned URL is publicBaseURL + key.
type S3Service struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Service(ctx context.Context, bucket, region, endpoint, accessKeyID, secretAccessKey, publicBaseURL string) (*S3Service, error) {
	if bucket == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET is required")
	}
	if publicBaseURL == "" {
		return nil, fmt.Errorf("S3_PUBLIC_BASE_URL is required")
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			// R2 and other S3-compatible stores need an explicit endpoint
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Service{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Upload stores the image under portfolio/ with a random key and returns its
// public URL. The key doubles as the public id.
func (s *S3Service) Upload(ctx context.Context, filename, contentType string, data []byte) (*UploadResult, error) {
	ext := filepath.Ext(filename)
	key := "portfolio/" + uuid.New().String() + ext
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: s.publicBaseURL + "/" + key, PublicID: key}, nil
}
