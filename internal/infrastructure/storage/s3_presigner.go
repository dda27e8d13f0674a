// Package storage resolves video source keys to playback URLs.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"opal-server/internal/config"
)

// SourceResolver turns a stored video source key into a URL a player can use.
type SourceResolver interface {
	// ResolveSource returns "" when resolution is unavailable; listings then
	// fall back to exposing the raw key.
	ResolveSource(ctx context.Context, key string) string
}

// S3Presigner issues short-lived presigned GET URLs for video objects in
// S3-compatible storage.
type S3Presigner struct {
	bucket    string
	ttl       time.Duration
	presigner *s3.PresignClient
	log       zerolog.Logger
	disabled  bool
}

var _ SourceResolver = (*S3Presigner)(nil)

func NewS3Presigner(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*S3Presigner, error) {
	logger := log.With().Str("component", "s3-presigner").Logger()
	presigner := &S3Presigner{
		bucket: strings.TrimSpace(cfg.S3Bucket),
		ttl:    cfg.S3PresignTTL,
		log:    logger,
	}

	accessKey := strings.TrimSpace(cfg.S3AccessKeyID)
	secretKey := strings.TrimSpace(cfg.S3SecretAccessKey)
	if presigner.bucket == "" || accessKey == "" || secretKey == "" {
		logger.Warn().Msg("S3_BUCKET or credentials are not set; video sources will be served as raw keys")
		presigner.disabled = true
		return presigner, nil
	}

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.S3Endpoint != "" {
			return aws.Endpoint{
				URL:           cfg.S3Endpoint,
				PartitionID:   "aws",
				SigningRegion: cfg.S3Region,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	presigner.presigner = s3.NewPresignClient(client)
	return presigner, nil
}

// ResolveSource implements SourceResolver.
func (p *S3Presigner) ResolveSource(ctx context.Context, key string) string {
	if p.disabled || key == "" {
		return ""
	}

	req, err := p.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		p.log.Warn().Err(err).Str("key", key).Msg("failed to presign video source")
		return ""
	}
	return req.URL
}
