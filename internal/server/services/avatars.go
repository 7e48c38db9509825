package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	sc "github.com/dmitrijs2005/planwise/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// AvatarStorage issues short-lived URLs for reading and writing avatar objects.
type AvatarStorage interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

// S3AvatarStorage presigns requests against an S3-compatible bucket (MinIO in
// development). Presigning is local; the bucket is not contacted.
type S3AvatarStorage struct {
	config *sc.Config
}

func NewS3AvatarStorage(config *sc.Config) *S3AvatarStorage {
	return &S3AvatarStorage{config: config}
}

func avatarKeyPrefix(adminID string) string {
	return "avatars/" + adminID + "/"
}

// NewAvatarKey returns a fresh object key for an admin's avatar.
func NewAvatarKey(adminID string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("%s%d%02d%02d-%s", avatarKeyPrefix(adminID), d.Year(), d.Month(), d.Day(), uuid.New())
}

// OwnsAvatarKey reports whether key lies in the admin's own avatar folder.
func OwnsAvatarKey(adminID, key string) bool {
	return adminID != "" && strings.HasPrefix(key, avatarKeyPrefix(adminID))
}

func (s *S3AvatarStorage) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *S3AvatarStorage) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(pc, ctx, in, s3.WithPresignExpires(s.config.AvatarURLValidityDuration))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (s *S3AvatarStorage) PresignGet(ctx context.Context, key string) (string, error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.config.AvatarURLValidityDuration))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
