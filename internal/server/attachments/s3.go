// Package attachments issues presigned S3 URLs for job photos. Clients
// upload straight to object storage and then save the returned key into
// details.photos.
package attachments

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
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
)

// Settings describe the S3-compatible bucket holding job photos.
type Settings struct {
	Region      string
	AccessKey   string
	SecretKey   string
	Bucket      string
	Endpoint    string
	URLValidity time.Duration
}

// Upload is a presigned PUT target.
type Upload struct {
	StorageKey string
	URL        string
}

type Presigner interface {
	PresignPhotoUpload(ctx context.Context, draftID string) (*Upload, error)
}

// S3Presigner signs requests against an S3-compatible endpoint (AWS, MinIO).
type S3Presigner struct {
	settings Settings
	now      func() time.Time
}

func NewS3Presigner(s Settings) *S3Presigner {
	if s.URLValidity <= 0 {
		s.URLValidity = 15 * time.Minute
	}
	return &S3Presigner{settings: s, now: time.Now}
}

// StorageKey builds a unique object key grouped by draft and day.
func (p *S3Presigner) StorageKey(draftID string) string {
	d := p.now().UTC()
	return fmt.Sprintf("drafts/%s/%d/%02d/%02d/%v", draftID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (p *S3Presigner) client(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(p.settings.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			p.settings.AccessKey,
			p.settings.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if p.settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(p.settings.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3PresignClient(client), nil
}

func (p *S3Presigner) PresignPhotoUpload(ctx context.Context, draftID string) (*Upload, error) {
	pc, err := p.client(ctx)
	if err != nil {
		return nil, err
	}

	bucket := p.settings.Bucket
	key := p.StorageKey(draftID)

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(p.settings.URLValidity))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}
	return &Upload{StorageKey: key, URL: req.URL}, nil
}
