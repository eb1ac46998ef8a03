package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

// s3API is the subset of *s3.Client used by S3Store.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectVersions(ctx context.Context, in *s3.ListObjectVersionsInput, optFns ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	CopyObject(ctx context.Context, in *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, in *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutBucketVersioning(ctx context.Context, in *s3.PutBucketVersioningInput, optFns ...func(*s3.Options)) (*s3.PutBucketVersioningOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Options configures the S3 (or MinIO) connection.
type S3Options struct {
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	BaseEndpoint string
}

// S3Store is a Store over an S3 bucket with versioning enabled.
type S3Store struct {
	client  s3API
	presign presignAPI
	bucket  string
}

// NewS3Store builds an S3 client from opts. A non-empty BaseEndpoint switches
// to path-style addressing, as MinIO expects.
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Store(client, s3.NewPresignClient(client), opts.Bucket), nil
}

func newS3Store(client s3API, presign presignAPI, bucket string) *S3Store {
	return &S3Store{client: client, presign: presign, bucket: bucket}
}

// EnsureBucket creates the bucket when missing and turns versioning on.
func (s *S3Store) EnsureBucket(ctx context.Context, region string) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		if !isNotFound(err) {
			return storeError("head bucket", err)
		}
		in := &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}
		if region != "" && region != "us-east-1" {
			in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(region),
			}
		}
		if _, err := s.client.CreateBucket(ctx, in); err != nil {
			return storeError("create bucket", err)
		}
	}

	_, err = s.client.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket: aws.String(s.bucket),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		return storeError("enable versioning", err)
	}
	return nil
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	out, err := s.client.PutObject(ctx, in)
	if err != nil {
		return "", storeError("put object", err)
	}
	return aws.ToString(out.VersionId), nil
}

func (s *S3Store) ListVersions(ctx context.Context, key, token string, pageSize int) (*models.VersionPage, error) {
	marker, err := decodePageToken(token)
	if err != nil {
		return nil, err
	}

	in := &s3.ListObjectVersionsInput{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(key),
	}
	if pageSize > 0 {
		in.MaxKeys = aws.Int32(int32(pageSize))
	}
	if marker.KeyMarker != "" {
		in.KeyMarker = aws.String(marker.KeyMarker)
		in.VersionIdMarker = aws.String(marker.VersionIDMarker)
	}

	out, err := s.client.ListObjectVersions(ctx, in)
	if err != nil {
		return nil, storeError("list object versions", err)
	}

	page := &models.VersionPage{Versions: []models.BlobVersion{}}
	for _, v := range out.Versions {
		// the prefix also matches longer keys such as file_0010 for file_001
		if aws.ToString(v.Key) != key {
			continue
		}
		page.Versions = append(page.Versions, models.BlobVersion{
			VersionID:    aws.ToString(v.VersionId),
			LastModified: aws.ToTime(v.LastModified),
			IsLatest:     aws.ToBool(v.IsLatest),
			Size:         aws.ToInt64(v.Size),
		})
	}

	// keys are listed in order, so once the marker moves past key there is nothing left for it
	if aws.ToBool(out.IsTruncated) && aws.ToString(out.NextKeyMarker) == key {
		page.NextPageToken = encodePageToken(pageToken{
			KeyMarker:       key,
			VersionIDMarker: aws.ToString(out.NextVersionIdMarker),
		})
	}

	return page, nil
}

func (s *S3Store) Restore(ctx context.Context, key, versionID string) (string, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket:    aws.String(s.bucket),
		Key:       aws.String(key),
		VersionId: aws.String(versionID),
	})
	if err != nil {
		if !isNotFound(err) && !isBadVersion(err) {
			return "", storeError("head object version", err)
		}
		exists, eerr := s.Exists(ctx, key)
		if eerr != nil {
			return "", eerr
		}
		if !exists {
			return "", fmt.Errorf("%w: %s", common.ErrNotFound, key)
		}
		return "", fmt.Errorf("%w: %s@%s", common.ErrVersionNotFound, key, versionID)
	}

	out, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		Key:        aws.String(key),
		CopySource: aws.String(copySource(s.bucket, key, versionID)),
	})
	if err != nil {
		return "", storeError("copy object", err)
	}
	return aws.ToString(out.VersionId), nil
}

func (s *S3Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, storeError("head object", err)
	}
	return true, nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", storeError("presign get", err)
	}
	return req.URL, nil
}

func copySource(bucket, key, versionID string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return bucket + "/" + strings.Join(parts, "/") + "?versionId=" + url.QueryEscape(versionID)
}

// isNotFound reports whether err is an S3 "no such object/version" answer.
// A delete marker answers HEAD with MethodNotAllowed; a malformed version id
// with InvalidArgument. Both mean the requested version cannot be read.
func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	var nf *types.NotFound
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsk) || errors.As(err, &nf) || errors.As(err, &nsb) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchVersion", "NoSuchBucket", "InvalidArgument", "MethodNotAllowed":
			return true
		}
	}
	return false
}

// isBadVersion reports a bodiless 400 on a versioned HEAD. The SDK derives
// the code from the status line, so a malformed version id arrives as
// BadRequest rather than InvalidArgument.
func isBadVersion(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "BadRequest"
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrStoreUnavailable, op, err)
}
