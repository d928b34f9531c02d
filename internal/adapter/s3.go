package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/remote-mirror/internal/config"
	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/internal/utils"
	"github.com/MKhiriev/remote-mirror/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Delimiter = "/"

// s3API is the subset of *s3.Client used by the adapter.
type s3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Adapter struct {
	client s3API
	bucket string

	// requestTimeout bounds a listing call; GetObject bodies stream under
	// the caller's context.
	requestTimeout time.Duration

	logger *logger.Logger
}

// s3Cursor is the decoded form of the opaque continuation cursor. The prefix
// travels with the token because ListObjectsV2 needs both.
type s3Cursor struct {
	Prefix string `json:"prefix"`
	Token  string `json:"token"`
}

// NewS3Adapter constructs an S3 implementation of [RemoteAdapter]. Keys are
// treated as paths with "/" separators; common prefixes become folders.
//
// Static credentials are used when cfg.AccessKeyID is set, the default AWS
// credential chain otherwise. cfg.Endpoint and cfg.UsePathStyle target
// S3-compatible servers such as MinIO.
func NewS3Adapter(ctx context.Context, cfg config.S3, log *logger.Logger) (RemoteAdapter, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, awsconfig.WithHTTPClient(newS3HTTPClient(cfg.RequestTimeout)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	a := newS3Adapter(client, cfg.Bucket, log)
	a.requestTimeout = cfg.RequestTimeout
	return a, nil
}

// newS3HTTPClient bounds connecting and waiting for response headers, not
// reading the body.
func newS3HTTPClient(timeout time.Duration) *awshttp.BuildableClient {
	return awshttp.NewBuildableClient().
		WithDialerOptions(func(d *net.Dialer) {
			d.Timeout = timeout
		}).
		WithTransportOptions(func(tr *http.Transport) {
			tr.TLSHandshakeTimeout = timeout
			tr.ResponseHeaderTimeout = timeout
		})
}

func newS3Adapter(client s3API, bucket string, log *logger.Logger) *s3Adapter {
	return &s3Adapter{client: client, bucket: bucket, logger: log}
}

// ListFolder implements [RemoteAdapter].
func (a *s3Adapter) ListFolder(ctx context.Context, path string) (models.ListingPage, error) {
	return a.list(ctx, s3Prefix(path), "")
}

// ListFolderContinue implements [RemoteAdapter].
func (a *s3Adapter) ListFolderContinue(ctx context.Context, cursor string) (models.ListingPage, error) {
	c, err := decodeS3Cursor(cursor)
	if err != nil {
		return models.ListingPage{}, err
	}
	return a.list(ctx, c.Prefix, c.Token)
}

func (a *s3Adapter) list(ctx context.Context, prefix, token string) (models.ListingPage, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:    aws.String(a.bucket),
		Delimiter: aws.String(s3Delimiter),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	if token != "" {
		input.ContinuationToken = aws.String(token)
	}

	ctx, cancel := withRequestTimeout(ctx, a.requestTimeout)
	defer cancel()

	out, err := a.client.ListObjectsV2(ctx, input)
	if err != nil {
		return models.ListingPage{}, mapS3Error(err)
	}

	entries := make([]models.RemoteEntry, 0, len(out.CommonPrefixes)+len(out.Contents))
	for _, p := range out.CommonPrefixes {
		folderKey := strings.TrimSuffix(aws.ToString(p.Prefix), s3Delimiter)
		entries = append(entries, models.FolderEntry{
			Name:        utils.BaseName(folderKey),
			PathDisplay: utils.NormalizePath(folderKey),
		})
	}
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		// Zero-byte "folder marker" objects carry the prefix itself.
		if key == prefix || strings.HasSuffix(key, s3Delimiter) {
			continue
		}
		entries = append(entries, models.FileEntry{
			Name:        utils.BaseName(key),
			PathDisplay: utils.NormalizePath(key),
			Size:        aws.ToInt64(obj.Size),
			ModTime:     aws.ToTime(obj.LastModified),
		})
	}

	a.logger.Debug().
		Str("bucket", a.bucket).
		Str("prefix", prefix).
		Int("entries", len(entries)).
		Bool("truncated", aws.ToBool(out.IsTruncated)).
		Msg("listed objects")

	page := models.ListingPage{
		Entries: entries,
		HasMore: aws.ToBool(out.IsTruncated) && aws.ToString(out.NextContinuationToken) != "",
	}
	if page.HasMore {
		page.Cursor = encodeS3Cursor(s3Cursor{Prefix: prefix, Token: aws.ToString(out.NextContinuationToken)})
	}

	return page, nil
}

// Download implements [RemoteAdapter].
func (a *s3Adapter) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(strings.TrimPrefix(utils.NormalizePath(path), "/")),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", path, mapS3Error(err))
	}
	return out.Body, nil
}

// s3Prefix maps a normalized folder path to a key prefix: "/" is the empty
// prefix, "/a/b" is "a/b/".
func s3Prefix(path string) string {
	path = utils.NormalizePath(path)
	if path == utils.RootPath {
		return ""
	}
	return strings.TrimPrefix(path, "/") + s3Delimiter
}

func encodeS3Cursor(c s3Cursor) string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeS3Cursor(cursor string) (s3Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return s3Cursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var c s3Cursor
	if err = json.Unmarshal(raw, &c); err != nil || c.Token == "" {
		return s3Cursor{}, fmt.Errorf("%w: %q", ErrInvalidCursor, cursor)
	}
	return c, nil
}
