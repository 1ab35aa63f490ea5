package storage

import (
	"context"
	"fmt"
	"io"
	neturl "net/url"
	"strings"
	"time"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	appconfig "vitrine_backend/pkg/config"
)

// ObjectKeyPrefix is where every listing image lives in the bucket.
const ObjectKeyPrefix = "properties/"

// publicPathFormat mirrors the hosted-storage URL layout the frontend and
// existing rows already use: <base>/storage/v1/object/public/<bucket>/<key>
const publicPathFormat = "/storage/v1/object/public/%s/"

type Client struct {
	s3        *s3.Client
	bucket    string
	publicURL string
}

type Object struct {
	Key          string
	LastModified time.Time
}

var client *Client

func InitStorage(cfg appconfig.StorageConfig) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = strings.TrimRight(cfg.Endpoint, "/")
	}

	client = &Client{
		s3:        s3Client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}
	return nil
}

// GetClient returns nil when object storage is not configured. Callers treat
// that as a recognized state, not an error.
func GetClient() *Client {
	return client
}

func (c *Client) Bucket() string {
	return c.bucket
}

func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(c.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return fmt.Errorf("could not upload %s: %v", key, err)
	}
	return nil
}

// PublicURL builds the public address of an uploaded object.
func (c *Client) PublicURL(key string) string {
	return c.publicURL + fmt.Sprintf(publicPathFormat, c.bucket) + key
}

// Remove deletes the given object keys in one batch call.
func (c *Client) Remove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}

	_, err := c.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(c.bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	return err
}

// List returns every object under prefix.
func (c *Client) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object

	paginator := s3.NewListObjectsV2Paginator(c.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			objects = append(objects, Object{
				Key:          aws.ToString(obj.Key),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	return objects, nil
}

// KeyFromPublicURL recovers the object key from a public URL. URLs that do
// not carry the public path marker (external images, CDN links) report false
// and are skipped by callers rather than treated as errors.
func KeyFromPublicURL(url, bucket string) (string, bool) {
	marker := fmt.Sprintf(publicPathFormat, bucket)
	idx := strings.Index(url, marker)
	if idx == -1 {
		return "", false
	}

	key := url[idx+len(marker):]
	if decoded, err := neturl.PathUnescape(key); err == nil {
		key = decoded
	}
	if key == "" {
		return "", false
	}
	return key, true
}

// NewObjectKey derives a collision-resistant key for an uploaded file.
func NewObjectKey(filename string) string {
	return ObjectKeyPrefix + uuid.NewString() + "-" + SanitizeFileName(filename)
}

// SanitizeFileName strips diacritics, replaces anything outside
// [A-Za-z0-9._-] with a dash and lowercases the result.
func SanitizeFileName(name string) string {
	decomposed := norm.NFD.String(name)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining mark left over from decomposition
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
			r == '.' || r == '_' || r == '-' {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('-')
	}

	return strings.ToLower(b.String())
}
