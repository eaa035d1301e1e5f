package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// MaxUploadSize caps image uploads at 5 MB; anything larger is rejected
// before any network write.
const MaxUploadSize = 5 << 20

// allowedImageTypes maps accepted MIME types to the extension used in the
// generated object key.
var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

var (
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image exceeds maximum size")
	ErrMalformedObjectURL   = errors.New("malformed object url")
)

// ObjectStorage is the bucket surface the upload handlers depend on. Upload
// returns the publicly resolvable URL of the written object; Delete takes a
// previously issued public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

// GCSStorage writes to a single Google Cloud Storage bucket with public
// object URLs of the form https://storage.googleapis.com/<bucket>/<key>.
type GCSStorage struct {
	client *storage.Client
	bucket string
}

func NewGCSStorage(ctx context.Context, bucket, credentialsFile string) (*GCSStorage, error) {
	if bucket == "" {
		return nil, errors.New("storage bucket name is required")
	}

	var opts []option.ClientOption
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer for object %q: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func (s *GCSStorage) Delete(ctx context.Context, publicURL string) error {
	key, err := ObjectKeyFromURL(publicURL, s.bucket)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.client.Bucket(s.bucket).Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %q in bucket %q: %w", key, s.bucket, err)
	}
	return nil
}

func (s *GCSStorage) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key)
}

// ObjectKeyFromURL recovers the storage key from a previously issued public
// URL by locating the bucket-name segment and taking everything after it. A
// URL that does not reference the bucket is malformed input, not a miss.
func ObjectKeyFromURL(publicURL, bucket string) (string, error) {
	marker := "/" + bucket + "/"
	idx := strings.Index(publicURL, marker)
	if idx < 0 {
		return "", fmt.Errorf("%w: %q does not reference bucket %q", ErrMalformedObjectURL, publicURL, bucket)
	}
	key := publicURL[idx+len(marker):]
	if q := strings.IndexByte(key, '?'); q >= 0 {
		key = key[:q]
	}
	if key == "" {
		return "", fmt.Errorf("%w: %q has an empty object path", ErrMalformedObjectURL, publicURL)
	}
	return key, nil
}

// ValidateImageUpload checks the declared content type against the image
// allow-list and enforces the size cap. Runs before anything touches the
// bucket.
func ValidateImageUpload(contentType string, size int64) error {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedImageType, contentType)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("%w: %d bytes", ErrImageTooLarge, size)
	}
	return nil
}

// AllowedImageTypes lists the accepted MIME types, for error messages.
func AllowedImageTypes() []string {
	types := make([]string, 0, len(allowedImageTypes))
	for t := range allowedImageTypes {
		types = append(types, t)
	}
	return types
}

// ObjectKey builds a content-namespaced key for an uploaded file:
// <folder>/<timestamp>-<sanitized-original-name>.<ext>. The timestamp keeps
// repeated uploads of the same file from colliding.
func ObjectKey(folder, originalName, contentType string) string {
	ext := allowedImageTypes[contentType]
	base := sanitizeFileName(strings.TrimSuffix(originalName, filepath.Ext(originalName)))
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), base, ext)
}

// sanitizeFileName lowercases the name and replaces anything outside
// [a-z0-9-_] with a hyphen, collapsing runs.
func sanitizeFileName(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
