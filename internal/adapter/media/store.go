package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrUnknownBucket indicates an upload target outside the fixed bucket set.
var ErrUnknownBucket = errors.New("unknown media bucket")

// ErrEmptyFilename indicates a missing original filename.
var ErrEmptyFilename = errors.New("empty filename")

// ErrUnsupportedType indicates a file extension the bucket does not accept.
var ErrUnsupportedType = errors.New("unsupported file type")

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

var audioExts = map[string]bool{
	".mp3": true, ".wav": true, ".ogg": true, ".m4a": true, ".flac": true, ".aac": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".webm": true,
}

// allowedExt reports whether the extension fits the bucket. Feed buckets
// accept any media kind, audio only audio, the rest only images.
func allowedExt(bucket, ext string) bool {
	ext = strings.ToLower(ext)
	switch bucket {
	case "audio":
		return audioExts[ext]
	case "posts", "stories":
		return imageExts[ext] || audioExts[ext] || videoExts[ext]
	default:
		return imageExts[ext]
	}
}

// bucketFolders maps public bucket names to storage folders.
var bucketFolders = map[string]string{
	"posts":           "audifyx/posts",
	"audio":           "audifyx/audio",
	"stories":         "audifyx/stories",
	"profile_images":  "audifyx/profile_images",
	"profile_banners": "audifyx/profile_banners",
	"payout-images":   "audifyx/payout_images",
	"avatars":         "audifyx/avatars",
}

// Store persists user uploaded media and returns a public URL.
type Store interface {
	Upload(ctx context.Context, bucket string, userID int64, filename string, file io.Reader) (string, error)
}

type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryStore uploads media to Cloudinary, one folder per bucket.
type CloudinaryStore struct {
	api    uploadAPI
	logger *slog.Logger
	now    func() time.Time
}

// NewCloudinaryStore creates the store from a cloudinary:// URL.
func NewCloudinaryStore(cloudinaryURL string, logger *slog.Logger) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init media store: %w", err)
	}
	return &CloudinaryStore{api: &cld.Upload, logger: logger, now: time.Now}, nil
}

// Upload stores the file under {bucket folder}/{userID}/{timestamp}_{filename}
// and returns the public URL.
func (s *CloudinaryStore) Upload(ctx context.Context, bucket string, userID int64, filename string, file io.Reader) (string, error) {
	folder, ok := bucketFolders[bucket]
	if !ok {
		return "", ErrUnknownBucket
	}

	name := sanitizeFilename(filename)
	if name == "" {
		return "", ErrEmptyFilename
	}
	if !allowedExt(bucket, filepath.Ext(filename)) {
		return "", ErrUnsupportedType
	}

	publicID := fmt.Sprintf("%d/%d_%s", userID, s.now().Unix(), name)
	result, err := s.api.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("media upload: %w", err)
	}
	if result.Error.Message != "" {
		s.logger.Error("media upload rejected", slog.String("bucket", bucket), slog.String("message", result.Error.Message))
		return "", fmt.Errorf("media upload: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

// sanitizeFilename strips path components and the extension, Cloudinary adds
// its own based on content.
func sanitizeFilename(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "." || name == "/" {
		return ""
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

// Buckets lists the accepted upload targets.
func Buckets() []string {
	names := make([]string, 0, len(bucketFolders))
	for name := range bucketFolders {
		names = append(names, name)
	}
	return names
}

// ErrStorageDisabled is returned by DisabledStore for every upload.
var ErrStorageDisabled = errors.New("media storage not configured")

// DisabledStore rejects uploads when no storage backend is configured.
type DisabledStore struct {
	logger *slog.Logger
}

// NewDisabledStore creates the fallback store.
func NewDisabledStore(logger *slog.Logger) DisabledStore {
	return DisabledStore{logger: logger}
}

// Upload rejects the file.
func (s DisabledStore) Upload(ctx context.Context, bucket string, userID int64, filename string, file io.Reader) (string, error) {
	s.logger.Warn("dropping upload, media storage disabled",
		slog.String("bucket", bucket),
		slog.Int64("user_id", userID))
	return "", ErrStorageDisabled
}
