package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type uploadStub struct {
	params uploader.UploadParams
	result *uploader.UploadResult
	err    error
}

func (s *uploadStub) Upload(_ context.Context, _ interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestStore(stub *uploadStub) *CloudinaryStore {
	return &CloudinaryStore{
		api:    stub,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:    func() time.Time { return time.Unix(1700000000, 0) },
	}
}

func TestCloudinaryStoreUpload(t *testing.T) {
	stub := &uploadStub{result: &uploader.UploadResult{SecureURL: "https://res.cloudinary.com/demo/a.png"}}
	store := newTestStore(stub)

	url, err := store.Upload(context.Background(), "avatars", 7, "My Photo.PNG", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://res.cloudinary.com/demo/a.png" {
		t.Fatalf("unexpected url: %s", url)
	}
	if stub.params.Folder != "audifyx/avatars" {
		t.Fatalf("unexpected folder: %s", stub.params.Folder)
	}
	if stub.params.PublicID != "7/1700000000_My_Photo" {
		t.Fatalf("unexpected public id: %s", stub.params.PublicID)
	}
}

func TestCloudinaryStoreUploadValidation(t *testing.T) {
	store := newTestStore(&uploadStub{result: &uploader.UploadResult{}})

	if _, err := store.Upload(context.Background(), "warez", 7, "a.png", strings.NewReader("x")); !errors.Is(err, ErrUnknownBucket) {
		t.Fatalf("expected unknown bucket, got %v", err)
	}
	if _, err := store.Upload(context.Background(), "posts", 7, "  ", strings.NewReader("x")); !errors.Is(err, ErrEmptyFilename) {
		t.Fatalf("expected empty filename, got %v", err)
	}
	if _, err := store.Upload(context.Background(), "avatars", 7, "track.mp3", strings.NewReader("x")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type for audio in an image bucket, got %v", err)
	}
	if _, err := store.Upload(context.Background(), "audio", 7, "cover.png", strings.NewReader("x")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type for image in the audio bucket, got %v", err)
	}
}

func TestAllowedExt(t *testing.T) {
	cases := []struct {
		bucket string
		ext    string
		want   bool
	}{
		{"audio", ".MP3", true},
		{"audio", ".flac", true},
		{"audio", ".png", false},
		{"posts", ".mp4", true},
		{"posts", ".webp", true},
		{"stories", ".mov", true},
		{"avatars", ".jpeg", true},
		{"avatars", ".webm", false},
		{"payout-images", ".exe", false},
	}
	for _, tc := range cases {
		if got := allowedExt(tc.bucket, tc.ext); got != tc.want {
			t.Errorf("allowedExt(%q, %q) = %v, want %v", tc.bucket, tc.ext, got, tc.want)
		}
	}
}

func TestCloudinaryStoreUploadErrors(t *testing.T) {
	store := newTestStore(&uploadStub{err: errors.New("network")})
	if _, err := store.Upload(context.Background(), "posts", 7, "a.png", strings.NewReader("x")); err == nil {
		t.Fatal("expected error")
	}

	store = newTestStore(&uploadStub{result: &uploader.UploadResult{Error: api.ErrorResp{Message: "invalid signature"}}})
	if _, err := store.Upload(context.Background(), "posts", 7, "a.png", strings.NewReader("x")); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuckets(t *testing.T) {
	names := Buckets()
	if len(names) != len(bucketFolders) {
		t.Fatalf("unexpected bucket count: %d", len(names))
	}
}
