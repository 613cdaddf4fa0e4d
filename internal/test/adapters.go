package test

import (
	"context"
	"io"
	"sync"
)

// MediaStoreStub simulates the media storage adapter.
type MediaStoreStub struct {
	UploadFn func(context.Context, string, int64, string, io.Reader) (string, error)
}

// Upload returns configured URL or a deterministic default.
func (s MediaStoreStub) Upload(ctx context.Context, bucket string, userID int64, filename string, file io.Reader) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, bucket, userID, filename, file)
	}
	return "https://cdn/" + bucket + "/" + filename, nil
}

// SentEmail records one delivered message.
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// MailerStub records outbound email.
type MailerStub struct {
	SendFn func(context.Context, string, string, string) error
	Sent   []SentEmail
	mu     sync.Mutex
}

// Send records the message or delegates to the configured handler.
func (s *MailerStub) Send(ctx context.Context, to, subject, htmlBody string) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, to, subject, htmlBody)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, SentEmail{To: to, Subject: subject, Body: htmlBody})
	return nil
}
