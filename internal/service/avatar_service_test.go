package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

func newUpload(data []byte, declaredMIME string) (multipart.File, *multipart.FileHeader) {
	header := &multipart.FileHeader{
		Filename: "avatar",
		Size:     int64(len(data)),
		Header:   textproto.MIMEHeader{},
	}
	if declaredMIME != "" {
		header.Header.Set("Content-Type", declaredMIME)
	}
	return memoryFile{bytes.NewReader(data)}, header
}

func TestUploadRejectsBadInput(t *testing.T) {
	svc := NewAvatarService(newFakeUserStore(), nil, zerolog.Nop())
	actor := models.SessionUser{ID: "ivan", IsLoggedIn: true}
	ctx := context.Background()

	pngHead := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x00}

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.Upload(ctx, actor, nil, nil)
		requireServiceError(t, err, CodeInvalid)
	})

	t.Run("empty file", func(t *testing.T) {
		file, header := newUpload(nil, "image/png")
		_, err := svc.Upload(ctx, actor, file, header)
		requireServiceError(t, err, CodeInvalid)
	})

	t.Run("oversized by declared size", func(t *testing.T) {
		file, header := newUpload(pngHead, "image/png")
		header.Size = maxAvatarBytes + 1
		_, err := svc.Upload(ctx, actor, file, header)
		svcErr := requireServiceError(t, err, CodeInvalid)
		if svcErr.Message != "Image is too large" {
			t.Fatalf("unexpected message: %q", svcErr.Message)
		}
	})

	t.Run("unrecognized content", func(t *testing.T) {
		file, header := newUpload([]byte("GIF89a..."), "image/gif")
		_, err := svc.Upload(ctx, actor, file, header)
		svcErr := requireServiceError(t, err, CodeInvalid)
		if svcErr.Message != "Only JPEG, PNG and WebP images are allowed" {
			t.Fatalf("unexpected message: %q", svcErr.Message)
		}
	})

	t.Run("declared type contradicts content", func(t *testing.T) {
		file, header := newUpload(pngHead, "image/jpeg")
		_, err := svc.Upload(ctx, actor, file, header)
		requireServiceError(t, err, CodeInvalid)
	})
}
