package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"time"

	"github.com/rs/zerolog"

	"github.com/ilyahahaha/vneshtata-new/internal/ids"
	"github.com/ilyahahaha/vneshtata-new/internal/media/sniffer"
	"github.com/ilyahahaha/vneshtata-new/internal/models"
	"github.com/ilyahahaha/vneshtata-new/internal/repository"
	"github.com/ilyahahaha/vneshtata-new/internal/storage"
)

const maxAvatarBytes = 5 << 20

// Uploads newer than this are never collected as orphans; the picture
// column may not reference them yet while the request is in flight.
const orphanMinAge = 24 * time.Hour

type avatarUserStore interface {
	UpdatePicture(ctx context.Context, id string, picture string) error
	ListPictures(ctx context.Context) ([]string, error)
}

type AvatarService struct {
	users avatarUserStore
	store *storage.ObjectStore
	log   zerolog.Logger
}

func NewAvatarService(users avatarUserStore, store *storage.ObjectStore, log zerolog.Logger) *AvatarService {
	return &AvatarService{
		users: users,
		store: store,
		log:   log,
	}
}

// Upload stores an avatar image and returns the refreshed session
// identity with the new picture URL.
func (s *AvatarService) Upload(ctx context.Context, actor models.SessionUser, file multipart.File, header *multipart.FileHeader) (models.SessionUser, error) {
	if file == nil || header == nil {
		return models.EmptySession, Invalid("No file in request")
	}
	if header.Size > maxAvatarBytes {
		return models.EmptySession, Invalid("Image is too large")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		return models.EmptySession, Internal(fmt.Errorf("read upload: %w", err))
	}
	if len(data) == 0 {
		return models.EmptySession, Invalid("No file in request")
	}
	if len(data) > maxAvatarBytes {
		return models.EmptySession, Invalid("Image is too large")
	}

	result, err := sniffer.DetectHead(data)
	if err != nil {
		return models.EmptySession, Invalid("Only JPEG, PNG and WebP images are allowed")
	}

	declared := sniffer.MimeTypeFromHTTP(http.Header(header.Header))
	if declared != "" && declared != result.MIME {
		return models.EmptySession, Invalid("Only JPEG, PNG and WebP images are allowed")
	}

	objectKey := path.Join(actor.ID, fmt.Sprintf("%s.%s", ids.New(), result.Type))
	if err := s.store.PutAvatar(ctx, objectKey, data, result.MIME); err != nil {
		return models.EmptySession, Internal(err)
	}

	pictureURL := s.store.AvatarURL(objectKey)
	if err := s.users.UpdatePicture(ctx, actor.ID, pictureURL); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.EmptySession, NotFound("User not found")
		}
		return models.EmptySession, Internal(err)
	}

	actor.Picture = &pictureURL
	return actor, nil
}

// CleanupOrphans removes bucket objects no user's picture references
// anymore, e.g. after repeated re-uploads.
func (s *AvatarService) CleanupOrphans(ctx context.Context) error {
	pictures, err := s.users.ListPictures(ctx)
	if err != nil {
		return fmt.Errorf("list pictures: %w", err)
	}

	referenced := make(map[string]struct{}, len(pictures))
	for _, picture := range pictures {
		if key, ok := s.store.AvatarKeyFromURL(picture); ok {
			referenced[key] = struct{}{}
		}
	}

	objects, err := s.store.ListAvatars(ctx)
	if err != nil {
		return fmt.Errorf("list avatars: %w", err)
	}

	removed := 0
	for key, modified := range objects {
		if _, ok := referenced[key]; ok {
			continue
		}
		if time.Since(modified) < orphanMinAge {
			continue
		}
		if err := s.store.RemoveAvatar(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("object_key", key).Msg("remove orphan avatar failed")
			continue
		}
		removed++
	}

	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("orphan avatars cleaned up")
	}
	return nil
}
