package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entclinicmedia "github.com/pezeshkyar/checkup_backend/internal/repo/clinicmedia"
	entmedia "github.com/pezeshkyar/checkup_backend/internal/repo/media"
	s3pkg "github.com/pezeshkyar/checkup_backend/pkg/s3"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadResult struct {
	Media       *repo.Media
	DownloadURL string
}

type PublishRequest struct {
	MediaID     uuid.UUID
	Title       string
	Description *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Upload stores the file in S3 and records a Media row for the clinic.
	Upload(ctx context.Context, clinicID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error)
	GetByID(ctx context.Context, mediaID uuid.UUID) (*repo.Media, error)
	List(ctx context.Context, clinicID uuid.UUID) ([]*repo.Media, error)
	DownloadURL(ctx context.Context, mediaID uuid.UUID) (string, error)
	Delete(ctx context.Context, clinicID, mediaID uuid.UUID) error

	// Publish makes an uploaded file visible as clinic educational material.
	Publish(ctx context.Context, clinicID uuid.UUID, req PublishRequest) (*repo.ClinicMedia, error)
	ListPublished(ctx context.Context, clinicID uuid.UUID) ([]*repo.ClinicMedia, error)
	Unpublish(ctx context.Context, clinicID, clinicMediaID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type mediaService struct {
	db *repo.Client
	s3 *s3pkg.Client
}

func New(db *repo.Client, s3Client *s3pkg.Client) Service {
	return &mediaService{db: db, s3: s3Client}
}

func (s *mediaService) Upload(ctx context.Context, clinicID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("media/%s/%s%s", clinicID, uuid.New(), ext)

	mime := fh.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	if err := s.s3.Upload(ctx, key, mime, src, fh.Size); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	m, err := s.db.Media.Create().
		SetClinicID(clinicID).
		SetFileKey(key).
		SetFileName(fh.Filename).
		SetMimeType(mime).
		SetSizeBytes(fh.Size).
		SetCategory(categoryFor(mime)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save media: %w", err)
	}

	url, err := s.s3.PresignDownload(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("presign: %w", err)
	}

	return &UploadResult{Media: m, DownloadURL: url}, nil
}

func (s *mediaService) GetByID(ctx context.Context, mediaID uuid.UUID) (*repo.Media, error) {
	m, err := s.db.Media.Query().
		Where(entmedia.ID(mediaID), entmedia.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("get media: %w", err)
	}
	return m, nil
}

func (s *mediaService) List(ctx context.Context, clinicID uuid.UUID) ([]*repo.Media, error) {
	return s.db.Media.Query().
		Where(entmedia.ClinicID(clinicID), entmedia.DeletedAtIsNil()).
		Order(entmedia.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
}

func (s *mediaService) DownloadURL(ctx context.Context, mediaID uuid.UUID) (string, error) {
	m, err := s.GetByID(ctx, mediaID)
	if err != nil {
		return "", err
	}
	url, err := s.s3.PresignDownload(ctx, m.FileKey)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}

func (s *mediaService) Delete(ctx context.Context, clinicID, mediaID uuid.UUID) error {
	m, err := s.GetByID(ctx, mediaID)
	if err != nil {
		return err
	}
	if m.ClinicID != clinicID {
		return ErrWrongClinic
	}

	// Best-effort S3 delete (don't block DB delete if S3 fails)
	_ = s.s3.Delete(ctx, m.FileKey)

	return s.db.Media.UpdateOne(m).SetDeletedAt(time.Now()).Exec(ctx)
}

func (s *mediaService) Publish(ctx context.Context, clinicID uuid.UUID, req PublishRequest) (*repo.ClinicMedia, error) {
	m, err := s.GetByID(ctx, req.MediaID)
	if err != nil {
		return nil, err
	}
	if m.ClinicID != clinicID {
		return nil, ErrWrongClinic
	}

	c := s.db.ClinicMedia.Create().
		SetClinicID(clinicID).
		SetMediaID(m.ID).
		SetTitle(req.Title)
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	return c.Save(ctx)
}

func (s *mediaService) ListPublished(ctx context.Context, clinicID uuid.UUID) ([]*repo.ClinicMedia, error) {
	return s.db.ClinicMedia.Query().
		Where(entclinicmedia.ClinicID(clinicID), entclinicmedia.DeletedAtIsNil()).
		WithMedia().
		Order(entclinicmedia.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
}

func (s *mediaService) Unpublish(ctx context.Context, clinicID, clinicMediaID uuid.UUID) error {
	cm, err := s.db.ClinicMedia.Query().
		Where(
			entclinicmedia.ID(clinicMediaID),
			entclinicmedia.ClinicID(clinicID),
			entclinicmedia.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrClinicMediaNotFound
		}
		return fmt.Errorf("get clinic media: %w", err)
	}
	return s.db.ClinicMedia.UpdateOne(cm).SetDeletedAt(time.Now()).Exec(ctx)
}

// categoryFor buckets a MIME type into the media category enum.
func categoryFor(mime string) entmedia.Category {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return entmedia.CategoryImage
	case strings.HasPrefix(mime, "video/"):
		return entmedia.CategoryVideo
	case strings.HasPrefix(mime, "audio/"):
		return entmedia.CategoryAudio
	default:
		return entmedia.CategoryDocument
	}
}
