// Package imageservice manages business logic layer of images.
package imageservice

import (
	"context"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"
	"github.com/piwegro/piwegro-api/pkg/imagepkg"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by image service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package imageservice
type Repo interface {
	Get(ctx context.Context, id int64) (domain.Image, error)
	Create(ctx context.Context, original, preview, thumbnail string) (int64, error)
}

// Service facilitates image service layer logic.
type Service struct {
	repo      Repo
	outputDir string
}

// New returns image service struct to manage image business logic. Rendered
// files are written under outputDir.
func New(ir Repo, outputDir string) *Service {
	return &Service{
		repo:      ir,
		outputDir: outputDir,
	}
}

// Get returns the saved image with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Image, error) {
	return s.repo.Get(ctx, id)
}

// Upload decodes a base64 payload into an editable image and saves it.
func (s *Service) Upload(ctx context.Context, b64 string) (domain.Image, error) {
	l := zerolog.Ctx(ctx)

	raw, err := imagepkg.Decode(b64)
	if err != nil {
		l.Info().Err(err).Msg("malformed image upload")
		return domain.Image{}, domain.ErrImageDecoding
	}

	img := domain.Image{Raw: raw}

	if err := s.Save(ctx, &img); err != nil {
		return domain.Image{}, err
	}

	return img, nil
}

// Save renders the three fixed renditions of an editable image, writes them
// to disk and persists their paths. Saving an already saved image is a
// no-op; saving an image without a raw bitmap is an error.
func (s *Service) Save(ctx context.Context, img *domain.Image) error {
	l := zerolog.Ctx(ctx)

	if img.IsSaved() {
		return nil
	}

	if !img.IsEditable() {
		return domain.ErrImageNotEditable
	}

	group := uuid.NewString()

	renditions := []struct {
		name string
		size imagepkg.Size
		dst  *string
	}{
		{group + "_original.jpg", imagepkg.OriginalSize, &img.Original},
		{group + "_preview.jpg", imagepkg.PreviewSize, &img.Preview},
		{group + "_thumbnail.jpg", imagepkg.ThumbnailSize, &img.Thumbnail},
	}

	for _, r := range renditions {
		rendered := imagepkg.CropCenter(img.Raw, r.size)

		name, err := imagepkg.SaveJPEG(rendered, s.outputDir, r.name)
		if err != nil {
			l.Error().Err(err).Msg("cannot write rendition")
			return errorspkg.ErrInternal
		}

		*r.dst = name
	}

	id, err := s.repo.Create(ctx, img.Original, img.Preview, img.Thumbnail)
	if err != nil {
		return err
	}

	img.ID = id
	img.Raw = nil

	return nil
}
