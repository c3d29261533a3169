package store

import (
	"context"
	"io"
	"time"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
	"github.com/bwise1/trailhead_admin/util/storage"
)

type MediaStore struct {
	*Collection[model.Media, model.MediaFilters]

	svc *service.MediaService
	cld *storage.Cloudinary
}

// NewMediaStore wires the media library. cld may be nil; when set, items
// missing URL variants get them derived from their public id.
func NewMediaStore(svc *service.MediaService, cld *storage.Cloudinary, staleAfter time.Duration) *MediaStore {
	s := &MediaStore{svc: svc, cld: cld}
	s.Collection = NewCollection(s.list, mediaID, Options[model.Media, model.MediaFilters]{
		Name:          "Media",
		FallbackError: "Failed to load media",
		PerPage:       15,
		StaleAfter:    staleAfter,
		Merge:         mergeMediaPage,
	})
	return s
}

func mediaID(m model.Media) int64 { return m.ID }

// The first page replaces the library; later pages extend it.
func mergeMediaPage(cached, fetched []model.Media, filters model.MediaFilters) []model.Media {
	if filters.Page <= 1 {
		return fetched
	}
	out := make([]model.Media, 0, len(cached)+len(fetched))
	out = append(out, cached...)
	return append(out, fetched...)
}

func (s *MediaStore) list(ctx context.Context, filters model.MediaFilters) (service.Page[model.Media], error) {
	page, err := s.svc.List(ctx, filters)
	if err != nil {
		return page, err
	}
	for i := range page.Items {
		s.withVariants(&page.Items[i])
	}
	return page, nil
}

func (s *MediaStore) withVariants(m *model.Media) {
	if s.cld == nil || m.PublicID == "" || m.URLs.Thumbnail != "" {
		return
	}
	v, err := s.cld.Variants(m.PublicID)
	if err != nil {
		return
	}
	m.URLs = model.MediaURLs{Original: v.Original, Thumbnail: v.Thumbnail, Medium: v.Medium, Large: v.Large}
}

// Upload puts the new file at the top of the library and bumps the total.
func (s *MediaStore) Upload(ctx context.Context, filename string, file io.Reader, altText string, onProgress admin.ProgressFunc) (model.Media, error) {
	media, err := s.svc.Upload(ctx, filename, file, altText, onProgress)
	if err != nil {
		return model.Media{}, err
	}
	s.withVariants(&media)
	s.Prepend(media)
	s.UpdateMeta(func(m *model.PaginationMeta) { m.Total++ })
	return media, nil
}

func (s *MediaStore) Update(ctx context.Context, id int64, altText string) (model.Media, error) {
	media, err := s.svc.UpdateAltText(ctx, id, altText)
	if err != nil {
		return model.Media{}, err
	}
	s.withVariants(&media)
	s.Replace(id, media)
	return media, nil
}

func (s *MediaStore) Delete(ctx context.Context, id int64) error {
	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}
	s.Remove(id)
	s.UpdateMeta(func(m *model.PaginationMeta) {
		if m.Total > 0 {
			m.Total--
		}
	})
	return nil
}
