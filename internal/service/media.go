package service

import (
	"context"
	"io"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	"github.com/bwise1/trailhead_admin/internal/model"
)

const mediaPath = "/admin/media"

type MediaService struct {
	api API
}

func NewMediaService(api API) *MediaService {
	return &MediaService{api: api}
}

func (s *MediaService) List(ctx context.Context, filters model.MediaFilters) (Page[model.Media], error) {
	if filters.Page == 0 {
		filters.Page = 1
	}
	return list[model.Media](ctx, s.api, mediaPath, "media", filters)
}

func (s *MediaService) Upload(ctx context.Context, filename string, file io.Reader, altText string, onProgress admin.ProgressFunc) (model.Media, error) {
	env, err := s.api.Upload(ctx, mediaPath, filename, file, map[string]string{"alt_text": altText}, onProgress)
	return one[model.Media](env, err, "media")
}

func (s *MediaService) UpdateAltText(ctx context.Context, id int64, altText string) (model.Media, error) {
	env, err := s.api.Patch(ctx, itemPath(mediaPath, id), model.UpdateMediaPayload{AltText: altText})
	return one[model.Media](env, err, "media")
}

func (s *MediaService) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Delete(ctx, itemPath(mediaPath, id))
	return err
}
