package rest

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/lucsky/cuid"
)

const maxUploadSize = 32 << 20

func (api *API) MediaRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.listHandler(media)))
	mux.Method(http.MethodPost, "/", Handler(api.UploadMedia))
	mux.Method(http.MethodGet, "/{id}", Handler(api.showHandler(media)))
	mux.Method(http.MethodPatch, "/{id}", Handler(api.updateHandler(media)))
	mux.Method(http.MethodDelete, "/{id}", Handler(api.deleteHandler(media)))

	return mux
}

func (api *API) UploadMedia(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return respondWithError(err, "invalid multipart body", values.BadRequestBody)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return respondWithValidation(map[string][]string{"file": {"The file field is required."}})
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, file)
	if err != nil {
		return respondWithError(err, "unable to read upload", values.Error)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	mimeType := header.Header.Get("Content-Type")
	if byExt := mime.TypeByExtension(ext); byExt != "" && (mimeType == "" || mimeType == "application/octet-stream") {
		mimeType = byExt
	}

	id := cuid.New()
	stored := id + ext
	url := "/storage/media/" + stored

	r0 := row{
		"filename":          stored,
		"original_filename": header.Filename,
		"mime_type":         mimeType,
		"size":              size,
		"type":              string(mediaType(ext, mimeType)),
		"url":               url,
		"public_id":         "trailhead/" + id,
		"urls":              row{"original": url},
	}
	if alt := r.FormValue("alt_text"); alt != "" {
		r0["alt_text"] = alt
	}

	created, fieldErrors := api.Backend.create(media, r0, currentUserID(r))
	if fieldErrors != nil {
		return respondWithValidation(fieldErrors)
	}
	return respondWithData("media uploaded", values.Created, map[string]interface{}{"media": created})
}

func mediaType(ext, mimeType string) model.MediaType {
	switch {
	case ext == ".gpx":
		return model.MediaGPX
	case strings.HasPrefix(mimeType, "image/"):
		return model.MediaImage
	case strings.HasPrefix(mimeType, "video/"):
		return model.MediaVideo
	default:
		return model.MediaDocument
	}
}
