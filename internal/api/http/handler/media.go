package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/service/media"
)

type MediaHandler struct {
	svc media.Service
}

func NewMediaHandler(svc media.Service) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// POST /api/v1/clinics/:id/media  (multipart form, field "file")
func (h *MediaHandler) Upload(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	res, err := h.svc.Upload(c.Context(), clinicID, fh)
	if err != nil {
		return mapMediaError(c, err)
	}
	return created(c, fiber.Map{
		"media":        res.Media,
		"download_url": res.DownloadURL,
	})
}

// GET /api/v1/clinics/:id/media
func (h *MediaHandler) List(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	items, err := h.svc.List(c.Context(), clinicID)
	if err != nil {
		return mapMediaError(c, err)
	}
	return ok(c, items)
}

// GET /api/v1/media/:id/download
func (h *MediaHandler) Download(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid media id")
	}

	url, err := h.svc.DownloadURL(c.Context(), id)
	if err != nil {
		return mapMediaError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}

// DELETE /api/v1/clinics/:id/media/:mid
func (h *MediaHandler) Delete(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}
	mediaID, err := uuid.Parse(c.Params("mid"))
	if err != nil {
		return badRequest(c, "invalid media id")
	}

	if err := h.svc.Delete(c.Context(), clinicID, mediaID); err != nil {
		return mapMediaError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/clinics/:id/clinic-media
func (h *MediaHandler) Publish(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	var body struct {
		MediaID     string  `json:"media_id"`
		Title       string  `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	mediaID, err := uuid.Parse(body.MediaID)
	if err != nil {
		return badRequest(c, "invalid media_id")
	}

	cm, err := h.svc.Publish(c.Context(), clinicID, media.PublishRequest{
		MediaID:     mediaID,
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		return mapMediaError(c, err)
	}
	return created(c, cm)
}

// GET /api/v1/clinics/:id/clinic-media
func (h *MediaHandler) ListPublished(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	items, err := h.svc.ListPublished(c.Context(), clinicID)
	if err != nil {
		return mapMediaError(c, err)
	}
	return ok(c, items)
}

// DELETE /api/v1/clinics/:id/clinic-media/:mid
func (h *MediaHandler) Unpublish(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}
	cmID, err := uuid.Parse(c.Params("mid"))
	if err != nil {
		return badRequest(c, "invalid clinic media id")
	}

	if err := h.svc.Unpublish(c.Context(), clinicID, cmID); err != nil {
		return mapMediaError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapMediaError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, media.ErrMediaNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, media.ErrClinicMediaNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, media.ErrWrongClinic):
		return forbidden(c, err.Error())
	default:
		return internalError(c)
	}
}
