package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/supplyguard/supplyguard-api/internal/application/usecases"
)

// IngestHandler handles bulk and document-based supplier onboarding.
type IngestHandler struct {
	ingestUseCase *usecases.IngestUseCase
}

func NewIngestHandler(ingestUseCase *usecases.IngestUseCase) *IngestHandler {
	return &IngestHandler{ingestUseCase}
}

// ImportCSV accepts the raw CSV either as a multipart "file" field or as the
// request body itself.
func (h *IngestHandler) ImportCSV(c *fiber.Ctx) error {
	raw, err := h.readUpload(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if len(raw) == 0 {
		return badRequest(c, "no CSV content provided")
	}

	created, err := h.ingestUseCase.ImportCSV(c.UserContext(), string(raw))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": created,
		"meta": fiber.Map{
			"imported": len(created),
		},
	})
}

// ExtractDocument pulls one supplier out of an uploaded registration
// document (PDF or image) and inserts it into the portfolio.
func (h *IngestHandler) ExtractDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "a 'file' upload is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "could not read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, "could not read uploaded file")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	supplier, err := h.ingestUseCase.ExtractDocument(c.UserContext(), data, mimeType)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

func (h *IngestHandler) readUpload(c *fiber.Ctx) ([]byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		// No multipart upload, fall back to the raw body.
		return c.Body(), nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
