package handler

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cvapi/internal/service"
)

// MIMETypePDF is the only content type accepted for CV uploads.
const MIMETypePDF = "application/pdf"

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Validation lives here at the boundary; handlers stay free of business logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, cvSvc service.CVService, maxUploadBytes int64) {
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/cv", UploadCV(cvSvc, maxUploadBytes))
	app.Get("/cv", GetActiveCV(cvSvc))
	app.Get("/cv/download", DownloadCV(cvSvc))
	app.Get("/cv/all", ListCVs(cvSvc))
	app.Delete("/cv/:id", DeleteCV(cvSvc))
}

// HealthCheck reports readiness by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// UploadCV handles multipart CV uploads (field name: file).
//
// @Summary Upload a new CV
// @Accept mpfd
// @Success 201 {object} model.CV
// @Router /cv [post]
//
// Only PDFs up to maxUploadBytes are accepted; violations are rejected here
// and never reach the service, so no metadata or blob is written for them.
func UploadCV(cvSvc service.CVService, maxUploadBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		if ct := fh.Header.Get("Content-Type"); ct != MIMETypePDF {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "only PDF files are accepted")
		}
		if fh.Size > maxUploadBytes {
			return writeError(c, fiber.StatusBadRequest, "FILE_TOO_LARGE",
				fmt.Sprintf("file exceeds the %d byte limit", maxUploadBytes))
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		cv, err := cvSvc.Upload(c.UserContext(), f, fh.Filename, MIMETypePDF, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cv)
	}
}

// GetActiveCV returns metadata for the currently active CV.
//
// @Summary Active CV metadata
// @Success 200 {object} model.CV
// @Router /cv [get]
func GetActiveCV(cvSvc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cv, err := cvSvc.GetActive(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cv)
	}
}

// DownloadCV streams the active CV file as an attachment.
//
// @Summary Download the active CV
// @Produce application/pdf
// @Router /cv/download [get]
func DownloadCV(cvSvc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, cv, err := cvSvc.GetFile(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, cv.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", cv.Filename))
		// SendStream sets Content-Length from the known size and pipes the
		// blob straight through without buffering it in memory.
		return c.SendStream(rc, int(cv.Size))
	}
}

// ListCVs returns every CV record, newest first.
//
// @Summary List all CVs
// @Success 200 {array} model.CV
// @Router /cv/all [get]
func ListCVs(cvSvc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := cvSvc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// DeleteCV removes a CV by ID and echoes the deleted record's data.
//
// @Summary Delete a CV
// @Success 200 {object} model.CV
// @Router /cv/{id} [delete]
func DeleteCV(cvSvc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		cv, err := cvSvc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cv)
	}
}
