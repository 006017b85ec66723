package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"dockyard/internal/core/logger"
	"dockyard/internal/features/reconciliation/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id"`
}

// ReconciliationHandler runs the reconciliation workflows on uploaded CSV files.
type ReconciliationHandler struct {
	service ports.Reconciler
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(s ports.Reconciler) *ReconciliationHandler {
	return &ReconciliationHandler{service: s}
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func badRequest(c *fiber.Ctx, op string, err error) error {
	logger.Named("http").Warn("Reconciliation refused",
		zap.String("operation", op),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID(c),
	})
}

// openFiles opens the named multipart fields. The caller closes the returned files.
func openFiles(c *fiber.Ctx, fields ...string) ([]multipart.File, error) {
	files := make([]multipart.File, 0, len(fields))
	for _, name := range fields {
		fh, err := c.FormFile(name)
		if err != nil {
			closeAll(files)
			return nil, fmt.Errorf("file %q is required", name)
		}
		f, err := fh.Open()
		if err != nil {
			closeAll(files)
			return nil, fmt.Errorf("file %q could not be read: %w", name, err)
		}
		files = append(files, f)
	}
	return files, nil
}

func closeAll[T io.Closer](files []T) {
	for _, f := range files {
		f.Close()
	}
}

func sendCSV(c *fiber.Ctx, filename, body string) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Status(http.StatusOK).SendString(body)
}

// Gmap handles POST /reconciliation/gmap.
// @Summary Compare GMAP allocations against scale counts
// @Tags Reconciliation
// @Accept multipart/form-data
// @Produce text/csv
// @Param gmap formData file true "GMAP export"
// @Param scale formData file true "Scale on-hand export"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Router /reconciliation/gmap [post]
func (h *ReconciliationHandler) Gmap(c *fiber.Ctx) error {
	files, err := openFiles(c, "gmap", "scale")
	if err != nil {
		return badRequest(c, "gmap", err)
	}
	defer closeAll(files)

	out, err := h.service.Gmap(files[0], files[1])
	if err != nil {
		return badRequest(c, "gmap", err)
	}
	return sendCSV(c, "gmap_compare.csv", out)
}

// ItemMaster handles POST /reconciliation/item-master.
// @Summary List item-master rows whose pack quantities disagree with the details
// @Tags Reconciliation
// @Accept multipart/form-data
// @Produce text/csv
// @Param details formData file true "Pack/pallet details export"
// @Param master formData file true "Item master"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Router /reconciliation/item-master [post]
func (h *ReconciliationHandler) ItemMaster(c *fiber.Ctx) error {
	files, err := openFiles(c, "details", "master")
	if err != nil {
		return badRequest(c, "item master", err)
	}
	defer closeAll(files)

	out, err := h.service.FixParts(files[0], files[1])
	if err != nil {
		return badRequest(c, "item master", err)
	}
	return sendCSV(c, "item_master_fix.csv", out)
}

// Items handles POST /reconciliation/items.
// @Summary Build item-master upload rows from the items spreadsheet
// @Tags Reconciliation
// @Accept multipart/form-data
// @Produce text/csv
// @Param file formData file true "Items spreadsheet"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Router /reconciliation/items [post]
func (h *ReconciliationHandler) Items(c *fiber.Ctx) error {
	files, err := openFiles(c, "file")
	if err != nil {
		return badRequest(c, "items", err)
	}
	defer closeAll(files)

	out, err := h.service.Items(files[0])
	if err != nil {
		return badRequest(c, "items", err)
	}
	return sendCSV(c, "item_upload.csv", out)
}

// Register mounts the reconciliation routes on r.
func (h *ReconciliationHandler) Register(r fiber.Router) {
	g := r.Group("/reconciliation")
	g.Post("/gmap", h.Gmap)
	g.Post("/item-master", h.ItemMaster)
	g.Post("/items", h.Items)
}
