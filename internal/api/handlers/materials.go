package handlers

import (
	"errors"
	"net/http"

	"github.com/studyhub-dev/studyhub/internal/models"
	"github.com/studyhub-dev/studyhub/internal/uploads"
	"github.com/studyhub-dev/studyhub/internal/utils"
)

const maxUploadSize = 20 << 20 // 20 MB

// POST /upload-material
// UploadMaterial godoc
// @Summary Upload a PDF course material with metadata
// @Tags Materials
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /upload-material [post]
func (h *Handler) UploadMaterial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid file upload form",
		})
		return
	}

	// FormFile takes the first part under "file"; extra parts are ignored.
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please select a PDF file.",
		})
		return
	}
	defer file.Close()

	stored, err := h.receiver.Receive(r.Context(), header.Filename, file)
	if errors.Is(err, uploads.ErrUnsupportedFileType) {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Only PDFs are allowed!",
		})
		return
	}
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to store file",
		})
		return
	}

	material := models.Material{
		Title:       r.FormValue("title"),
		Type:        r.FormValue("type"),
		Semester:    r.FormValue("semester"),
		Subject:     r.FormValue("subject"),
		Description: r.FormValue("description"),
		FileName:    stored.Name,
		FilePath:    stored.Path,
	}

	if err := h.materials.Create(r.Context(), &material); err != nil {
		// No orphaned files: remove the stored bytes when the record fails.
		_ = h.receiver.Discard(r.Context(), stored.Name)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to save material",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "PDF Uploaded",
		Data:    material,
	})
}

// GET /materials
// ListMaterials godoc
// @Summary List all materials, newest first
// @Tags Materials
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 500 {object} utils.Payload
// @Router /materials [get]
func (h *Handler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.materials.List(r.Context())
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database query failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Materials retrieved successfully",
		Data:    materials,
	})
}
