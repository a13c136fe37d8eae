package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arcana/internal/models/request_models"
	"arcana/internal/services"
	"arcana/pkg/utils"
)

type ReadingController struct {
	readingService services.ReadingServiceInterface
	uploadDir      string
}

func NewReadingController(readingService services.ReadingServiceInterface, uploadDir string) *ReadingController {
	return &ReadingController{
		readingService: readingService,
		uploadDir:      uploadDir,
	}
}

func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return uuid.Nil, false
	}
	return id, true
}

// Horoscope godoc
// @Summary Generate Horoscope
// @Description Billed horoscope reading; missing fields fall back to the profile
// @Tags Readings
// @Accept json
// @Produce json
// @Param request body request_models.HoroscopeRequest false "Horoscope payload"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /horoscope [post]
func (r *ReadingController) Horoscope(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.HoroscopeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	resp, err := r.readingService.Horoscope(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Horoscope generated")
}

// Palm godoc
// @Summary Analyze Palm
// @Description Billed palm reading from one uploaded image
// @Tags Readings
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Palm image file"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Security BearerAuth
// @Router /palm [post]
func (r *ReadingController) Palm(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "image is required")
		return
	}

	// Funds check happens before the upload is persisted.
	if err := r.readingService.EnsureFunds(c.Request.Context(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	relPath, fullPath, err := utils.SaveUploadedImage(c, file, r.uploadDir, "palm_images")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp, err := r.readingService.Palm(c.Request.Context(), accountID, relPath, fullPath)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Palm reading generated")
}

// Coffee godoc
// @Summary Read Coffee Cup
// @Description Billed coffee-ground reading from one or more uploaded images
// @Tags Readings
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Coffee cup images"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Security BearerAuth
// @Router /coffee [post]
func (r *ReadingController) Coffee(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "images are required")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		files = form.File["images[]"]
	}
	if len(files) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "at least one image is required")
		return
	}

	if err := r.readingService.EnsureFunds(c.Request.Context(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var relPaths, fullPaths []string
	for _, file := range files {
		relPath, fullPath, err := utils.SaveUploadedImage(c, file, r.uploadDir, "coffee_images")
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		relPaths = append(relPaths, relPath)
		fullPaths = append(fullPaths, fullPath)
	}

	resp, err := r.readingService.Coffee(c.Request.Context(), accountID, relPaths, fullPaths)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Coffee reading generated")
}

// History godoc
// @Summary Get reading history
// @Description Completed readings for the caller, newest first
// @Tags Readings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /readings [get]
func (r *ReadingController) History(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	readings, err := r.readingService.History(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, readings, "Readings fetched successfully")
}
