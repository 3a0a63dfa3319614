package backend

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jo-hoe/gogallery/internal/common"
	"github.com/jo-hoe/gogallery/internal/core"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// UploadFieldName is the multipart form field carrying the image.
const UploadFieldName = "image"

const internalErrorMessage = "internal server error"

type APIService struct {
	config      *core.ServiceConfig
	coreService *core.CoreService
}

type UploadResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type imageIDRequest struct {
	ID string `param:"id" validate:"required"`
}

func NewAPIService(config *core.ServiceConfig, coreService *core.CoreService) *APIService {
	return &APIService{
		config:      config,
		coreService: coreService,
	}
}

func (service *APIService) SetRoutes(e *echo.Echo) {
	if e.Validator == nil {
		e.Validator = common.NewGenericEchoValidator()
	}

	var uploadMiddleware []echo.MiddlewareFunc
	if service.config.MaxUploadBytes > 0 {
		uploadMiddleware = append(uploadMiddleware, middleware.BodyLimit(fmt.Sprintf("%dB", service.config.MaxUploadBytes)))
	}

	e.POST("/upload", service.uploadImageHandler, uploadMiddleware...)
	e.DELETE("/image/:id", service.deleteImageHandler)
	e.DELETE("/images", service.deleteAllImagesHandler)

	// Set probe route
	e.GET("/probe", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "API Service is running")
	})
}

func (service *APIService) uploadImageHandler(ctx echo.Context) error {
	file, err := ctx.FormFile(UploadFieldName)
	if err != nil {
		// body limit violations surface here as echo errors
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		slog.Warn("uploadImageHandler: no uploaded file",
			"status", http.StatusBadRequest, "error", err)
		return ctx.JSON(http.StatusBadRequest, common.ErrorResponse{Error: core.ErrMissingFile.Error()})
	}

	src, err := file.Open()
	if err != nil {
		slog.Error("uploadImageHandler: failed to open uploaded file",
			"status", http.StatusInternalServerError, "error", err, "filename", file.Filename)
		return ctx.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: internalErrorMessage})
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			slog.Error("uploadImageHandler: failed to close uploaded file reader", "error", cerr, "filename", file.Filename)
		}
	}()

	content, err := io.ReadAll(src)
	if err != nil {
		slog.Error("uploadImageHandler: failed to read uploaded file",
			"status", http.StatusInternalServerError, "error", err, "filename", file.Filename)
		return ctx.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: internalErrorMessage})
	}

	image, err := service.coreService.AddImage(file.Filename, file.Header.Get(echo.HeaderContentType), content)
	switch {
	case errors.Is(err, core.ErrMissingFile):
		return ctx.JSON(http.StatusBadRequest, common.ErrorResponse{Error: core.ErrMissingFile.Error()})
	case errors.Is(err, core.ErrInvalidType):
		slog.Warn("uploadImageHandler: rejected non-image upload",
			"status", http.StatusBadRequest, "error", err, "filename", file.Filename)
		return ctx.JSON(http.StatusBadRequest, common.ErrorResponse{Error: core.ErrInvalidType.Error()})
	case err != nil:
		slog.Error("uploadImageHandler: failed to store uploaded image",
			"status", http.StatusInternalServerError, "error", err, "filename", file.Filename)
		return ctx.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: internalErrorMessage})
	}

	return ctx.JSON(http.StatusCreated, UploadResponse{Success: true, ID: image.ID})
}

func (service *APIService) deleteImageHandler(ctx echo.Context) error {
	var request imageIDRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	if err := service.coreService.DeleteImage(request.ID); err != nil {
		slog.Error("deleteImageHandler: failed to delete image",
			"status", http.StatusInternalServerError, "image_id", request.ID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: internalErrorMessage})
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (service *APIService) deleteAllImagesHandler(ctx echo.Context) error {
	if err := service.coreService.DeleteAllImages(); err != nil {
		slog.Error("deleteAllImagesHandler: failed to delete images",
			"status", http.StatusInternalServerError, "error", err)
		return ctx.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: internalErrorMessage})
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}
