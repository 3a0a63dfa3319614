package frontend

import (
	"html/template"
	"io/fs"
	"log/slog"
	"math"
	"net/http"

	"github.com/jo-hoe/gogallery/internal/backend/database"
	"github.com/jo-hoe/gogallery/internal/core"
	"github.com/labstack/echo/v4"
)

const (
	MainPageName = "index.html"
	pageTitle    = "Image Gallery"
)

type FrontendService struct {
	coreService *core.CoreService
}

type galleryPage struct {
	Title  string
	Images []galleryCard
}

type galleryCard struct {
	ID           string
	Src          template.URL
	OriginalName string
	SizeKB       int64
	CreatedAt    string
}

func NewFrontendService(coreService *core.CoreService) *FrontendService {
	return &FrontendService{
		coreService: coreService,
	}
}

func (service *FrontendService) SetRoutes(e *echo.Echo) {
	e.Renderer = newTemplate()

	e.GET("/", service.indexHandler)

	staticFS, err := fs.Sub(assetsFS, "views/static")
	if err != nil {
		panic(err)
	}
	e.StaticFS("/static", staticFS)

	// Favicon (SVG) route
	e.GET("/icon.svg", service.iconHandler)
}

func (service *FrontendService) indexHandler(ctx echo.Context) error {
	images, err := service.coreService.GetImages()
	if err != nil {
		slog.Error("indexHandler: failed to list images",
			"status", http.StatusInternalServerError, "error", err)
		return ctx.String(http.StatusInternalServerError, "Failed to list images")
	}

	page := galleryPage{
		Title:  pageTitle,
		Images: make([]galleryCard, 0, len(images)),
	}
	for _, image := range images {
		page.Images = append(page.Images, toGalleryCard(image))
	}

	// Prevent caching so the latest images are always shown
	service.setNoCache(ctx)

	return ctx.Render(http.StatusOK, MainPageName, page)
}

func toGalleryCard(image *database.Image) galleryCard {
	return galleryCard{
		ID: image.ID,
		// stored data strings are built from a validated image/* type and base64 payload
		Src:          template.URL(image.Data),
		OriginalName: image.OriginalName,
		SizeKB:       sizeInKB(image.Size),
		CreatedAt:    image.CreatedAt,
	}
}

// sizeInKB rounds half away from zero, so 1536 bytes shows as 2 KB.
func sizeInKB(size int64) int64 {
	return int64(math.Round(float64(size) / 1024))
}

func (service *FrontendService) setNoCache(ctx echo.Context) {
	ctx.Response().Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	ctx.Response().Header().Set("Pragma", "no-cache")
	ctx.Response().Header().Set("Expires", "0")
}

func (service *FrontendService) iconHandler(ctx echo.Context) error {
	data, err := assetsFS.ReadFile("views/icon.svg")
	if err != nil {
		slog.Error("iconHandler: failed to read icon.svg", "status", http.StatusInternalServerError, "error", err)
		return ctx.String(http.StatusInternalServerError, "Failed to load icon")
	}
	// Cache for 7 days
	ctx.Response().Header().Set("Cache-Control", "public, max-age=604800, immutable")
	return ctx.Blob(http.StatusOK, "image/svg+xml", data)
}
