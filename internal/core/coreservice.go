package core

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jo-hoe/gogallery/internal/backend/database"
)

const imageTypePrefix = "image/"

type CoreService struct {
	config          *ServiceConfig
	databaseService database.DatabaseService
	now             func() time.Time
}

func NewCoreService(config *ServiceConfig, databaseService database.DatabaseService) *CoreService {
	return &CoreService{
		config:          config,
		databaseService: databaseService,
		now:             time.Now,
	}
}

// NewDatabaseService creates the image store selected by the configuration.
func NewDatabaseService(config *ServiceConfig) (database.DatabaseService, error) {
	databaseService, err := database.NewDatabase(config.Database.Type, config.Database.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("database initialized successfully", "type", config.Database.Type)
	return databaseService, nil
}

// AddImage validates and stores an uploaded image. Only the declared type
// decides whether the upload is accepted.
func (service *CoreService) AddImage(originalName, declaredType string, content []byte) (*database.Image, error) {
	if content == nil {
		return nil, ErrMissingFile
	}

	mimeType := strings.TrimSpace(declaredType)
	if !strings.HasPrefix(mimeType, imageTypePrefix) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidType, mimeType)
	}
	if detected, mismatch := detectTypeMismatch(content); mismatch {
		// the declared type stays authoritative
		slog.Warn("AddImage: content does not look like an image",
			"filename", originalName, "declared_type", mimeType, "detected_type", detected)
	}

	image := &database.Image{
		Data:         EncodeDataURI(mimeType, content),
		CreatedAt:    service.now().Format(service.timestampLayout()),
		OriginalName: originalName,
		Size:         int64(len(content)),
		Type:         mimeType,
	}
	created, err := service.databaseService.CreateImage(image)
	if err != nil {
		return nil, fmt.Errorf("failed to store image %s: %w", originalName, err)
	}
	count, err := service.databaseService.Count()
	if err != nil {
		slog.Warn("AddImage: failed to count stored images", "error", err)
	}
	slog.Info("image added", "image_id", created.ID, "filename", originalName,
		"size_bytes", created.Size, "stored_images", count)
	return created, nil
}

// detectTypeMismatch sniffs content and reports whether it was identified as
// something other than an image. Unidentifiable binary content is not a mismatch.
func detectTypeMismatch(content []byte) (string, bool) {
	detected := mimetype.Detect(content)
	if detected.Is("application/octet-stream") {
		return detected.String(), false
	}
	for m := detected; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), imageTypePrefix) {
			return detected.String(), false
		}
	}
	return detected.String(), true
}
