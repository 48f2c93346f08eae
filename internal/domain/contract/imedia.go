package contract

import (
	"context"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// IMediaUploader stores raw image bytes on the media host and returns a durable URL.
// Calls are not idempotent: uploading the same payload twice yields two hosted copies.
type IMediaUploader interface {
	Upload(ctx context.Context, image entity.ImagePayload, folder string) (string, error)
}

// IMediaReclaimer receives hosted URLs that no stored blog references any more.
type IMediaReclaimer interface {
	Reclaim(ctx context.Context, urls []string, reason string) error
}

// IImageProcessor normalizes an image before it is uploaded.
type IImageProcessor interface {
	Process(image entity.ImagePayload) (entity.ImagePayload, error)
}
