package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// LogReclaimer records orphaned URLs without touching the media host.
type LogReclaimer struct {
	logger usecasecontract.IAppLogger
}

var _ contract.IMediaReclaimer = (*LogReclaimer)(nil)

func NewLogReclaimer(logger usecasecontract.IAppLogger) *LogReclaimer {
	return &LogReclaimer{logger: logger}
}

func (r *LogReclaimer) Reclaim(_ context.Context, urls []string, reason string) error {
	for _, u := range urls {
		r.logger.Warningf("orphaned media (%s): %s", reason, u)
	}
	return nil
}

// destroyer deletes one hosted image.
type destroyer interface {
	Destroy(ctx context.Context, hostedURL string) error
}

// CloudinaryReclaimer deletes orphaned images from the media host.
type CloudinaryReclaimer struct {
	host   destroyer
	logger usecasecontract.IAppLogger
}

var _ contract.IMediaReclaimer = (*CloudinaryReclaimer)(nil)

func NewCloudinaryReclaimer(host *Cloudinary, logger usecasecontract.IAppLogger) *CloudinaryReclaimer {
	return &CloudinaryReclaimer{host: host, logger: logger}
}

// Reclaim destroys every URL, continuing past failures, and returns them joined.
func (r *CloudinaryReclaimer) Reclaim(ctx context.Context, urls []string, reason string) error {
	var errs []error
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := r.host.Destroy(ctx, u); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", u, err))
			continue
		}
		r.logger.Infof("destroyed orphaned media (%s): %s", reason, u)
	}
	return errors.Join(errs...)
}
