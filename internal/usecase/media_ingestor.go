package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// Reasons handed to the reclaimer.
const (
	ReclaimPartialUpload = "partial_upload"
	ReclaimBlogDeleted   = "blog_deleted"
	ReclaimImagesReplace = "images_replaced"
)

var errEmptyURL = errors.New("media host returned an empty url")

// MediaIngestor uploads an image batch to the media host and returns the hosted URLs in
// submission order. Uploads run one at a time unless a concurrency above 1 is configured.
type MediaIngestor struct {
	uploader    contract.IMediaUploader
	processor   contract.IImageProcessor
	reclaimer   contract.IMediaReclaimer
	logger      usecasecontract.IAppLogger
	folder      string
	concurrency int
}

// NewMediaIngestor creates a new MediaIngestor.
func NewMediaIngestor(uploader contract.IMediaUploader, logger usecasecontract.IAppLogger, folder string, concurrency int) *MediaIngestor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &MediaIngestor{
		uploader:    uploader,
		logger:      logger,
		folder:      folder,
		concurrency: concurrency,
	}
}

// SetImageProcessor installs a normalization step run on every image before upload.
func (m *MediaIngestor) SetImageProcessor(p contract.IImageProcessor) {
	m.processor = p
}

// SetReclaimer installs the hook that receives orphaned hosted URLs.
func (m *MediaIngestor) SetReclaimer(r contract.IMediaReclaimer) {
	m.reclaimer = r
}

// Ingest uploads images and returns their URLs. On the first failed upload it returns an
// upload error; images hosted before the failure are handed to the reclaimer, not rolled back.
func (m *MediaIngestor) Ingest(ctx context.Context, images []entity.ImagePayload) ([]string, error) {
	if len(images) == 0 {
		return []string{}, nil
	}

	prepared := make([]entity.ImagePayload, 0, len(images))
	for i, img := range images {
		if len(img.Data) == 0 {
			return nil, apperror.Validation("image %d (%s) is empty", i+1, img.Filename)
		}
		if m.processor != nil {
			processed, err := m.processor.Process(img)
			if err != nil {
				return nil, apperror.Validation("image %d (%s) is not a valid image: %v", i+1, img.Filename, err)
			}
			img = processed
		}
		prepared = append(prepared, img)
	}

	var (
		urls []string
		err  error
	)
	if m.concurrency == 1 || len(prepared) == 1 {
		urls, err = m.uploadSequential(ctx, prepared)
	} else {
		urls, err = m.uploadBounded(ctx, prepared)
	}
	if err != nil {
		if len(urls) > 0 {
			m.logger.Warningf("upload batch aborted, %d hosted image(s) left orphaned: %v", len(urls), urls)
			m.Reclaim(ctx, urls, ReclaimPartialUpload)
		}
		return nil, err
	}
	return urls, nil
}

// uploadSequential awaits each upload before starting the next. On failure it returns the
// URLs hosted so far together with the error.
func (m *MediaIngestor) uploadSequential(ctx context.Context, images []entity.ImagePayload) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := m.uploadOne(ctx, img)
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// uploadBounded runs at most m.concurrency uploads at once and keeps submission order in the
// result. On failure it returns every URL that did get hosted.
func (m *MediaIngestor) uploadBounded(ctx context.Context, images []entity.ImagePayload) ([]string, error) {
	results := make([]string, len(images))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)
	for i, img := range images {
		g.Go(func() error {
			url, err := m.uploadOne(gctx, img)
			if err != nil {
				return err
			}
			results[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		hosted := make([]string, 0, len(results))
		for _, url := range results {
			if url != "" {
				hosted = append(hosted, url)
			}
		}
		return hosted, err
	}
	return results, nil
}

func (m *MediaIngestor) uploadOne(ctx context.Context, img entity.ImagePayload) (string, error) {
	start := time.Now()
	url, err := m.uploader.Upload(ctx, img, m.folder)
	if err == nil && url == "" {
		err = errEmptyURL
	}
	metrics.ObserveUpload(err == nil, time.Since(start).Seconds())
	if err != nil {
		m.logger.Errorf("failed to upload image %q: %v", img.Filename, err)
		if errors.Is(err, apperror.ErrUpload) {
			return "", err
		}
		return "", apperror.Upload(img.Filename, err)
	}
	m.logger.Debugf("uploaded image %q to %s", img.Filename, url)
	return url, nil
}

// Reclaim hands hosted URLs that nothing references to the reclaim hook. Failures are logged.
func (m *MediaIngestor) Reclaim(ctx context.Context, urls []string, reason string) {
	if len(urls) == 0 {
		return
	}
	metrics.AddOrphans(reason, len(urls))
	if m.reclaimer == nil {
		return
	}
	if err := m.reclaimer.Reclaim(ctx, urls, reason); err != nil {
		m.logger.Warningf("failed to reclaim %d hosted image(s) (%s): %v", len(urls), reason, err)
	}
}
