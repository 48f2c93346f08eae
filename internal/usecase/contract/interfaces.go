package usecasecontract

import (
	"time"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// IAppLogger is the logging port used across the usecases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the runtime switches the usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	CategoriesEnabled() bool
	GetCategoryDeletePolicy() entity.CategoryDeletePolicy
	DetachPreviousCategory() bool
	GetRecentBlogsLimit() int
	GetMediaFolder() string
	GetUploadConcurrency() int
	GetAccessTokenExpiry() time.Duration
	GetAdminPasswordHash() string
}

// IValidator checks scalar inputs.
type IValidator interface {
	ValidateTitle(title string) error
	ValidateID(id string) error
}
