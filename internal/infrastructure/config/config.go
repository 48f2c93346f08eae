package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL           string
	Port                 string
	MongoURI             string
	MongoDBName          string
	RedisURL             string
	JWTSecret            string
	AdminPasswordHash    string
	AccessTokenExpiry    time.Duration
	EnableCategories     bool
	CategoryDeletePolicy entity.CategoryDeletePolicy
	DetachOnRecategorize bool
	RecentBlogsLimit     int
	MediaFolder          string
	UploadConcurrency    int
	MaxImageWidth        int
	MaxUploadBytes       int64
	ReclaimOrphanedMedia bool
	CloudinaryURL        string
	RateLimitPerSecond   float64
	LogLevel             string
	LogFormatJSON        bool
	LogFile              string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		AppBaseURL:           getEnv("APP_BASE_URL", "http://localhost:8080"),
		Port:                 getEnv("PORT", "8080"),
		MongoURI:             getEnv("MONGODB_URI", ""),
		MongoDBName:          getEnv("MONGODB_DB_NAME", ""),
		RedisURL:             getEnv("REDIS_URL", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		AdminPasswordHash:    getEnv("ADMIN_PASSWORD_HASH", ""),
		AccessTokenExpiry:    time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)),
		EnableCategories:     getEnvAsBool("CATEGORIES_ENABLED", true),
		CategoryDeletePolicy: parseDeletePolicy(getEnv("CATEGORY_DELETE_POLICY", string(entity.CategoryDeleteDetach))),
		DetachOnRecategorize: getEnvAsBool("DETACH_PREVIOUS_CATEGORY", false),
		RecentBlogsLimit:     getEnvAsInt("RECENT_BLOGS_LIMIT", 6),
		MediaFolder:          getEnv("MEDIA_FOLDER", "blog_images"),
		UploadConcurrency:    getEnvAsInt("MEDIA_UPLOAD_CONCURRENCY", 1),
		MaxImageWidth:        getEnvAsInt("MEDIA_MAX_IMAGE_WIDTH", 0),
		MaxUploadBytes:       int64(getEnvAsInt("MEDIA_MAX_UPLOAD_MB", 10)) << 20, // 10MB
		ReclaimOrphanedMedia: getEnvAsBool("MEDIA_RECLAIM_ORPHANS", false),
		CloudinaryURL:        getEnv("CLOUDINARY_URL", ""),
		RateLimitPerSecond:   getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormatJSON:        getEnvAsBool("LOG_FORMAT_JSON", false),
		LogFile:              getEnv("LOG_FILE", ""),
	}
}

// make sure Config implements usecasecontract.IConfigProvider
var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// CategoriesEnabled reports whether blog/category relationship maintenance runs.
func (c *Config) CategoriesEnabled() bool {
	return c.EnableCategories
}

// GetCategoryDeletePolicy returns how deleting a referenced category is handled.
func (c *Config) GetCategoryDeletePolicy() entity.CategoryDeletePolicy {
	return c.CategoryDeletePolicy
}

// DetachPreviousCategory reports whether re-categorizing a blog pulls it from its old category.
func (c *Config) DetachPreviousCategory() bool {
	return c.DetachOnRecategorize
}

// GetRecentBlogsLimit returns the default size of the recent blogs list.
func (c *Config) GetRecentBlogsLimit() int {
	if c.RecentBlogsLimit < 1 {
		return 6
	}
	return c.RecentBlogsLimit
}

// GetMediaFolder returns the media host folder images are uploaded into.
func (c *Config) GetMediaFolder() string {
	return c.MediaFolder
}

// GetUploadConcurrency returns how many uploads of one batch may run at once.
func (c *Config) GetUploadConcurrency() int {
	if c.UploadConcurrency < 1 {
		return 1
	}
	return c.UploadConcurrency
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetAdminPasswordHash returns the bcrypt hash of the admin password.
func (c *Config) GetAdminPasswordHash() string {
	return c.AdminPasswordHash
}

func parseDeletePolicy(v string) entity.CategoryDeletePolicy {
	if strings.EqualFold(strings.TrimSpace(v), string(entity.CategoryDeleteReject)) {
		return entity.CategoryDeleteReject
	}
	return entity.CategoryDeleteDetach
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a float or return a default value.
func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
