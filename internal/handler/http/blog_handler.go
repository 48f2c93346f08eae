package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	"github.com/mikiasgoitom/Folio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// multipart fields carrying images; both spellings are accepted
var imageFields = []string{"images", "images[]"}

const multipartMemory = 8 << 20

// BlogHandlerInterface defines the methods for Blog handler to allow interface-based dependency injection (for testing/mocking)
type BlogHandlerInterface interface {
	CreateBlogHandler(*gin.Context)
	GetBlogsHandler(*gin.Context)
	GetRecentBlogsHandler(*gin.Context)
	GetBlogDetailHandler(*gin.Context)
	UpdateBlogHandler(*gin.Context)
	DeleteBlogHandler(*gin.Context)
}

// Ensure BlogHandler implements BlogHandlerInterface
var _ BlogHandlerInterface = (*BlogHandler)(nil)

type BlogHandler struct {
	blogUsecase    usecasecontract.IBlogUseCase
	maxUploadBytes int64
}

// NewBlogHandler creates a BlogHandler. maxUploadBytes caps a whole request body; 0 disables the cap.
func NewBlogHandler(blogUsecase usecasecontract.IBlogUseCase, maxUploadBytes int64) *BlogHandler {
	return &BlogHandler{
		blogUsecase:    blogUsecase,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateBlogHandler
func (h *BlogHandler) CreateBlogHandler(cxt *gin.Context) {
	images, ok := h.readImages(cxt)
	if !ok {
		return
	}

	title := cxt.PostForm("title")
	description := cxt.PostForm("description")
	categoryID := optionalFormValue(cxt, "categoryId")

	blog, err := h.blogUsecase.CreateBlog(cxt.Request.Context(), title, description, images, categoryID)
	if err != nil {
		UsecaseErrorHandler(cxt, err, "Failed to create blog")
		return
	}

	SuccessHandler(cxt, http.StatusCreated, dto.ToBlogResponse(blog))
}

// GetBlogsHandler lists every blog, newest first
func (h *BlogHandler) GetBlogsHandler(cxt *gin.Context) {
	blogs, err := h.blogUsecase.ListBlogs(cxt.Request.Context())
	if err != nil {
		UsecaseErrorHandler(cxt, err, "Failed to get blog posts")
		return
	}
	SuccessHandler(cxt, http.StatusOK, dto.ToBlogViewResponses(blogs))
}

// GetRecentBlogsHandler lists the newest blogs, limit defaults to the configured count
func (h *BlogHandler) GetRecentBlogsHandler(cxt *gin.Context) {
	limit := 0
	if limitStr := cxt.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			ErrorHandler(cxt, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	blogs, err := h.blogUsecase.GetRecentBlogs(cxt.Request.Context(), limit)
	if err != nil {
		UsecaseErrorHandler(cxt, err, "Failed to get recent blogs")
		return
	}
	SuccessHandler(cxt, http.StatusOK, dto.ToBlogViewResponses(blogs))
}

// GetBlogDetailHandler
func (h *BlogHandler) GetBlogDetailHandler(cxt *gin.Context) {
	blogID := cxt.Param("blogID")
	blog, err := h.blogUsecase.GetBlogByID(cxt.Request.Context(), blogID)
	if err != nil {
		UsecaseErrorHandler(cxt, err, "Failed to get blog")
		return
	}
	SuccessHandler(cxt, http.StatusOK, dto.ToBlogViewResponse(blog))
}

// UpdateBlogHandler changes only the supplied fields; uploaded images replace the old ones
func (h *BlogHandler) UpdateBlogHandler(cxt *gin.Context) {
	blogID := cxt.Param("blogID")

	images, ok := h.readImages(cxt)
	if !ok {
		return
	}

	title := optionalFormValue(cxt, "title")
	description := optionalFormValue(cxt, "description")
	categoryID := optionalFormValue(cxt, "categoryId")

	blog, err := h.blogUsecase.EditBlog(cxt.Request.Context(), blogID, title, description, categoryID, images)
	if err != nil {
		UsecaseErrorHandler(cxt, err, "Failed to update blog")
		return
	}

	SuccessHandler(cxt, http.StatusOK, dto.ToBlogResponse(blog))
}

// DeleteBlogHandler
func (h *BlogHandler) DeleteBlogHandler(cxt *gin.Context) {
	blogID := cxt.Param("blogID")

	var categoryID *string
	if v, ok := cxt.GetQuery("categoryId"); ok && strings.TrimSpace(v) != "" {
		categoryID = &v
	}

	if err := h.blogUsecase.DeleteBlog(cxt.Request.Context(), blogID, categoryID); err != nil {
		UsecaseErrorHandler(cxt, err, "Failed to delete blog")
		return
	}

	MessageHandler(cxt, http.StatusOK, "Deleted successfully")
}

// readImages parses the request form and returns the uploaded images in submission order.
// It writes the error response itself and reports false when the request is unusable.
func (h *BlogHandler) readImages(cxt *gin.Context) ([]entity.ImagePayload, bool) {
	if h.maxUploadBytes > 0 {
		cxt.Request.Body = http.MaxBytesReader(cxt.Writer, cxt.Request.Body, h.maxUploadBytes)
	}

	err := cxt.Request.ParseMultipartForm(multipartMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		err = cxt.Request.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ErrorHandler(cxt, http.StatusRequestEntityTooLarge, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		ErrorHandler(cxt, http.StatusBadRequest, "Invalid form data")
		return nil, false
	}

	form := cxt.Request.MultipartForm
	if form == nil {
		return nil, true
	}

	var images []entity.ImagePayload
	for _, field := range imageFields {
		for _, fh := range form.File[field] {
			img, err := readFile(fh)
			if err != nil {
				ErrorHandler(cxt, http.StatusBadRequest, fmt.Sprintf("Could not read image %q", fh.Filename))
				return nil, false
			}
			images = append(images, img)
		}
	}
	return images, true
}

func readFile(fh *multipart.FileHeader) (entity.ImagePayload, error) {
	f, err := fh.Open()
	if err != nil {
		return entity.ImagePayload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return entity.ImagePayload{}, err
	}
	return entity.ImagePayload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// optionalFormValue returns nil when the field was not sent at all.
func optionalFormValue(cxt *gin.Context, key string) *string {
	if v, ok := cxt.GetPostForm(key); ok {
		return &v
	}
	return nil
}
