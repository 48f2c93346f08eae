package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Folio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// CategoryHandlerInterface defines the methods for the category handler.
type CategoryHandlerInterface interface {
	CreateCategoryHandler(*gin.Context)
	GetCategoriesHandler(*gin.Context)
	GetCategoryBlogsHandler(*gin.Context)
	UpdateCategoryHandler(*gin.Context)
	DeleteCategoryHandler(*gin.Context)
}

var _ CategoryHandlerInterface = (*CategoryHandler)(nil)

type CategoryHandler struct {
	categoryUsecase usecasecontract.ICategoryUseCase
}

func NewCategoryHandler(categoryUsecase usecasecontract.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUsecase: categoryUsecase,
	}
}

func (h *CategoryHandler) CreateCategoryHandler(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	category, err := h.categoryUsecase.CreateCategory(c.Request.Context(), req.Title)
	if err != nil {
		UsecaseErrorHandler(c, err, "Failed to create category")
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCategoryResponse(category))
}

// GetCategoriesHandler lists categories with their blogs resolved
func (h *CategoryHandler) GetCategoriesHandler(c *gin.Context) {
	categories, err := h.categoryUsecase.ListCategories(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err, "Failed to get categories")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCategoryViewResponses(categories))
}

func (h *CategoryHandler) GetCategoryBlogsHandler(c *gin.Context) {
	blogs, err := h.categoryUsecase.GetBlogsByCategory(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		UsecaseErrorHandler(c, err, "Failed to get category blogs")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogViewValueResponses(blogs))
}

func (h *CategoryHandler) UpdateCategoryHandler(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	category, err := h.categoryUsecase.EditCategory(c.Request.Context(), c.Param("categoryID"), req.Title, req.Blogs)
	if err != nil {
		UsecaseErrorHandler(c, err, "Failed to update category")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *CategoryHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.categoryUsecase.DeleteCategory(c.Request.Context(), c.Param("categoryID")); err != nil {
		UsecaseErrorHandler(c, err, "Failed to delete category")
		return
	}
	MessageHandler(c, http.StatusOK, "Deleted successfully")
}
