package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	"github.com/mikiasgoitom/Folio/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/Folio/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestCreateCategory(t *testing.T) {
	mockUsecase := mocks.NewMockCategoryUsecase()
	r := setupRouter(mocks.NewMockBlogUsecase(), mockUsecase, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest("POST", "/api/v1/categories", jsonBody(t, dto.CreateCategoryRequest{Title: "Travel"}), "application/json"))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"blogs":[]`)
}

func TestCreateCategory_BlankTitle(t *testing.T) {
	r := setupRouter(mocks.NewMockBlogUsecase(), mocks.NewMockCategoryUsecase(), 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest("POST", "/api/v1/categories", bytes.NewBufferString(`{"title":"   "}`), "application/json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestUpdateCategory_DistinguishesAbsentAndEmptyBlogs(t *testing.T) {
	mockUsecase := mocks.NewMockCategoryUsecase()
	r := setupRouter(mocks.NewMockBlogUsecase(), mockUsecase, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest("PUT", "/api/v1/categories/c1", bytes.NewBufferString(`{"title":"Trips"}`), "application/json"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, mockUsecase.LastBlogs)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest("PUT", "/api/v1/categories/c1", bytes.NewBufferString(`{"blogs":[]}`), "application/json"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, mockUsecase.LastBlogs)
	assert.Empty(t, mockUsecase.LastBlogs)
}

func TestDeleteCategory_Conflict(t *testing.T) {
	mockUsecase := mocks.NewMockCategoryUsecase()
	mockUsecase.ShouldFailDelete = true
	mockUsecase.FailWith = apperror.Conflict("category c1 is still referenced by 2 blog(s)")
	r := setupRouter(mocks.NewMockBlogUsecase(), mockUsecase, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest("DELETE", "/api/v1/categories/c1", nil, ""))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decode(t, w).ErrorMessage, "still referenced")
}

func TestGetCategories_ResolvesBlogs(t *testing.T) {
	mockUsecase := mocks.NewMockCategoryUsecase()
	travel := "c1"
	mockUsecase.MockBlogs = []entity.BlogView{{
		Blog:     entity.Blog{ID: "b1", Title: "Alps", CategoryID: &travel},
		Category: &entity.CategoryRef{ID: "c1", Title: "Travel"},
	}}
	r := setupRouter(mocks.NewMockBlogUsecase(), mockUsecase, 0)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Payload []dto.CategoryViewResponse `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Payload, 1)
	require.Len(t, env.Payload[0].Blogs, 1)
	assert.Equal(t, "Travel", env.Payload[0].Blogs[0].Category.Title)
}

func TestGetCategoryBlogs_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockCategoryUsecase()
	mockUsecase.ShouldFailList = true
	mockUsecase.FailWith = apperror.NotFound("category with id 'x' not found")
	r := setupRouter(mocks.NewMockBlogUsecase(), mockUsecase, 0)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/categories/x/blogs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
