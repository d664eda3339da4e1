package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-service/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductRouter(svc ProductService) http.Handler {
	h := NewProductHandler(svc, zerolog.Nop())
	r := chi.NewRouter()
	r.Get("/products", h.List)
	r.Post("/products", h.Create)
	r.Get("/products/{id}", h.GetByID)
	r.Put("/products/{id}", h.Update)
	r.Delete("/products/{id}", h.Delete)
	return r
}

func TestProductHandler_List(t *testing.T) {
	svc := new(MockProductService)
	svc.On("List", mock.Anything).Return([]model.Product{
		{ID: uuid.New(), Name: "Go Guide", Price: decimal.RequireFromString("19.99"), Stock: 5, CategoryName: "Books"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp model.Response[[]map[string]any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	require.Len(t, *resp.Data, 1)
	assert.Equal(t, "19.99", (*resp.Data)[0]["price"])
	assert.Equal(t, "Books", (*resp.Data)[0]["category_name"])
	assert.NotContains(t, (*resp.Data)[0], "version")
}

func TestProductHandler_GetByID(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	rating := int32(5)

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockProductService)
		expectedStatus int
		expectReviews  bool
	}{
		{
			name: "Plain fetch when flag absent",
			setupMock: func(m *MockProductService) {
				m.On("GetByID", mock.Anything, id).Return(&model.Product{ID: id, Name: "Go Guide"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Plain fetch when flag false",
			query: "?with_reviews=false",
			setupMock: func(m *MockProductService) {
				m.On("GetByID", mock.Anything, id).Return(&model.Product{ID: id, Name: "Go Guide"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Aggregated fetch when flag true",
			query: "?with_reviews=true",
			setupMock: func(m *MockProductService) {
				m.On("GetByIDWithReviews", mock.Anything, id).Return(&model.ProductWithReviews{
					ID:      id,
					Name:    "Go Guide",
					Reviews: []model.Review{{UserID: userID, Rating: &rating}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectReviews:  true,
		},
		{
			name:           "Unparsable flag",
			query:          "?with_reviews=maybe",
			setupMock:      func(m *MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Not found",
			setupMock: func(m *MockProductService) {
				m.On("GetByID", mock.Anything, id).Return(nil, model.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockProductService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/products/"+id.String()+tt.query, nil)
			rec := httptest.NewRecorder()
			newProductRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp model.Response[map[string]any]
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.NotNil(t, resp.Data)
				reviews, ok := (*resp.Data)["reviews"]
				assert.Equal(t, tt.expectReviews, ok)
				if tt.expectReviews {
					assert.Len(t, reviews, 1)
				}
			}

			svc.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	categoryID := uuid.New()
	price := decimal.RequireFromString("19.99")

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockProductService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"name":"Go Guide","price":"19.99","stock":5,"category_id":"` + categoryID.String() + `"}`,
			setupMock: func(m *MockProductService) {
				m.On("Create", mock.Anything, "Go Guide", (*string)(nil), mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(price)
				}), int32(5), categoryID).Return(&model.Product{ID: uuid.New(), Name: "Go Guide", CategoryName: "Books"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing price",
			body:           `{"name":"Go Guide","stock":5,"category_id":"` + categoryID.String() + `"}`,
			setupMock:      func(m *MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed category id",
			body:           `{"name":"Go Guide","price":"1","stock":5,"category_id":"nope"}`,
			setupMock:      func(m *MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown category",
			body: `{"name":"Go Guide","price":"19.99","stock":5,"category_id":"` + categoryID.String() + `"}`,
			setupMock: func(m *MockProductService) {
				m.On("Create", mock.Anything, "Go Guide", (*string)(nil), mock.Anything, int32(5), categoryID).
					Return(nil, fmt.Errorf("failed to resolve category: %w", model.ErrUnknownCategory))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockProductService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newProductRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create_UnknownCategoryEnvelope(t *testing.T) {
	categoryID := uuid.New()
	svc := new(MockProductService)
	svc.On("Create", mock.Anything, "Go Guide", (*string)(nil), mock.Anything, int32(5), categoryID).
		Return(nil, fmt.Errorf("failed to resolve category: %w", model.ErrUnknownCategory))

	body := `{"name":"Go Guide","price":"19.99","stock":5,"category_id":"` + categoryID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, model.StatusError, resp.Status)
	assert.Equal(t, "Failed to create product", resp.Message)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Errors)
	assert.Equal(t, "BAD_REQUEST", resp.Errors.Code)
	assert.Equal(t, "category does not exist", resp.Errors.Message)
}

func TestProductHandler_Update(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockProductService)
		expectedStatus int
	}{
		{
			name: "Partial update",
			body: `{"stock":7}`,
			setupMock: func(m *MockProductService) {
				m.On("Update", mock.Anything, id, mock.MatchedBy(func(p model.ProductPatch) bool {
					return p.Stock != nil && *p.Stock == 7 && p.Name == nil && p.Price == nil && p.Description == nil
				})).Return(&model.Product{ID: id, Stock: 7}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Empty body object is a no-op",
			body: `{}`,
			setupMock: func(m *MockProductService) {
				m.On("Update", mock.Anything, id, model.ProductPatch{}).Return(&model.Product{ID: id}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Blank name",
			body:           `{"name":" "}`,
			setupMock:      func(m *MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown product",
			body: `{"name":"Renamed"}`,
			setupMock: func(m *MockProductService) {
				m.On("Update", mock.Anything, id, mock.Anything).
					Return(nil, fmt.Errorf("failed to get product: %w", model.ErrUnknownProduct))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Concurrent update",
			body: `{"name":"Renamed"}`,
			setupMock: func(m *MockProductService) {
				m.On("Update", mock.Anything, id, mock.Anything).Return(nil, model.ErrConcurrentUpdate)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockProductService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPut, "/products/"+id.String(), strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newProductRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{name: "Success", expectedStatus: http.StatusOK},
		{name: "Not found", mockError: model.ErrProductNotFound, expectedStatus: http.StatusNotFound},
		{name: "Unexpected error", mockError: errors.New("connection reset"), expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockProductService)
			svc.On("Delete", mock.Anything, id).Return(tt.mockError)

			req := httptest.NewRequest(http.MethodDelete, "/products/"+id.String(), nil)
			rec := httptest.NewRecorder()
			newProductRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
