package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/calorie-craft/backend/internal/middleware"
	"github.com/pageza/calorie-craft/backend/internal/mocks"
	"github.com/pageza/calorie-craft/backend/internal/service"
	"github.com/pageza/calorie-craft/backend/internal/types"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockRecommendationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := new(mocks.MockRecommendationService)
	router := gin.New()
	router.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	RegisterRoutes(router, svc, nil)
	return router, svc
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateBMI(t *testing.T) {
	router, svc := setupTestRouter(t)

	expected := &types.BMIRecommendation{
		BMI:      "22.86",
		Category: types.CategoryNormal,
		Recipes: []types.RecipeSummary{
			{ID: 123, Title: "Healthy Chicken Salad", Image: "image.jpg", ReadyInMinutes: 20, Calories: "450"},
		},
	}
	svc.On("CalculateAndRecommend", mock.Anything, 175.0, 70.0).Return(expected, nil)

	w := performRequest(router, http.MethodPost, "/api/bmi/calculate", `{"height": 175, "weight": 70, "gender": "male", "notes": "extra"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{
		"bmi": "22.86",
		"category": "Normal weight",
		"recipes": [{"id": 123, "title": "Healthy Chicken Salad", "image": "image.jpg", "readyInMinutes": 20, "calories": "450"}]
	}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestCalculateBMIValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []types.FieldError
	}{
		{
			name: "missing fields",
			body: `{}`,
			expected: []types.FieldError{
				{Field: "height", Message: "Height is a required field."},
				{Field: "weight", Message: "Weight is a required field."},
				{Field: "gender", Message: "Gender is a required field."},
			},
		},
		{
			name: "empty body",
			body: "",
			expected: []types.FieldError{
				{Field: "height", Message: "Height is a required field."},
				{Field: "weight", Message: "Weight is a required field."},
				{Field: "gender", Message: "Gender is a required field."},
			},
		},
		{
			name: "wrong types",
			body: `{"height": "tall", "weight": "heavy", "gender": 123}`,
			expected: []types.FieldError{
				{Field: "height", Message: "Height must be a number."},
				{Field: "weight", Message: "Weight must be a number."},
				{Field: "gender", Message: "Gender must be a string."},
			},
		},
		{
			name: "numeric strings are not coerced",
			body: `{"height": "175", "weight": 70, "gender": "male"}`,
			expected: []types.FieldError{
				{Field: "height", Message: "Height must be a number."},
			},
		},
		{
			name: "rule violations",
			body: `{"height": -170, "weight": 0, "gender": "other"}`,
			expected: []types.FieldError{
				{Field: "height", Message: "Height must be a positive value."},
				{Field: "weight", Message: "Weight must be a positive value."},
				{Field: "gender", Message: "Gender must be either male or female."},
			},
		},
		{
			name: "too many decimals",
			body: `{"height": 175.123, "weight": 70.456, "gender": "male"}`,
			expected: []types.FieldError{
				{Field: "height", Message: "Height must have at most 2 decimal places."},
				{Field: "weight", Message: "Weight must have at most 2 decimal places."},
			},
		},
		{
			name: "uppercase gender",
			body: `{"height": 170, "weight": 65, "gender": "FEMALE"}`,
			expected: []types.FieldError{
				{Field: "gender", Message: "Gender must be either male or female."},
				{Field: "gender", Message: "gender must only contain lowercase characters"},
			},
		},
		{
			name: "null values",
			body: `{"height": null, "weight": 65, "gender": null}`,
			expected: []types.FieldError{
				{Field: "height", Message: "Height must be a number."},
				{Field: "gender", Message: "Gender must be a string."},
			},
		},
		{
			name: "every broken rule is reported",
			body: `{"height": -1.234, "weight": 70, "gender": "male"}`,
			expected: []types.FieldError{
				{Field: "height", Message: "Height must be a positive value."},
				{Field: "height", Message: "Height must have at most 2 decimal places."},
			},
		},
		{
			name: "empty gender",
			body: `{"height": 170, "weight": 65, "gender": ""}`,
			expected: []types.FieldError{
				{Field: "gender", Message: "Gender must be either male or female."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setupTestRouter(t)

			w := performRequest(router, http.MethodPost, "/api/bmi/calculate", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var resp types.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, "Input not valid", resp.Message)
			assert.Equal(t, tt.expected, resp.Errors)
			svc.AssertNotCalled(t, "CalculateAndRecommend", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCalculateBMIAcceptsTwoDecimals(t *testing.T) {
	router, svc := setupTestRouter(t)
	svc.On("CalculateAndRecommend", mock.Anything, 175.12, 70.05).
		Return(&types.BMIRecommendation{BMI: "22.84", Category: types.CategoryNormal, Recipes: []types.RecipeSummary{}}, nil)

	w := performRequest(router, http.MethodPost, "/api/bmi/calculate", `{"height": 175.12, "weight": 70.05, "gender": "female"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recipes":[]`)
}

func TestCalculateBMIInvalidJSON(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, body := range []string{`{"height": `, `[1, 2]`, `"text"`} {
		w := performRequest(router, http.MethodPost, "/api/bmi/calculate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestCalculateBMICatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"authentication", service.TranslateCatalogError("search", 401, nil), http.StatusUnauthorized},
		{"quota", service.TranslateCatalogError("search", 402, nil), http.StatusPaymentRequired},
		{"unavailable", service.TranslateCatalogError("search", 0, errors.New("dial")), http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setupTestRouter(t)
			svc.On("CalculateAndRecommend", mock.Anything, 160.0, 100.0).Return(nil, tt.err)

			w := performRequest(router, http.MethodPost, "/api/bmi/calculate", `{"height": 160, "weight": 100, "gender": "male"}`)
			assert.Equal(t, tt.code, w.Code)
			assert.NotContains(t, w.Body.String(), "recipes")
		})
	}
}

func TestGetRecipe(t *testing.T) {
	router, svc := setupTestRouter(t)
	detail := &types.RecipeDetail{
		ID:                   716429,
		Title:                "Pasta with Garlic",
		Ingredients:          []string{"1 lb spaghetti"},
		AnalyzedInstructions: []types.InstructionStep{{Number: 1, Step: "Boil water."}},
		Calories:             "500",
		Nutrients:            []types.Nutrient{{Name: "Calories", Amount: 500, Unit: "kcal"}},
	}
	svc.On("GetRecipeDetails", mock.Anything, "716429").Return(detail, nil)

	w := performRequest(router, http.MethodGet, "/api/recipes/716429", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got types.RecipeDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *detail, got)
}

func TestGetRecipeWireKeys(t *testing.T) {
	router, svc := setupTestRouter(t)
	svc.On("GetRecipeDetails", mock.Anything, "1").Return(&types.RecipeDetail{
		ID:                   1,
		Ingredients:          []string{},
		AnalyzedInstructions: []types.InstructionStep{},
		Nutrients:            []types.Nutrient{},
		SpoonacularScore:     95,
		HealthScore:          80,
	}, nil)

	w := performRequest(router, http.MethodGet, "/api/recipes/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{
		"id", "title", "image", "ingredients", "instructions", "analyzedInstructions",
		"calories", "nutrients", "sourceUrl", "spoonacularScore", "healthScore",
		"readyInMinutes", "servings",
	} {
		assert.Contains(t, body, key)
	}
	assert.Equal(t, 95.0, body["spoonacularScore"])
}

func TestGetRecipeMissingID(t *testing.T) {
	router, svc := setupTestRouter(t)
	svc.On("GetRecipeDetails", mock.Anything, "").Return(nil, service.ErrMissingIdentifier)

	w := performRequest(router, http.MethodGet, "/api/recipes/", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Recipe ID is required."}`, w.Body.String())
}

func TestGetRecipeCatalogError(t *testing.T) {
	router, svc := setupTestRouter(t)
	svc.On("GetRecipeDetails", mock.Anything, "999").Return(nil, service.TranslateCatalogError("detail", 404, nil))

	w := performRequest(router, http.MethodGet, "/api/recipes/999", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(service.ErrKindCatalogUnavailable), body.Error)
	assert.Equal(t, "could not retrieve recipe details from the recipe catalog", body.Message)
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := performRequest(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "healthy")
	}
}
