package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/calorie-craft/backend/internal/service"
	"github.com/pageza/calorie-craft/backend/internal/types"
)

// RecommendationHandler serves BMI recommendations and recipe details.
// Failures from the service are attached with c.Error for the error
// middleware to render.
type RecommendationHandler struct {
	recommendations service.IRecommendationService
	rateLimit       gin.HandlerFunc
}

// NewRecommendationHandler creates a handler. rateLimit guards the routes
// that call the recipe catalog and may be nil.
func NewRecommendationHandler(recommendations service.IRecommendationService, rateLimit gin.HandlerFunc) *RecommendationHandler {
	return &RecommendationHandler{
		recommendations: recommendations,
		rateLimit:       rateLimit,
	}
}

func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	catalog := router.Group("")
	if h.rateLimit != nil {
		catalog.Use(h.rateLimit)
	}

	bmi := catalog.Group("/bmi")
	{
		bmi.POST("/calculate", h.CalculateBMI)
	}

	recipes := catalog.Group("/recipes")
	{
		recipes.GET("/", h.GetRecipe)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// CalculateBMI classifies the submitted height and weight and returns
// matching recipes.
func (h *RecommendationHandler) CalculateBMI(c *gin.Context) {
	req, problems, err := bindCalculateBMI(c)
	if err != nil {
		if errors.Is(err, ErrInvalidBody) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body", Message: ErrInvalidBody.Error()})
			return
		}
		_ = c.Error(err)
		return
	}
	if len(problems) > 0 {
		c.JSON(http.StatusUnprocessableEntity, types.ValidationErrorResponse{
			Status:  "error",
			Message: "Input not valid",
			Errors:  problems,
		})
		return
	}

	result, err := h.recommendations.CalculateAndRecommend(c.Request.Context(), *req.Height, *req.Weight)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecipe returns the details of the recipe named by the id path parameter.
func (h *RecommendationHandler) GetRecipe(c *gin.Context) {
	detail, err := h.recommendations.GetRecipeDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
