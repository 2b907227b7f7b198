package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finvest_backend/internal/auth"
	"finvest_backend/internal/middleware"
	"finvest_backend/internal/services"
	"finvest_backend/internal/services/dto"
)

type DetailsHandler struct {
	*BaseHandler
	detailsService services.UserDetailsService
	tokens         *auth.TokenService
}

func NewDetailsHandler(base *BaseHandler, detailsService services.UserDetailsService, tokens *auth.TokenService) *DetailsHandler {
	return &DetailsHandler{
		BaseHandler:    base,
		detailsService: detailsService,
		tokens:         tokens,
	}
}

// RegisterRoutes wires the investor-profile endpoints, all behind
// bearer auth. The profile is addressed by the token's user, never by
// a path parameter, so one user can never touch another's profile.
func (h *DetailsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.Use(middleware.AuthMiddleware(h.tokens))
	{
		user.GET("/details", h.Get)
		user.POST("/details", h.Create)
		user.PUT("/details", h.Update)
	}
}

func (h *DetailsHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.detailsService.Get(c.Request.Context(), db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DetailsHandler) Create(c *gin.Context) {
	var req dto.UserDetailsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.detailsService.Create(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *DetailsHandler) Update(c *gin.Context) {
	var req dto.UserDetailsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.detailsService.Update(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
