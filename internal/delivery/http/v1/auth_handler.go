package v1

import (
	"context"
	"net/http"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the session login/logout routes for candidates and
// employers. Admin auth is token-based and lives in AdminHandler.
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/employee/login", handler.LoginCandidate)
	public.POST("/employer/login", handler.LoginEmployer)
	public.POST("/logout", handler.Logout)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginCandidate godoc
// @Summary      Candidate Login
// @Description  Authenticate a candidate and establish a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /employee/login [post]
func (h *AuthHandler) LoginCandidate(c *gin.Context) {
	h.login(c, h.authUC.LoginCandidate)
}

// LoginEmployer godoc
// @Summary      Employer Login
// @Description  Authenticate an employer and establish a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /employer/login [post]
func (h *AuthHandler) LoginEmployer(c *gin.Context) {
	h.login(c, h.authUC.LoginEmployer)
}

func (h *AuthHandler) login(c *gin.Context, loginFn func(ctx context.Context, sid, email, password string) (*domain.SessionIdentity, error)) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email and password are required."))
		return
	}

	identity, err := loginFn(c.Request.Context(), middleware.SessionID(c), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful.", identity)
}

// Logout godoc
// @Summary      Logout
// @Description  Clear the session identity. Safe to call when not logged in.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUC.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logged out.", nil)
}
