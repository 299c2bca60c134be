package v1

import (
	"net/http"
	"strconv"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
	interestUC domain.InterestUsecase
}

// NewEmployerHandler registers employer routes: public self-registration and
// the session-gated dashboard surface.
func NewEmployerHandler(public, employer *gin.RouterGroup, employerUC domain.EmployerUsecase, interestUC domain.InterestUsecase) {
	handler := &EmployerHandler{employerUC: employerUC, interestUC: interestUC}

	public.POST("/employer/register",
		middleware.RateLimit(middleware.RegistrationRateLimit("employer-register")), handler.Register)

	employer.GET("/dashboard", handler.Dashboard)
	employer.POST("/candidates/:id/interest", handler.ExpressInterest)
}

// Register godoc
// @Summary      Employer Registration
// @Description  Register a company account. Logo upload is optional.
// @Tags         employer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /employer/register [post]
func (h *EmployerHandler) Register(c *gin.Context) {
	input := domain.EmployerRegisterInput{
		CompanyName:        c.PostForm("company_name"),
		Email:              c.PostForm("email"),
		Password:           c.PostForm("password"),
		Phone:              c.PostForm("phone"),
		CompanyDescription: c.PostForm("company_description"),
		Location:           c.PostForm("location"),
		Industry:           c.PostForm("industry"),
	}

	if header, err := c.FormFile("logo"); err == nil {
		f, err := header.Open()
		if err != nil {
			c.Error(apperror.BadRequest("Could not read the uploaded logo."))
			return
		}
		input.Logo = &domain.FileUpload{Filename: header.Filename, Content: f}
	}

	employer, err := h.employerUC.Register(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration complete. You can now login.", employer)
}

// Dashboard godoc
// @Summary      Employer Dashboard
// @Description  The employer's own profile together with the candidate pool.
// @Tags         employer
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /employer/dashboard [get]
func (h *EmployerHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.employerUC.GetDashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard loaded.", dashboard)
}

// ExpressInterest godoc
// @Summary      Express Interest in a Candidate
// @Description  Record the employer's interest in a candidate. Repeating the action has no further effect.
// @Tags         employer
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employer/candidates/{id}/interest [post]
func (h *EmployerHandler) ExpressInterest(c *gin.Context) {
	candidateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id."))
		return
	}

	if err := h.interestUC.ExpressEmployerInterest(c.Request.Context(), middleware.UserID(c), candidateID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interest recorded.", nil)
}
