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

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	interestUC  domain.InterestUsecase
}

// NewCandidateHandler registers the employee-facing routes behind a session
// with the employee role.
func NewCandidateHandler(employee *gin.RouterGroup, candidateUC domain.CandidateUsecase, interestUC domain.InterestUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, interestUC: interestUC}

	employee.GET("/dashboard", handler.Dashboard)
	employee.PUT("/skills", handler.UpdateSkills)
	employee.POST("/jobs/:id/interest", handler.ExpressInterest)
}

// Dashboard godoc
// @Summary      Employee Dashboard
// @Description  The candidate's own profile together with the open job listings.
// @Tags         employee
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /employee/dashboard [get]
func (h *CandidateHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.candidateUC.GetDashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard loaded.", dashboard)
}

type UpdateSkillsRequest struct {
	Skills string `json:"skills"`
}

// UpdateSkills godoc
// @Summary      Update Skills
// @Description  Replace the candidate's skill list from a comma-separated string.
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        skills  body      UpdateSkillsRequest  true  "Comma-separated skills"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /employee/skills [put]
func (h *CandidateHandler) UpdateSkills(c *gin.Context) {
	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body."))
		return
	}

	if err := h.candidateUC.UpdateSkills(c.Request.Context(), middleware.UserID(c), req.Skills); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills updated.", nil)
}

// ExpressInterest godoc
// @Summary      Express Interest in a Job
// @Description  Record the candidate's interest in a job opening. Repeating the action has no further effect.
// @Tags         employee
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employee/jobs/{id}/interest [post]
func (h *CandidateHandler) ExpressInterest(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id."))
		return
	}

	if err := h.interestUC.ExpressCandidateInterest(c.Request.Context(), middleware.UserID(c), jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interest recorded.", nil)
}
