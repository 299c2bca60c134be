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

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers the public job listing and the employer job
// management routes.
func NewJobHandler(public, employer *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.ListActive)

	employer.GET("/jobs", handler.ListMine)
	employer.POST("/jobs", handler.Create)
	employer.DELETE("/jobs/:id", handler.Delete)
}

// ListActive godoc
// @Summary      List Open Jobs
// @Description  All currently active job openings, newest first.
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) ListActive(c *gin.Context) {
	jobs, err := h.jobUC.ListActiveJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs loaded.", jobs)
}

// ListMine godoc
// @Summary      List Own Job Postings
// @Tags         employer
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /employer/jobs [get]
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.jobUC.ListEmployerJobs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs loaded.", jobs)
}

// Create godoc
// @Summary      Post a Job Opening
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobOpening  true  "Job Opening"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /employer/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var job domain.JobOpening
	if err := c.ShouldBindJSON(&job); err != nil {
		c.Error(apperror.BadRequest("Invalid request body."))
		return
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), middleware.UserID(c), &job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job posted.", job)
}

// Delete godoc
// @Summary      Delete a Job Opening
// @Description  Removes one of the employer's own postings.
// @Tags         employer
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employer/jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id."))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), middleware.UserID(c), jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted.", nil)
}
