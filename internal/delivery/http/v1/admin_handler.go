package v1

import (
	"net/http"
	"strconv"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers the staff dashboard routes. Login is public; the
// rest sit behind the admin bearer-token middleware.
func NewAdminHandler(public, admin *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	public.POST("/admin/login", handler.Login)

	admin.GET("/candidates", handler.ListCandidates)
	admin.GET("/employers", handler.ListEmployers)
	admin.GET("/jobs", handler.ListJobs)
	admin.GET("/contacts", handler.ListContacts)
	admin.POST("/jobs", handler.CreateJob)
	admin.DELETE("/jobs/:id", handler.DeleteJob)
	admin.DELETE("/candidates/:id", handler.DeleteCandidate)
	admin.DELETE("/employers/:id", handler.DeleteEmployer)
	admin.DELETE("/contacts/:id", handler.DeleteContact)
	admin.POST("/candidates/:id/toggle-placed", handler.TogglePlaced)
}

// Login godoc
// @Summary      Admin Login
// @Description  Authenticate the staff account and issue a bearer token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email and password are required."))
		return
	}

	token, err := h.adminUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful.", gin.H{"token": token})
}

// ListCandidates godoc
// @Summary      List All Candidates
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/candidates [get]
func (h *AdminHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.adminUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates loaded.", candidates)
}

// ListEmployers godoc
// @Summary      List All Employers
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/employers [get]
func (h *AdminHandler) ListEmployers(c *gin.Context) {
	employers, err := h.adminUC.ListEmployers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employers loaded.", employers)
}

// ListJobs godoc
// @Summary      List All Job Openings
// @Description  Includes inactive postings, unlike the public listing.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.adminUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs loaded.", jobs)
}

// ListContacts godoc
// @Summary      List Contact Form Messages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/contacts [get]
func (h *AdminHandler) ListContacts(c *gin.Context) {
	messages, err := h.adminUC.ListContacts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact messages loaded.", messages)
}

// CreateJob godoc
// @Summary      Post a Job on Behalf of an Employer
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body      domain.JobOpening  true  "Job Opening (employer_id required)"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/jobs [post]
func (h *AdminHandler) CreateJob(c *gin.Context) {
	var job domain.JobOpening
	if err := c.ShouldBindJSON(&job); err != nil {
		c.Error(apperror.BadRequest("Invalid request body."))
		return
	}

	if err := h.adminUC.CreateJob(c.Request.Context(), &job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job posted.", job)
}

// DeleteJob godoc
// @Summary      Delete Any Job Opening
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id."))
		return
	}

	if err := h.adminUC.DeleteJob(c.Request.Context(), jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted.", nil)
}

// DeleteCandidate godoc
// @Summary      Delete a Candidate Account
// @Description  Interest records referencing the candidate are removed with it.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id} [delete]
func (h *AdminHandler) DeleteCandidate(c *gin.Context) {
	candidateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id."))
		return
	}

	if err := h.adminUC.DeleteCandidate(c.Request.Context(), candidateID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted.", nil)
}

// DeleteEmployer godoc
// @Summary      Delete an Employer Account
// @Description  Job openings and interest records referencing the employer are removed with it.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employer ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/employers/{id} [delete]
func (h *AdminHandler) DeleteEmployer(c *gin.Context) {
	employerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid employer id."))
		return
	}

	if err := h.adminUC.DeleteEmployer(c.Request.Context(), employerID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer deleted.", nil)
}

// DeleteContact godoc
// @Summary      Delete a Contact Form Message
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  response.Response
// @Router       /admin/contacts/{id} [delete]
func (h *AdminHandler) DeleteContact(c *gin.Context) {
	contactID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid contact id."))
		return
	}

	if err := h.adminUC.DeleteContact(c.Request.Context(), contactID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact message deleted.", nil)
}

// TogglePlaced godoc
// @Summary      Toggle Candidate Placement Flag
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id}/toggle-placed [post]
func (h *AdminHandler) TogglePlaced(c *gin.Context) {
	candidateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id."))
		return
	}

	placed, err := h.adminUC.TogglePlaced(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Placement status updated.", gin.H{"is_placed": placed})
}
