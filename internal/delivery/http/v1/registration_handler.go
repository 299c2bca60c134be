package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationUC domain.RegistrationUsecase
}

// NewRegistrationHandler registers the employee registration and payment
// routes. All of them are public; staged state lives in the session.
func NewRegistrationHandler(public *gin.RouterGroup, registrationUC domain.RegistrationUsecase) {
	handler := &RegistrationHandler{registrationUC: registrationUC}

	employee := public.Group("/employee")
	{
		employee.POST("/temp-save", middleware.RateLimit(middleware.RegistrationRateLimit("temp-save")), handler.TempSave)
		employee.POST("/register", middleware.RateLimit(middleware.RegistrationRateLimit("employee-register")), handler.RegisterDirect)
	}

	payment := public.Group("/payment")
	{
		payment.POST("/checkout", handler.CreateCheckout)
		payment.GET("/success", handler.PaymentSuccess)
		payment.GET("/cancel", handler.PaymentCancel)
	}
}

// tempSaveInput reads the multipart registration form off the request.
func tempSaveInput(c *gin.Context) (domain.TempSaveInput, error) {
	input := domain.TempSaveInput{
		Name:          c.PostForm("name"),
		Email:         c.PostForm("email"),
		Password:      c.PostForm("password"),
		Phone:         c.PostForm("phone"),
		Nationality:   c.PostForm("nationality"),
		Location:      c.PostForm("location"),
		Qualification: c.PostForm("qualification"),
		Experience:    c.PostForm("experience"),
		Role:          c.PostForm("role"),
		Plan:          c.PostForm("plan"),
	}

	if header, err := c.FormFile("resume"); err == nil {
		f, err := header.Open()
		if err != nil {
			return input, apperror.BadRequest("Could not read the uploaded resume.")
		}
		input.Resume = &domain.FileUpload{Filename: header.Filename, Content: f}
	}
	if header, err := c.FormFile("photo"); err == nil {
		f, err := header.Open()
		if err != nil {
			return input, apperror.BadRequest("Could not read the uploaded photo.")
		}
		input.Photo = &domain.FileUpload{Filename: header.Filename, Content: f}
	}

	return input, nil
}

// TempSave godoc
// @Summary      Stage Employee Registration
// @Description  Validate and stage a registration in the session ahead of payment. Repeats overwrite the staged data.
// @Tags         registration
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /employee/temp-save [post]
func (h *RegistrationHandler) TempSave(c *gin.Context) {
	input, err := tempSaveInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.registrationUC.TempSave(c.Request.Context(), middleware.SessionID(c), input); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Registration saved. Continue to payment.", nil)
}

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// CreateCheckout godoc
// @Summary      Create Payment Checkout Session
// @Description  Start a hosted checkout for the selected plan and return the processor session id.
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        checkout  body      CheckoutRequest  true  "Plan Selection"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      503       {object}  response.Response
// @Router       /payment/checkout [post]
func (h *RegistrationHandler) CreateCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please select a plan."))
		return
	}

	id, err := h.registrationUC.CreateCheckoutSession(c.Request.Context(), req.Plan)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Checkout session created.", gin.H{"checkout_session_id": id})
}

// PaymentSuccess godoc
// @Summary      Finalize Registration After Payment
// @Description  Landing endpoint for the processor success redirect. Converts the staged registration into a permanent account.
// @Tags         registration
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /payment/success [get]
func (h *RegistrationHandler) PaymentSuccess(c *gin.Context) {
	candidate, err := h.registrationUC.Finalize(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration complete. You can now login.", candidate)
}

// PaymentCancel godoc
// @Summary      Payment Cancelled
// @Description  Landing endpoint for the processor cancel redirect. The staged registration stays in the session so the user can retry.
// @Tags         registration
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /payment/cancel [get]
func (h *RegistrationHandler) PaymentCancel(c *gin.Context) {
	response.Success(c, http.StatusOK, "Payment cancelled. Your registration details are saved; you can retry payment.", nil)
}

// RegisterDirect godoc
// @Summary      Direct Employee Registration
// @Description  Single-step registration without staging or payment.
// @Tags         registration
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /employee/register [post]
func (h *RegistrationHandler) RegisterDirect(c *gin.Context) {
	base, err := tempSaveInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	input := domain.DirectRegisterInput{
		TempSaveInput:   base,
		ConfirmPassword: c.PostForm("confirm_password"),
	}

	candidate, err := h.registrationUC.RegisterDirect(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration complete. You can now login.", candidate)
}
