package v1

import (
	"net/http"

	"jobboard-backend/config"
	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	RegistrationUC domain.RegistrationUsecase
	AuthUC         domain.AuthUsecase
	CandidateUC    domain.CandidateUsecase
	EmployerUC     domain.EmployerUsecase
	JobUC          domain.JobUsecase
	InterestUC     domain.InterestUsecase
	ContactUC      domain.ContactUsecase
	AdminUC        domain.AdminUsecase
	Sessions       session.Store
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.Session(deps.Config.CookieSecure))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Session-gated groups
	employee := v1.Group("/employee")
	employee.Use(middleware.RequireRole(deps.Sessions, domain.RoleEmployee))

	employer := v1.Group("/employer")
	employer.Use(middleware.RequireRole(deps.Sessions, domain.RoleEmployer))

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(deps.Config.JWTSecret))

	NewContactHandler(v1, deps.ContactUC)
	NewRegistrationHandler(v1, deps.RegistrationUC)
	NewAuthHandler(v1, deps.AuthUC)
	NewCandidateHandler(employee, deps.CandidateUC, deps.InterestUC)
	NewEmployerHandler(v1, employer, deps.EmployerUC, deps.InterestUC)
	NewJobHandler(v1, employer, deps.JobUC)
	NewAdminHandler(v1, admin, deps.AdminUC)

	return r
}
