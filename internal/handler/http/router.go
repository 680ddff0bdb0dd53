package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rh-war/hr-console-backend-go/internal/config"
	"github.com/rh-war/hr-console-backend-go/internal/handler/http/middleware"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	leaveHandler LeaveHandler,
	recruitmentHandler RecruitmentHandler,
	reviewHandler ReviewHandler,
	userHandler UserHandler,
	reportHandler ReportHandler,
	assistHandler AssistHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/menu", userHandler.MenuSections)
			r.Get("/dashboard", reportHandler.Dashboard)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Post("/", masterHandler.CreateDepartment)
				r.Put("/{id}", masterHandler.UpdateDepartment)
				r.Delete("/{id}", masterHandler.DeleteDepartment)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", masterHandler.ListRoles)
				r.Post("/", masterHandler.CreateRole)
				r.Put("/{id}", masterHandler.UpdateRole)
				r.Delete("/{id}", masterHandler.DeleteRole)
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Get("/", masterHandler.ListContracts)
				r.Post("/", masterHandler.CreateContract)
				r.Put("/{id}", masterHandler.UpdateContract)
				r.Delete("/{id}", masterHandler.DeleteContract)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.ListRequests)
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/timeline", leaveHandler.Timeline)
				r.Get("/calendar", leaveHandler.Calendar)
				r.Get("/day", leaveHandler.Day)
				r.Get("/{id}", leaveHandler.GetRequest)
				r.Put("/{id}", leaveHandler.UpdateRequest)
				r.Delete("/{id}", leaveHandler.DeleteRequest)
				r.Post("/{id}/approve", leaveHandler.ApproveRequest)
				r.Post("/{id}/reject", leaveHandler.RejectRequest)
				r.Post("/{id}/revert", leaveHandler.RevertRequest)
			})

			r.Route("/recruitment", func(r chi.Router) {
				r.Get("/board", recruitmentHandler.Board)

				r.Route("/jobs", func(r chi.Router) {
					r.Get("/", recruitmentHandler.ListJobs)
					r.Post("/", recruitmentHandler.CreateJob)
					r.Get("/{id}", recruitmentHandler.GetJob)
					r.Put("/{id}", recruitmentHandler.UpdateJob)
					r.Delete("/{id}", recruitmentHandler.DeleteJob)
				})

				r.Route("/stages", func(r chi.Router) {
					r.Get("/", recruitmentHandler.ListStages)
					r.Post("/", recruitmentHandler.CreateStage)
					r.Put("/{id}", recruitmentHandler.UpdateStage)
					r.Delete("/{id}", recruitmentHandler.DeleteStage)
				})

				r.Route("/candidates", func(r chi.Router) {
					r.Get("/", recruitmentHandler.ListCandidates)
					r.Post("/", recruitmentHandler.CreateCandidate)
					r.Get("/{id}", recruitmentHandler.GetCandidate)
					r.Put("/{id}", recruitmentHandler.UpdateCandidate)
					r.Delete("/{id}", recruitmentHandler.DeleteCandidate)
					r.Post("/{id}/move", recruitmentHandler.MoveCandidate)
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", reviewHandler.List)
				r.Post("/", reviewHandler.Create)
				r.Get("/{id}", reviewHandler.Get)
				r.Put("/{id}", reviewHandler.Update)
				r.Delete("/{id}", reviewHandler.Delete)
				r.Post("/{id}/suggest", reviewHandler.Suggest)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/leave", reportHandler.Leave)
				r.Get("/employees", reportHandler.Employees)
				r.Get("/recruitment", reportHandler.Recruitment)
				r.Get("/{kind}/csv", reportHandler.ExportCSV)
				r.Get("/{kind}/document", reportHandler.ExportDocument)
			})

			r.Route("/assist", func(r chi.Router) {
				r.Post("/job-description", assistHandler.JobDescription)
			})

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})
		})
	})
	return r
}
