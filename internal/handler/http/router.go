package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/planillapa/planilla-backend-go/internal/handler/http/middleware"
	"github.com/planillapa/planilla-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	legalHandler LegalHandler,
	payrollHandler PayrollHandler,
	decimoHandler DecimoHandler,
	sipeHandler SIPEHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "planilla-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		// Every route requires an access token from the identity provider.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/my", companyHandler.GetMy)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", companyHandler.Create)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAccountant)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Post("/{id}/deactivate", employeeHandler.Deactivate)
					r.Post("/{id}/reactivate", employeeHandler.Reactivate)
				})
			})

			// Legal configuration changes the math for everyone, so writes
			// stay admin only.
			r.Route("/legal", func(r chi.Router) {
				r.Get("/parameters", legalHandler.ListParameters)
				r.Get("/brackets", legalHandler.ListBrackets)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/parameters", legalHandler.CreateParameter)
					r.Put("/parameters/{id}", legalHandler.UpdateParameter)
					r.Delete("/parameters/{id}", legalHandler.DeleteParameter)
					r.Post("/brackets", legalHandler.CreateBracket)
					r.Delete("/brackets/{id}", legalHandler.DeleteBracket)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAccountant)
					r.Post("/calculate", payrollHandler.Calculate)
					r.Post("/generate", payrollHandler.Generate)
					r.Post("/approve", payrollHandler.Approve)
					r.Post("/mark-paid", payrollHandler.MarkPaid)
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})

			r.Route("/decimo", func(r chi.Router) {
				r.Get("/", decimoHandler.ListByYear)
				r.Get("/{id}", decimoHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAccountant)
					r.Post("/calculate", decimoHandler.Calculate)
					r.Post("/generate", decimoHandler.Generate)
					r.Post("/{id}/pay-installment", decimoHandler.PayInstallment)
				})
			})

			r.Route("/sipe", func(r chi.Router) {
				r.Get("/", sipeHandler.List)
				r.Get("/{id}", sipeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAccountant)
					r.Post("/calculate", sipeHandler.Calculate)
					r.Post("/{id}/mark-paid", sipeHandler.MarkPaid)
				})
			})
		})
	})
	return r
}
