package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/portfolio-site/errs"
)

// setupPageRoutes registers the server rendered site. protect guards every
// page that renders or accepts an HTML form.
func setupPageRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, protect func(http.Handler) http.Handler) {
	r.Handle("/static/*", staticHandler())

	r.Get("/language/{lang}", handlers.pageHandler.setLanguage())

	r.Group(func(r chi.Router) {
		r.Use(protect)

		r.Get("/", handlers.pageHandler.home())
		r.Get("/case-study/{projectID}", handlers.pageHandler.caseStudy())
		r.Post("/contact", handlers.pageHandler.contact())

		r.Get("/auth", handlers.authHandler.loginPage())
		r.Post("/auth", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.requireAdminPage)

			r.Get("/", handlers.adminPage.show())
			r.Post("/settings", handlers.adminPage.saveSettings())
			r.Post("/projects", handlers.adminPage.saveProject())
			r.Post("/case-studies", handlers.adminPage.saveCaseStudy())
			r.Post("/messages/{id}/toggle-read", handlers.adminPage.toggleMessageRead())

			for _, kind := range []string{tabProjects, tabCaseStudies, tabMessages} {
				r.Get("/"+kind+"/{id}/delete", handlers.adminPage.confirmDelete(kind))
				r.Post("/"+kind+"/{id}/delete", handlers.adminPage.delete(kind))
			}
		})
	})

	r.NotFound(handlers.pageHandler.notFound())
}

// setupAPIRoutes registers the JSON API under /api.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/home", handlers.contentHandler.getHome())
		r.Get("/settings", handlers.contentHandler.getSettings())
		r.Get("/projects", handlers.contentHandler.getProjects())
		r.Get("/projects/{projectID}", handlers.contentHandler.getProject())
		r.Get("/projects/{projectID}/case-study", handlers.contentHandler.getProjectCaseStudy())
		r.Get("/case-studies", handlers.contentHandler.getCaseStudies())
		r.Post("/contact", handlers.contentHandler.submitContact())

		r.Post("/auth/login", handlers.authHandler.apiLogin())
		r.Get("/auth/session", handlers.authHandler.apiSession())

		// Admin endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.requireAdminAPI)

			r.Get("/settings", handlers.adminAPIHandler.getSettings())
			r.Put("/settings", handlers.adminAPIHandler.saveSettings())

			r.Get("/projects", handlers.adminAPIHandler.listProjects())
			r.Post("/projects", handlers.adminAPIHandler.createProject())
			r.Put("/projects/{projectID}", handlers.adminAPIHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.adminAPIHandler.deleteProject())

			r.Get("/case-studies", handlers.adminAPIHandler.listCaseStudies())
			r.Get("/case-studies/available-projects", handlers.adminAPIHandler.availableProjects())
			r.Post("/case-studies", handlers.adminAPIHandler.createCaseStudy())
			r.Put("/case-studies/{caseStudyID}", handlers.adminAPIHandler.updateCaseStudy())
			r.Delete("/case-studies/{caseStudyID}", handlers.adminAPIHandler.deleteCaseStudy())

			r.Get("/messages", handlers.adminAPIHandler.listMessages())
			r.Post("/messages/{messageID}/toggle-read", handlers.adminAPIHandler.toggleMessageRead())
			r.Delete("/messages/{messageID}", handlers.adminAPIHandler.deleteMessage())

			r.Post("/uploads/{bucket}", handlers.adminAPIHandler.upload())
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			NewResponder(handlers.contentHandler.logger).WriteError(w, errs.NewNotFoundError("no such endpoint"))
		})
	})
}
