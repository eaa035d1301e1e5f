package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public read surface under /api/cms and the
// password-gated admin CRUD surface under /api/admin. The auth middleware
// runs before any admin handler so a rejected request never reaches
// persistence.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public read endpoints
	r.Route("/api/cms", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/experiences", handlers.experienceHandler.listExperiences())
		r.Get("/blogs", handlers.blogHandler.listBlogs())
		r.Get("/blogs/{slug}", handlers.blogHandler.getBlogBySlug())
		r.Get("/skills", handlers.skillHandler.listSkills())
		r.Get("/tech-stacks", handlers.techStackHandler.listTechStacks())
		r.Get("/contact-methods", handlers.contactHandler.listContactMethods())
		r.Get("/personal", handlers.settingsHandler.getPersonalInfo())

		// Mutation on the cms prefix still requires the admin secret
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Put("/personal", handlers.settingsHandler.upsertPersonalInfo())
		})
	})

	// Admin endpoints
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Patch("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/experiences", handlers.experienceHandler.listExperiences())
		r.Post("/experiences", handlers.experienceHandler.createExperience())
		r.Get("/experiences/{experienceID}", handlers.experienceHandler.getExperience())
		r.Put("/experiences/{experienceID}", handlers.experienceHandler.updateExperience())
		r.Patch("/experiences/{experienceID}", handlers.experienceHandler.updateExperience())
		r.Delete("/experiences/{experienceID}", handlers.experienceHandler.deleteExperience())

		r.Get("/blogs", handlers.blogHandler.listBlogs())
		r.Post("/blogs", handlers.blogHandler.createBlog())
		r.Get("/blogs/{blogID}", handlers.blogHandler.getBlog())
		r.Put("/blogs/{blogID}", handlers.blogHandler.updateBlog())
		r.Patch("/blogs/{blogID}", handlers.blogHandler.updateBlog())
		r.Delete("/blogs/{blogID}", handlers.blogHandler.deleteBlog())

		r.Get("/skills", handlers.skillHandler.listSkills())
		r.Post("/skills", handlers.skillHandler.createSkill())
		r.Get("/skills/{skillID}", handlers.skillHandler.getSkill())
		r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
		r.Patch("/skills/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

		r.Get("/tech-stacks", handlers.techStackHandler.listTechStacks())
		r.Post("/tech-stacks", handlers.techStackHandler.createTechStack())
		r.Get("/tech-stacks/{techStackID}", handlers.techStackHandler.getTechStack())
		r.Put("/tech-stacks/{techStackID}", handlers.techStackHandler.updateTechStack())
		r.Patch("/tech-stacks/{techStackID}", handlers.techStackHandler.updateTechStack())
		r.Delete("/tech-stacks/{techStackID}", handlers.techStackHandler.deleteTechStack())

		r.Get("/contact-methods", handlers.contactHandler.listContactMethods())
		r.Post("/contact-methods", handlers.contactHandler.createContactMethod())
		r.Get("/contact-methods/{contactMethodID}", handlers.contactHandler.getContactMethod())
		r.Put("/contact-methods/{contactMethodID}", handlers.contactHandler.updateContactMethod())
		r.Patch("/contact-methods/{contactMethodID}", handlers.contactHandler.updateContactMethod())
		r.Delete("/contact-methods/{contactMethodID}", handlers.contactHandler.deleteContactMethod())

		r.Get("/settings", handlers.settingsHandler.listSettings())
		r.Put("/settings", handlers.settingsHandler.upsertSettings())
		r.Delete("/settings/{key}", handlers.settingsHandler.deleteSetting())

		r.Get("/personal", handlers.settingsHandler.getPersonalInfo())
		r.Put("/personal", handlers.settingsHandler.upsertPersonalInfo())

		r.Post("/upload", handlers.uploadHandler.uploadImage())
		r.Delete("/upload/delete", handlers.uploadHandler.deleteImage())
	})
}
