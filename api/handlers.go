package api

import (
	"github.com/sinascience/portfolio-backend/database"
	"github.com/sinascience/portfolio-backend/services"
)

type routeHandlers struct {
	projectHandler    projectHandler
	experienceHandler experienceHandler
	blogHandler       blogHandler
	skillHandler      skillHandler
	techStackHandler  techStackHandler
	contactHandler    contactHandler
	settingsHandler   settingsHandler
	uploadHandler     uploadHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, storage services.ObjectStorage) *routeHandlers {
	return &routeHandlers{
		projectHandler:    newProjectHandler(database.ProjectRepo()),
		experienceHandler: newExperienceHandler(database.ExperienceRepo()),
		blogHandler:       newBlogHandler(database.BlogRepo()),
		skillHandler:      newSkillHandler(database.SkillRepo()),
		techStackHandler:  newTechStackHandler(database.TechStackRepo()),
		contactHandler:    newContactHandler(database.ContactMethodRepo()),
		settingsHandler:   newSettingsHandler(database.SettingRepo()),
		uploadHandler:     newUploadHandler(storage),
	}
}
