package handlers

import (
	"gorm.io/gorm"

	"github.com/megane-nerdo/skillhubnext/internal/repositories"
	"github.com/megane-nerdo/skillhubnext/internal/services"
	"github.com/megane-nerdo/skillhubnext/internal/storage"
	"github.com/megane-nerdo/skillhubnext/internal/validator"
)

// AppHandlers bundles every HTTP handler with its wired dependencies.
type AppHandlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Subscriptions *SubscriptionHandler
	Jobs          *JobHandler
	Applications  *ApplicationHandler
	Catalog       *CatalogHandler
	Uploads       *UploadHandler
}

// NewAppHandlers builds the repository, service, and handler graph from the
// database handle and storage backend.
func NewAppHandlers(db *gorm.DB, store storage.Storage) *AppHandlers {
	userRepo := repositories.NewUserRepository(db)
	subRepo := repositories.NewSubscriptionRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)

	authSvc := services.NewAuthService(userRepo)
	userSvc := services.NewUserService(userRepo)
	subSvc := services.NewSubscriptionService(subRepo, userRepo)
	jobSvc := services.NewJobService(jobRepo, userRepo, catalogRepo, subSvc)
	appSvc := services.NewApplicationService(appRepo, jobRepo, userRepo)
	catalogSvc := services.NewCatalogService(catalogRepo)

	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:          NewAuthHandler(base, authSvc),
		Users:         NewUserHandler(base, userSvc),
		Subscriptions: NewSubscriptionHandler(base, subSvc),
		Jobs:          NewJobHandler(base, jobSvc),
		Applications:  NewApplicationHandler(base, appSvc),
		Catalog:       NewCatalogHandler(base, catalogSvc),
		Uploads:       NewUploadHandler(base, store),
	}
}
