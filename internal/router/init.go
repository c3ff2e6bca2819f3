package router

import (
	"user-access-management/go-backend/internal/application"
	"user-access-management/go-backend/internal/container"
	"user-access-management/go-backend/internal/infrastructure/elastic"
	"user-access-management/go-backend/internal/infrastructure/postgres"
	handlers "user-access-management/go-backend/internal/interface/http"
	"user-access-management/go-backend/internal/router/modules"
	"user-access-management/go-backend/pkg/helpers"
)

// InitModules wires the application services from container singletons and
// registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	sessions := postgres.NewSessionFactory(container.GetPGPool())

	var indexer application.UserIndexer
	if es := container.GetES(); es != nil {
		indexer = elastic.NewIndexer(es, container.GetConfig().ESUsersIndex)
	}
	var publisher application.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		publisher = pub
	}

	hasher := helpers.NewBcryptHasher()
	authSvc := application.NewAuthService(sessions, hasher, container.GetJWT(), container.GetLogger(), publisher, indexer)
	userSvc := application.NewUserService(sessions, container.GetLogger(), publisher, indexer)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc), container.GetJWT()))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc), container.GetJWT()))
}
