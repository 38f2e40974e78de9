package router

import (
	"github.com/rentwise/rentwise/internal/application"
	"github.com/rentwise/rentwise/internal/container"
	"github.com/rentwise/rentwise/internal/domain/repository"
	"github.com/rentwise/rentwise/internal/infrastructure/postgres"
	"github.com/rentwise/rentwise/internal/infrastructure/restapi"
	handlers "github.com/rentwise/rentwise/internal/interface/http"
	"github.com/rentwise/rentwise/internal/router/modules"
)

// sources bundles the three entity-domain read/write surfaces plus the
// locally owned request store.
type sources struct {
	Users      repository.UserSource
	Properties repository.PropertySource
	Tenants    repository.TenantSource
	Requests   repository.TenantRequestStore
}

// buildSources picks the backing for each entity domain: HTTP clients when
// upstream service URLs are configured, the local Postgres repositories
// otherwise. The tenant-request store is always local.
func buildSources() sources {
	cfg := container.GetConfig()
	pool := container.GetPGPool()

	s := sources{Requests: postgres.NewTenantRequestRepository(pool)}
	if cfg.UpstreamMode() {
		s.Users = restapi.NewUserClient(restapi.NewClient(cfg.UserServiceURL, cfg.UpstreamTimeout))
		s.Properties = restapi.NewPropertyClient(restapi.NewClient(cfg.PropertyServiceURL, cfg.UpstreamTimeout))
		s.Tenants = restapi.NewTenantClient(restapi.NewClient(cfg.TenantServiceURL, cfg.UpstreamTimeout))
		return s
	}
	s.Users = postgres.NewUserRepository(pool)
	s.Properties = postgres.NewPropertyRepository(pool)
	s.Tenants = postgres.NewTenantRepository(pool)
	return s
}

// InitModules builds the services and handlers from container singletons and
// registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	src := buildSources()

	indexer := application.NewTenantIndexer(container.GetES(), cfg.ESTenantsIndex, logger)

	var events repository.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		events = pub
	}

	lifecycle := application.NewLifecycleService(src.Requests, src.Tenants, events, indexer, logger)
	dashboard := application.NewDashboardService(src.Users, src.Properties, src.Tenants, lifecycle, indexer, logger)
	users := application.NewUserService(src.Users, jwt, container.GetRedis(), logger)
	properties := application.NewPropertyService(src.Properties, logger)
	tenants := application.NewTenantService(src.Tenants, indexer, logger)

	authHandler := handlers.NewAuthHandler(users, logger, cfg.CookieDomain, cfg.CookieSecure)
	requestHandler := handlers.NewRequestHandler(lifecycle, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboard, logger)
	tenantHandler := handlers.NewTenantHandler(tenants, lifecycle, logger)
	propertyHandler := handlers.NewPropertyHandler(properties, logger)
	notificationHandler := handlers.NewNotificationHandler(container.GetBroadcaster(), logger)

	r.Add(
		modules.NewAuthModule(authHandler, jwt),
		modules.NewDashboardModule(dashboardHandler, requestHandler, jwt),
		modules.NewTenantModule(tenantHandler, dashboardHandler, jwt),
		modules.NewPropertyModule(propertyHandler, jwt),
		modules.NewNotificationModule(notificationHandler, jwt),
	)
}
