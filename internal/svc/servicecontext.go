package svc

import (
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"runbox-api/internal/cache"
	"runbox-api/internal/config"
	"runbox-api/internal/model"
	"runbox-api/internal/repo"
	"runbox-api/pkg/i18nmsg"
	outcomepkg "runbox-api/pkg/outcome"
	parampkg "runbox-api/pkg/param"
	sandboxpkg "runbox-api/pkg/sandbox"
	_ "runbox-api/pkg/sandbox/jobe"
	"runbox-api/pkg/sandbox/sim"
)

type ServiceContext struct {
	Config config.Config

	SandboxConfig    *sandboxpkg.Config
	SandboxProviders map[string]sandboxpkg.Provider
	DefaultProvider  sandboxpkg.Provider

	FilterConfig        *parampkg.SiteConfig
	HighlightDefaults   parampkg.Defaults
	InteractiveDefaults parampkg.Defaults

	Translator i18nmsg.Translator
	Presenter  *outcomepkg.Presenter

	Runs *repo.RunsRepo

	// Optional backing stores, injected only when configured.
	Redis            *redis.Redis
	DBConn           sqlx.SqlConn
	SubmissionsModel model.SubmissionsModel
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{Config: c}

	// Sandbox providers. Without a sandbox config file the service still
	// comes up in test env with the in-process simulator.
	if c.Sandbox.Value != nil {
		providers, err := c.Sandbox.Value.BuildProviders()
		if err != nil {
			log.Fatalf("failed to build sandbox providers: %v", err)
		}
		svc.SandboxConfig = c.Sandbox.Value
		svc.SandboxProviders = providers
		if c.Sandbox.Value.Default != "" {
			svc.DefaultProvider = providers[c.Sandbox.Value.Default]
		}
	} else if c.IsTestEnv() {
		fallback := sim.New()
		svc.SandboxProviders = map[string]sandboxpkg.Provider{fallback.Name(): fallback}
		svc.DefaultProvider = fallback
	} else {
		log.Fatalf("sandbox config is required outside test env")
	}

	// Filter defaults: built-in tables with optional site overrides.
	svc.FilterConfig = c.Filter.Value
	var err error
	if svc.HighlightDefaults, err = svc.FilterConfig.DefaultsFor(parampkg.FeatureHighlight); err != nil {
		log.Fatalf("failed to build highlight defaults: %v", err)
	}
	if svc.InteractiveDefaults, err = svc.FilterConfig.DefaultsFor(parampkg.FeatureInteractive); err != nil {
		log.Fatalf("failed to build interactive defaults: %v", err)
	}

	svc.Translator = c.Messages.Value.Catalog()
	maxLen := parampkg.DefaultMaxOutputLength
	if svc.FilterConfig != nil {
		maxLen = svc.FilterConfig.MaxOutputLength
	}
	svc.Presenter = outcomepkg.NewPresenter(svc.Translator, maxLen)

	// Only inject DB model when DSN provided; runs work without the audit log.
	if c.Postgres.DSN != "" {
		conn := sqlx.NewSqlConn("pgx", c.Postgres.DSN)
		svc.DBConn = conn
		svc.SubmissionsModel = model.NewSubmissionsModel(conn)
	}

	if c.Redis.Host != "" {
		rds, err := redis.NewRedis(c.Redis)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		svc.Redis = rds
	}

	svc.Runs = repo.NewRunsRepo(
		svc.Redis,
		svc.SubmissionsModel,
		cache.NewTTLSet(c.TTL),
		time.Duration(c.InflightTTL)*time.Second,
	)
	return svc
}

// Provider resolves a provider by name, falling back to the default.
func (s *ServiceContext) Provider(name string) (sandboxpkg.Provider, bool) {
	if name == "" {
		return s.DefaultProvider, s.DefaultProvider != nil
	}
	p, ok := s.SandboxProviders[name]
	return p, ok
}

// DefaultsFor returns the resolved default table for a feature.
func (s *ServiceContext) DefaultsFor(feature string) parampkg.Defaults {
	if feature == parampkg.FeatureInteractive {
		return s.InteractiveDefaults
	}
	return s.HighlightDefaults
}
