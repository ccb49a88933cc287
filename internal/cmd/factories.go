package cmd

import (
	"sync"

	"github.com/hypr-showkey/showkey/internal/adapters/filesystem"
	"github.com/hypr-showkey/showkey/internal/adapters/hyprland"
	adapterstorage "github.com/hypr-showkey/showkey/internal/adapters/storage"
	"github.com/hypr-showkey/showkey/internal/config"
	"github.com/hypr-showkey/showkey/internal/ports"
	"github.com/hypr-showkey/showkey/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	CatalogService *services.CatalogService

	// The history database is only opened by commands that need it
	dbPath       string
	usageOnce    sync.Once
	usageErr     error
	usageRepo    ports.UsageRepository
	usageService *services.UsageService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() *Container {
	return NewContainerWithDB(config.GetHistoryDBPath())
}

// NewContainerWithDB creates a Container whose usage history lives at dbPath
func NewContainerWithDB(dbPath string) *Container {
	return &Container{
		CatalogService: services.NewCatalogService(filesystem.NewReader(), hyprland.NewBindingParser),
		dbPath:         dbPath,
	}
}

// UsageService opens the usage history on first use
func (c *Container) UsageService() (*services.UsageService, error) {
	c.usageOnce.Do(func() {
		repo, err := adapterstorage.NewSQLiteRepository(c.dbPath)
		if err != nil {
			c.usageErr = err
			return
		}
		c.usageRepo = repo
		c.usageService = services.NewUsageService(repo)
	})
	return c.usageService, c.usageErr
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.usageRepo != nil {
		return c.usageRepo.Close()
	}
	return nil
}
