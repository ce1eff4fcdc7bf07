package api

import (
	"errors"
	"net/http"

	"github.com/skybi/symbolist/internal/api/symbols"
	"github.com/skybi/symbolist/internal/browse"
	"github.com/skybi/symbolist/internal/config"
	"github.com/skybi/symbolist/internal/storage"
)

// Service represents the symbol API service
type Service struct {
	Config  *config.Config
	Storage storage.Driver
	Browse  *browse.Manager
	symbols *symbols.Service
}

// Startup starts up the symbol API
func (service *Service) Startup(errs chan<- error) {
	symbolService := &symbols.Service{
		Config:  service.Config,
		Storage: service.Storage,
		Browse:  service.Browse,
	}
	service.symbols = symbolService
	go func() {
		if err := symbolService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
}

// Shutdown shuts down the symbol API
func (service *Service) Shutdown() {
	if service.symbols != nil {
		service.symbols.Shutdown()
		service.symbols = nil
	}
}
