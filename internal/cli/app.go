package cli

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/poputchik/internal/pkg/config"
	"github.com/piresc/poputchik/internal/pkg/health"
	httpclient "github.com/piresc/poputchik/internal/pkg/http"
	"github.com/piresc/poputchik/internal/pkg/logger"
	"github.com/piresc/poputchik/internal/pkg/middleware"
	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/piresc/poputchik/services/trips/gateway"
	"github.com/piresc/poputchik/services/trips/handler"
	"github.com/piresc/poputchik/services/trips/usecase"
)

// App holds the wired components shared by every command
type App struct {
	Config *models.Config
	Logger *logger.ZapLogger
	Client *httpclient.Client
	TripUC *usecase.TripUC
	loc    *time.Location
}

// NewApp builds the client, gateway, extractor and use case from cfg
func NewApp(cfg *models.Config, zapLogger *logger.ZapLogger) (*App, error) {
	loc, err := config.Location(cfg.Display)
	if err != nil {
		return nil, err
	}

	client := httpclient.NewClient(httpclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})
	tripGW := gateway.NewHTTPGateway(client)
	extractor := gateway.NewStubExtractor(cfg.Search.Cities, cfg.Extractor.Delay)
	tripUC := usecase.NewTripUC(cfg, tripGW, extractor, loc)

	return &App{
		Config: cfg,
		Logger: zapLogger,
		Client: client,
		TripUC: tripUC,
		loc:    loc,
	}, nil
}

// Echo builds the HTTP server exposing the search session
func (a *App) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(a.Logger))
	e.Use(middleware.PanicRecoveryMiddleware(a.Logger))

	healthService := health.NewService(a.Config.App.Name)
	healthService.AddChecker("trips_api", health.CheckerFunc(a.Client.Ping))
	health.RegisterHealthEndpoints(e, a.Config.App.Name, a.Config.App.Version, healthService)

	handler.NewHandler(a.TripUC).RegisterRoutes(e)

	return e
}

// String summarises the wiring for the startup log
func (a *App) String() string {
	return fmt.Sprintf("%s %s (%s) api=%s tz=%s",
		a.Config.App.Name, a.Config.App.Version, a.Config.App.Environment, a.Client.BaseURL(), a.loc)
}
