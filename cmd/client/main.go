package main

import (
	"fmt"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/client"
	"github.com/MKhiriev/go-achieve-portal/internal/config"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/service"
	"github.com/MKhiriev/go-achieve-portal/internal/session"
	"github.com/MKhiriev/go-achieve-portal/internal/store"
	"github.com/MKhiriev/go-achieve-portal/internal/tui"
	"github.com/MKhiriev/go-achieve-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("achieve-portal-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sessionCtx := session.NewContext()

	portalAdapter, err := adapter.NewHTTPPortalAdapter(cfg.Adapter, sessionCtx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create portal adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	var dialPush func(out chan<- models.Notification) (service.PushRunner, error)
	if cfg.Adapter.PushAddress != "" {
		pushAddress := cfg.Adapter.PushAddress
		dialPush = func(out chan<- models.Notification) (service.PushRunner, error) {
			pc, dialErr := adapter.NewPushClient(pushAddress, sessionCtx, out, log)
			if dialErr != nil {
				return nil, dialErr
			}
			return pc, nil
		}
	}

	services := service.NewClientServices(localStorage, portalAdapter, sessionCtx, dialPush, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
