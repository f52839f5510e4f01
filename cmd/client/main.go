// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-tags/internal/adapter"
	"github.com/MKhiriev/go-user-tags/internal/client"
	"github.com/MKhiriev/go-user-tags/internal/config"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/internal/tui"
	"github.com/MKhiriev/go-user-tags/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usersPath = "/users"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("go-user-tags-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	ui, err := tui.New(services, listURL(cfg.Adapter.HTTPAddress), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		fmt.Println("client error:", err)
		log.Fatal().Err(err).Msg("client run error")
	}
}

// listURL is the user list page of the server at address.
func listURL(address string) string {
	address = strings.TrimRight(strings.TrimSpace(address), "/")
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	return address + usersPath
}
