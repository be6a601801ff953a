package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/server"
	"github.com/MKhiriev/fitiplus/internal/stubapi"
	"github.com/MKhiriev/fitiplus/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("fitiplus-stubapi")
	cfg, err := config.GetStubAPIConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Address).Str("version", cfg.Version).Dur("latency", cfg.Latency).Msg("received configs")

	h := stubapi.NewHandler(*cfg, log)
	srv, err := server.NewServer(h.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
