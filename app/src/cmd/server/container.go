package main

import (
	"carbon-backend/app/src/domain"
	"carbon-backend/app/src/infra"
)

type application struct {
	Config   infra.Config
	Logger   *infra.Logger
	Cache    domain.LatestCache
	Ingest   domain.IngestService
	Readings domain.ReadingsService
}

func newApplication(cfg infra.Config, logger *infra.Logger, cache domain.LatestCache, ingest domain.IngestService, readings domain.ReadingsService) *application {
	return &application{
		Config:   cfg,
		Logger:   logger,
		Cache:    cache,
		Ingest:   ingest,
		Readings: readings,
	}
}
