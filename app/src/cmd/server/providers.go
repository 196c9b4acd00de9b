package main

import (
	"context"
	"io"

	"carbon-backend/app/src/core"
	"carbon-backend/app/src/database"
	"carbon-backend/app/src/domain"
	"carbon-backend/app/src/infra"
)

func provideConfig() infra.Config {
	return infra.LoadConfig()
}

func provideServiceName() string {
	return "carbon-backend"
}

func provideLogger(out io.Writer, serviceName string) *infra.Logger {
	return infra.NewLogger(out, serviceName)
}

func provideStore(ctx context.Context, cfg infra.Config, logger *infra.Logger) (domain.ReadingStore, func(), error) {
	return database.Setup(ctx, cfg.DSN(), logger)
}

func provideDeviceMetadata(cfg infra.Config, logger *infra.Logger) (domain.DeviceMetadata, error) {
	metadata, err := infra.LoadDeviceMetadata(cfg.DeviceMapPath)
	if err != nil {
		return nil, err
	}
	logger.Printf(context.Background(), "device metadata loaded: %d entries", len(metadata))
	return metadata, nil
}

func provideLatestCache() domain.LatestCache {
	return core.NewLatestCache()
}

func provideIngestor(cache domain.LatestCache, store domain.ReadingStore, logger *infra.Logger) domain.IngestService {
	return core.NewIngestor(cache, store, logger)
}

func provideReadingsView(store domain.ReadingStore, metadata domain.DeviceMetadata) domain.ReadingsService {
	return core.NewReadingsView(store, core.NewProjector(metadata))
}
