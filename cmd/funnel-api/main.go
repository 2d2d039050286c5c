// @title         Funnel API
// @version       0.1.0
// @description   Multi tenant CRM with activity analytics

package main

import (
	"context"

	"funnel/internal/adapters/auth"
	"funnel/internal/adapters/events"
	"funnel/internal/platform/config"
	"funnel/internal/platform/logger"
	phttp "funnel/internal/platform/net/http"
	"funnel/internal/platform/store"

	"funnel/internal/modkit/httpkit"
	"funnel/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (FUNNEL_API_*)
	root := config.New()
	apiCfg := root.Prefix("FUNNEL_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")    // pgCfg lives under SERVICE_PGSQL_*
	kafkaCfg := root.Prefix("SERVICE_KAFKA_") // kafkaCfg lives under SERVICE_KAFKA_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "funnel-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// bearer auth from the shared signing secret
	verifier := auth.NewVerifier(auth.Config{
		Secret: apiCfg.MustString("JWT_SECRET"),
		Issuer: apiCfg.MayString("JWT_ISSUER", ""),
	})

	// change events, nop when no brokers are configured
	producer := events.NewProducer(kafkaCfg.MayCSV("BROKERS", nil), *l)
	defer func() {
		if err := producer.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close events producer")
		}
	}()

	// http server (reads FUNNEL_API_PORT / FUNNEL_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			Auth:          httpkit.NewPortFunc(verifier.ParseToken),
			Events:        producer,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
