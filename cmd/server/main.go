package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	httpadapter "veryracing/internal/adapter/http"
	"veryracing/internal/adapter/ledger/simnet"
	metricsinmem "veryracing/internal/adapter/metrics/inmemory"
	notifinmem "veryracing/internal/adapter/notifier/inmemory"
	gormrepo "veryracing/internal/adapter/repo/gorm"
	"veryracing/internal/adapter/repo/memory"
	staticwallet "veryracing/internal/adapter/wallet/static"
	"veryracing/internal/app/garageview"
	"veryracing/internal/app/lifecycle"
	"veryracing/internal/app/ports"
	"veryracing/internal/config"
	"veryracing/internal/domain/garage"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	assets, chainStore := mustBuildStores(cfg, logger)

	chain := simnet.New(chainStore, catalog)
	chain.ConfirmDelay = cfg.SimConfirmDelay
	chain.Log = logger
	if cfg.SimBalance != "" {
		wei, err := garage.ParseVery(cfg.SimBalance)
		if err != nil {
			log.Fatalf("parse sim balance: %v", err)
		}
		chain.SetBalance(wei)
	}

	notifier := notifinmem.NewNotifier()
	kpi := metricsinmem.NewRecorder()

	controller := &lifecycle.Controller{
		Ledger:   chain,
		Watcher:  chain,
		Assets:   assets,
		Notifier: notifier,
		Metrics:  kpi,
		Catalog:  catalog,
		Sched:    lifecycle.NewTimerScheduler(),
		Delays: lifecycle.Delays{
			IndexLag:     cfg.IndexLag,
			SuccessReset: cfg.SuccessReset,
			FailureReset: cfg.FailureReset,
		},
		Log: logger,
	}

	h := httpadapter.Handler{
		GarageUC: garageview.UseCase{
			Assets:     assets,
			Controller: controller,
			Catalog:    catalog,
			Wallet:     staticwallet.Session{Addr: cfg.Wallet},
		},
		Controller:    controller,
		Notifications: notifier,
		KPI:           kpi,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	logger.Info("veryracing server listening", "addr", cfg.Addr, "wallet", cfg.Wallet)
	s.Spin()
}

func loadCatalog(path string) (garage.Catalog, error) {
	if path == "" {
		return garage.DefaultCatalog(), nil
	}
	return garage.LoadCatalog(path)
}

// mustBuildStores picks the wallet's asset store. With a DSN the indexer
// database backs it; otherwise an in-memory store is seeded with a demo
// garage so the simulated chain has something to breed.
func mustBuildStores(cfg config.Config, logger *slog.Logger) (ports.AssetStore, simnet.Store) {
	if cfg.DBDSN == "" {
		store := memory.NewVehicleStore()
		store.Seed(demoVehicles()...)
		return store, store
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	store := gormrepo.NewVehicleStore(db, cfg.Wallet)
	if err := store.Refetch(context.Background()); err != nil {
		log.Fatalf("load vehicles: %v", err)
	}
	return store, dbChainStore{store: store, log: logger}
}

func demoVehicles() []garage.Vehicle {
	return []garage.Vehicle{
		{ID: 1, Name: "Bike", Speed: 40, Handling: 45, Acceleration: 40},
		{ID: 2, Name: "Car", Speed: 70, Handling: 65, Acceleration: 70},
		{ID: 3, Name: "Truck", Speed: 60, Handling: 75, Acceleration: 55},
	}
}

// dbChainStore adapts the indexer-backed store to the simulated chain's
// lag-free view: writes land as rows, reads bypass the cached snapshot.
type dbChainStore struct {
	store *gormrepo.VehicleStore
	log   *slog.Logger
}

func (s dbChainStore) All() garage.OwnedSet {
	owned, err := s.store.Current(context.Background())
	if err != nil {
		s.log.Warn("chain ownership read failed", "err", err)
		return nil
	}
	return owned
}

func (s dbChainStore) Stage(v garage.Vehicle) {
	if err := s.store.Upsert(context.Background(), v); err != nil {
		s.log.Warn("chain stage write failed", "vehicle", uint64(v.ID), "err", err)
	}
}
