package main

import (
	"os"
	"time"

	"github.com/vms/backend/internal/infrastructure/config"
	"github.com/vms/backend/internal/infrastructure/logger"
	"github.com/vms/backend/internal/infrastructure/persistence"
	"github.com/vms/backend/internal/seed"
	"github.com/vms/backend/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting VMS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("storage", cfg.Storage.Path),
		zap.String("slot", cfg.Storage.Slot))

	slotStore, err := persistence.OpenStateSlotStore(&cfg.Storage, log)
	if err != nil {
		log.Error("Failed to open state storage", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		_ = slotStore.Close()
	}()

	state, loaded, err := slotStore.Load()
	if err != nil {
		log.Error("Failed to load saved state", zap.Error(err))
		os.Exit(1)
	}
	if !loaded {
		if cfg.Seed.Enabled {
			state = seed.Demo(time.Now())
			log.Info("No saved state found, seeded demo dataset",
				zap.Int("vendors", len(state.Vendors)),
				zap.Int("requisitions", len(state.Requisitions)))
		} else {
			log.Info("No saved state found, starting empty")
		}
	} else {
		log.Info("Loaded saved state",
			zap.Int("vendors", len(state.Vendors)),
			zap.Int("requisitions", len(state.Requisitions)),
			zap.Int("orders", len(state.Orders)))
	}

	st := store.New(state, slotStore, log)
	st.MigrateDefaultDepartments()

	snap := st.Snapshot()
	log.Info("State ready",
		zap.Int("users", len(snap.Users)),
		zap.Int("vendors", len(snap.Vendors)),
		zap.Int("requisitions", len(snap.Requisitions)),
		zap.Int("rfqs", len(snap.RFQs)),
		zap.Int("orders", len(snap.Orders)),
		zap.Int("invoices", len(snap.Invoices)),
		zap.Int("assets", len(snap.Assets)),
		zap.Int("departments", len(snap.Settings.Departments)),
		zap.Int("pendingApprovals", snap.PendingApprovalCount()),
		zap.Int("overdueInvoices", snap.OverdueInvoiceCount(time.Now())))
}
