package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/api-sage/core-banking/internal/adapter/http/controller"
	"github.com/api-sage/core-banking/internal/adapter/http/middleware"
	"github.com/api-sage/core-banking/internal/adapter/http/router"
	"github.com/api-sage/core-banking/internal/adapter/ratesource"
	"github.com/api-sage/core-banking/internal/adapter/repository/postgres"
	"github.com/api-sage/core-banking/internal/config"
	"github.com/api-sage/core-banking/internal/scheduler"
	"github.com/api-sage/core-banking/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if err := postgres.RunMigrations(startupCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(startupCtx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	txManager := postgres.NewTxManager(db)
	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	agreementRepo := postgres.NewAgreementRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	rateRepo := postgres.NewRateRepository(db)

	rateService := services.NewRateService(rateRepo)
	transferService := services.NewTransferService(txManager, accountRepo, transactionRepo, clientRepo, rateService)
	accrualService := services.NewAccrualService(accountRepo, agreementRepo, transferService)
	recurringService := services.NewRecurringPaymentService(clientRepo, accountRepo, agreementRepo, transferService)
	rateSource := ratesource.NewClient(cfg.RateSourceURL, cfg.RateSourceKey, cfg.BaseCurrency)
	rateRefreshService := services.NewRateRefreshService(rateSource, rateRepo)
	clientService := services.NewClientService(clientRepo)
	accountService := services.NewAccountService(accountRepo, transactionRepo)

	jobs, err := scheduler.New(scheduler.Config{
		ScheduleTimes: cfg.ScheduleTimes,
		WorkerCount:   cfg.SchedulerWorkers,
		JobDelay:      cfg.SchedulerJobDelay,
		QueueSize:     cfg.SchedulerQueueSize,
		RunOnStartup:  cfg.SchedulerRunOnStart,
		Jobs: []scheduler.Job{
			scheduler.FuncJob{JobName: "rate-refresh", Run: rateRefreshService.RefreshRates},
			scheduler.FuncJob{JobName: "deposit-accrual", Run: accrualService.RunDepositAccrual},
			scheduler.FuncJob{JobName: "recurring-payments", Run: recurringService.RunRecurringPayments},
		},
	})
	if err != nil {
		log.Fatalf("build scheduler: %v", err)
	}

	authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
	mux := router.New(
		controller.NewTransferController(transferService, accountService, clientService),
		controller.NewAccountController(accountService),
		controller.NewRateController(rateService, rateRefreshService),
		controller.NewClientController(clientService),
		controller.NewJobsController(accrualService, recurringService),
		authMiddleware,
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		jobs.Start()
		<-groupCtx.Done()
		jobs.Stop()
		return nil
	})

	group.Go(func() error {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
