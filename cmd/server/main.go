package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/adapter/gateway"
	workergrpc "github.com/timemult-platform/ops-server-go-dashboard/internal/adapter/grpc"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/adapter/handler"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/adapter/middleware"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/infra/config"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/infra/messaging"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/infra/persistence"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/usecase"
)

func main() {
	// --- Config ---
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}

	// --- Logger ---
	logger := config.NewLogger(
		cfg.App.Environment, cfg.App.Name, cfg.App.Version, cfg.App.Tier,
	)
	slog.SetDefault(logger)

	// --- Database ---
	db, err := persistence.NewDB(cfg.Database)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Kafka ---
	producer := messaging.NewKafkaProducer(cfg.Kafka)
	defer producer.Close()

	// --- Everhour ---
	everhour := gateway.NewEverhourClient(cfg.Everhour)

	// --- DI ---
	employeeRepo := persistence.NewEmployeeRepository(db)
	runConfigRepo := persistence.NewRunConfigRepository(db)
	logRepo := persistence.NewOperationLogRepository(db)
	backupRepo := persistence.NewBackupRepository(db)

	// Usecases
	listEmployeesUC := usecase.NewListEmployeesUseCase(employeeRepo)
	addEmployeeUC := usecase.NewAddEmployeeUseCase(employeeRepo, everhour)
	updateEmployeeUC := usecase.NewUpdateEmployeeUseCase(employeeRepo)
	deleteEmployeeUC := usecase.NewDeleteEmployeeUseCase(employeeRepo)
	getRunConfigUC := usecase.NewGetRunConfigUseCase(runConfigRepo)
	replaceRunConfigUC := usecase.NewReplaceRunConfigUseCase(runConfigRepo)
	listOperationsUC := usecase.NewListOperationsUseCase(logRepo)
	recordOperationUC := usecase.NewRecordOperationUseCase(logRepo, producer)
	triggerUpdateUC := usecase.NewTriggerUpdateUseCase(logRepo, employeeRepo)
	saveBackupUC := usecase.NewSaveBackupUseCase(backupRepo)
	listBackupsUC := usecase.NewListBackupsUseCase(backupRepo)
	getBackupUC := usecase.NewGetBackupUseCase(backupRepo)
	dashboardStatsUC := usecase.NewDashboardStatsUseCase(employeeRepo, runConfigRepo, logRepo)

	// --- REST Router ---
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// ヘルスチェックは認証の対象外
	r.GET("/api/health", handler.HealthzHandler())
	r.GET("/readyz", handler.ReadyzHandler(db, everhour))

	api := r.Group("/api", middleware.Auth(cfg.Auth.Secret))

	employeeHandler := handler.NewEmployeeHandler(
		listEmployeesUC, addEmployeeUC, updateEmployeeUC, deleteEmployeeUC,
	)
	employeeHandler.RegisterRoutes(api)

	configHandler := handler.NewConfigHandler(getRunConfigUC, replaceRunConfigUC)
	configHandler.RegisterRoutes(api)

	operationHandler := handler.NewOperationHandler(
		listOperationsUC, recordOperationUC, triggerUpdateUC,
	)
	operationHandler.RegisterRoutes(api)

	backupHandler := handler.NewBackupHandler(saveBackupUC, listBackupsUC, getBackupUC)
	backupHandler.RegisterRoutes(api)

	statsHandler := handler.NewStatsHandler(dashboardStatsUC)
	statsHandler.RegisterRoutes(api)

	// --- gRPC Server ---
	grpcServer := grpc.NewServer()
	workerSvc := workergrpc.NewWorkerGRPCService(recordOperationUC, saveBackupUC, getRunConfigUC)
	workergrpc.RegisterWorkerServiceServer(grpcServer, workerSvc)

	grpcPort := cfg.GRPC.Port
	if grpcPort == 0 {
		grpcPort = 50061
	}
	go func() {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
		if err != nil {
			slog.Error("failed to listen for gRPC", "error", err)
			os.Exit(1)
		}
		slog.Info("gRPC server starting", "port", grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server failed", "error", err)
			os.Exit(1)
		}
	}()

	// --- REST Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("REST server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("REST server failed", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down servers...")

	// gRPC graceful stop
	grpcServer.GracefulStop()
	slog.Info("gRPC server stopped")

	// REST graceful shutdown
	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("REST server forced to shutdown", "error", err)
	}
	slog.Info("servers exited")
}
