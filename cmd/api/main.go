package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/pipedrive"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/pipedrive/pipedriveclient"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dealing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logCloser := log.Setup(log.Options{
		Level: cfg.App.LogLevel,
		File:  cfg.App.LogFile,
	})
	defer logCloser.Close()
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reportCache, err := cache.New[*domain.MetricsReport](cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cache de métricas")
	}
	logrus.WithFields(logrus.Fields{
		"driver": cfg.Cache.Driver,
		"ttl":    cfg.Cache.TTL.String(),
	}).Info("Cache de métricas inicializado")

	pipedriveClient := pipedriveclient.NewClient(cfg)
	pipedriveIntegrator := pipedrive.New(cfg, pipedriveClient)

	metricsService := reporting.NewService(cfg, pipedriveIntegrator, reportCache)
	dealer := dealing.NewService(pipedriveIntegrator)
	authenticator := authenticating.NewService(cfg)

	if authenticator.Enabled() {
		logrus.Info("Autenticação habilitada para as rotas do dashboard")
	}

	metricsWarmupService := scheduler.NewMetricsWarmupService(metricsService, cfg)
	if err := metricsWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de pré-aquecimento de métricas")
	} else {
		logrus.Info("Agendador de pré-aquecimento de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		metricsService,
		dealer,
		authenticator,
		metricsWarmupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger aplica o formato padrão antes de a configuração ser lida
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
