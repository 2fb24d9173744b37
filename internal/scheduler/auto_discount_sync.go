package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-discount-api/internal/config"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
	"github.com/vfg2006/shopify-discount-api/internal/usecases/discounting"
)

// AutoDiscountSyncConfig representa a configuração do agendador de descontos automáticos
type AutoDiscountSyncConfig struct {
	CronSchedule string
	Count        int
	SyncEnabled  bool
}

// AutoDiscountSyncService gerencia o agendamento e execução do ciclo diário de
// descontos automáticos
type AutoDiscountSyncService struct {
	scheduler           *gocron.Scheduler
	config              AutoDiscountSyncConfig
	appConfig           *config.Config
	discounter          discounting.AutoDiscounter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReports         []*domain.RunReport
}

// NewAutoDiscountSyncService cria uma nova instância do serviço de sincronização de descontos
func NewAutoDiscountSyncService(
	discounter discounting.AutoDiscounter,
	appConfig *config.Config,
) *AutoDiscountSyncService {
	syncConfig := AutoDiscountSyncConfig{
		CronSchedule: appConfig.AutoDiscount.CronSchedule,
		Count:        appConfig.AutoDiscount.Count,
		SyncEnabled:  appConfig.AutoDiscount.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"count":         syncConfig.Count,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de descontos automáticos carregada")

	return &AutoDiscountSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		discounter:  discounter,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AutoDiscountSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Ciclo de descontos automáticos desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do ciclo de descontos automáticos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAllShops(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ciclo de descontos automáticos: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do ciclo de descontos automáticos")
		s.scheduler.Stop()
	}()

	return nil
}

// runAllShops executa o ciclo para todas as lojas registradas, garantindo que
// só uma execução esteja em andamento por vez
func (s *AutoDiscountSyncService) runAllShops(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de descontos automáticos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando ciclo de descontos automáticos para todas as lojas")

	reports, err := s.discounter.RunForAllShops(ctx, s.config.Count)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar ciclo de descontos automáticos")
		return
	}

	s.syncMutex.Lock()
	s.lastReports = reports
	s.syncMutex.Unlock()
	s.lastSyncCompletedAt = time.Now()

	var applied, reverted int
	for _, report := range reports {
		applied += report.Applied
		reverted += report.Reverted
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"shops":    len(reports),
		"applied":  applied,
		"reverted": reverted,
	}).Info("Ciclo de descontos automáticos concluído para todas as lojas")
}

// TriggerManualSync inicia manualmente um ciclo de descontos para todas as lojas
func (s *AutoDiscountSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de descontos automáticos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ciclo manual de descontos automáticos")
	go s.runAllShops(ctx)
}

// GetStatus retorna o status atual do agendador, com o resumo por loja da
// última execução
func (s *AutoDiscountSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	reports := s.lastReports
	s.syncMutex.Unlock()

	shopSummaries := make([]map[string]any, 0, len(reports))
	for _, report := range reports {
		shopSummaries = append(shopSummaries, map[string]any{
			"shop":     report.Shop,
			"applied":  report.Applied,
			"reverted": report.Reverted,
			"errors":   len(report.Errors),
		})
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_count":             s.config.Count,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_shops":         shopSummaries,
	}
}
