package main

import (
	"context"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/config"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/infra"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/repository"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// startWorkers wires the receipt pipeline: PDF generation, then email when
// SMTP is configured. Without SMTP, receipts are still written to disk.
func startWorkers(ctx context.Context, cfg *config.Config, rdb *redis.Client, db *gorm.DB, mailer *infra.Mailer) {
	dispatcher := worker.NewDispatcher(rdb)

	var emails worker.EmailQueue
	handlers := map[string]worker.Handler{}
	if mailer.Configured() {
		emails = dispatcher
		handlers[worker.QueueEmail] = worker.NewEmailWorker(mailer).Process
	} else {
		log.Warn().Msg("SMTP_HOST not set, receipts will not be emailed")
	}

	recibos := worker.NewReciboWorker(
		repository.NewPagoRepository(db),
		repository.NewVentaRepository(db),
		emails,
		cfg.PDFStoragePath,
		cfg.NegocioNombre,
	)
	handlers[worker.QueueRecibo] = recibos.Process

	worker.NewPool(rdb, handlers).Start(ctx, cfg.WorkerPoolSize)
	worker.StartRetryCron(ctx, worker.RetryCronConfig{RDB: rdb, Breaker: mailer.Breaker()})
}
