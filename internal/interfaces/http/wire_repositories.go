package http

import (
	"gorm.io/gorm"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/infrastructure/repository"
	"gymdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	clientRepo  client.Repository
	paymentRepo client.PaymentRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		clientRepo:  repository.NewClientRepository(db, log),
		paymentRepo: repository.NewPaymentRepository(db, log),
	}
}
