package migration

import (
	"gymdesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models GORM AutoMigrate manages, in dependency
// order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ClientModel{},
		&models.PaymentModel{},
	}
}
