package dao

import "gorm.io/gorm"

// InitTables creates the schema through gorm. Postgres deployments use the
// SQL migrations in internal/db instead; this path serves sqlite.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Participant{},
		&PaymentHistory{},
		&ScanSession{},
		&Admin{},
	)
}
