package atmcore

import (
	"context"

	"gorm.io/gorm"
)

// OpenTransaction runs handle inside one database transaction. Every
// balance mutation and its movement rows commit or roll back together.
func OpenTransaction(ctx context.Context, db *gorm.DB, handle func(tx *gorm.DB) error) error {
	return db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			return handle(tx)
		})
}
