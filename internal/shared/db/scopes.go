package db

import "gorm.io/gorm"

// NotVoided filters out statements flagged as voided.
func NotVoided() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("statements.voided = ?", false)
	}
}

// OwnedBy restricts statements to a single user of a tenant.
func OwnedBy(tenantID, userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("statements.tenant_id = ? AND statements.user_id = ?", tenantID, userID)
	}
}
