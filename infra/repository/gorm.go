package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConfig returns the gorm settings every connection to the store uses.
// TranslateError lets the postgres dialector turn SQLSTATE codes into gorm
// sentinels (23505 becomes gorm.ErrDuplicatedKey) so MapGormErrorToDomain
// can see them.
func GormConfig(logMode logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
}
