package db

import (
	"fmt"

	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/logging"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

func Init() {
	var err error
	DB, err = Open(DSN())
	if err != nil {
		logging.L().WithError(err).Fatal("failed to connect to database")
	}
	logging.L().WithField("host", config.DbHost).Info("database connected")
}

// Open connects with unique-violation translation enabled so repositories
// can match gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	level := logger.Warn
	if config.IsProduction {
		level = logger.Error
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
