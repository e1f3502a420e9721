package storage

import (
	"fmt"
	"sync"

	"novusfiles-backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		env := config.GetEnv()

		var dialector gorm.Dialector
		if env.DatabaseType == "sqlite" {
			dialector = sqlite.Open(env.SqlitePath)
		} else {
			dsn := fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				env.PostgresHost,
				env.PostgresPort,
				env.PostgresUser,
				env.PostgresPassword,
				env.PostgresDb,
				env.PostgresSslMode,
			)
			dialector = postgres.Open(dsn)
		}

		connection, err := gorm.Open(dialector, &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err != nil {
			panic("failed to connect to database: " + err.Error())
		}

		if env.DatabaseType == "sqlite" {
			// sqlite allows one writer at a time, a single connection
			// serializes concurrent requests instead of returning SQLITE_BUSY
			sqlDb, err := connection.DB()
			if err != nil {
				panic("failed to get underlying sql.DB: " + err.Error())
			}
			sqlDb.SetMaxOpenConns(1)
		}

		db = connection
	})

	return db
}

func Migrate(models ...interface{}) error {
	return GetDb().AutoMigrate(models...)
}
