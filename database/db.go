// Package database manages the gorm connection for attendix, schema
// migration and the initial bootstrap records.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"attendix/config"
	"attendix/database/model"
	"attendix/util/crypto"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "adminpass"
	defaultClassName     = "Default Class"
)

func initModels() error {
	models := []any{
		&model.Admin{},
		&model.Teacher{},
		&model.Student{},
		&model.Class{},
		&model.Attendance{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdmin seeds the bootstrap admin account when the admins table is
// empty. The password is stored hashed, never in the clear.
func initAdmin() error {
	empty, err := isTableEmpty("admins")
	if err != nil {
		log.Printf("Error checking if admins table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	hash, err := crypto.HashPasswordAsBcrypt(defaultAdminPassword)
	if err != nil {
		return err
	}
	admin := &model.Admin{
		Username: defaultAdminUsername,
		Password: hash,
	}
	return db.Create(admin).Error
}

func initClass() error {
	empty, err := isTableEmpty("classes")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	return db.Create(&model.Class{Name: defaultClassName}).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

// InitDB opens the configured backend, migrates the schema and seeds the
// bootstrap records. The sqlite path is created on demand; postgres uses
// the configured DSN.
func InitDB(driver config.DBDriver, dsn string) error {
	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	var err error
	switch driver {
	case config.SQLite:
		dir := path.Dir(dsn)
		if err = os.MkdirAll(dir, fs.ModePerm); err != nil {
			return err
		}
		db, err = gorm.Open(sqlite.Open(dsn+"?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"), c)
	case config.Postgres:
		db, err = gorm.Open(postgres.Open(dsn), c)
	default:
		return &UnknownDriverError{Driver: driver}
	}
	if err != nil {
		return err
	}

	if driver == config.SQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		for _, pragma := range []string{
			"PRAGMA cache_size = -64000;",
			"PRAGMA temp_store = MEMORY;",
			"PRAGMA foreign_keys = ON;",
		} {
			if _, err := sqlDB.Exec(pragma); err != nil {
				return err
			}
		}
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initAdmin(); err != nil {
		return err
	}
	return initClass()
}

// UnknownDriverError reports an unrecognized ATTENDIX_DB_DRIVER value.
type UnknownDriverError struct {
	Driver config.DBDriver
}

func (e *UnknownDriverError) Error() string {
	return "unknown database driver: " + string(e.Driver)
}

func CloseDB() error {
	if db == nil {
		return nil
	}

	if config.GetDBDriver() == config.SQLite {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// Checkpoint flushes the sqlite WAL into the main database file.
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
