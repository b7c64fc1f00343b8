package db_connection

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/models"
)

var modelsToMigrate = []any{
	&models.ElectionDB{},
	&models.CandidateDB{},
	&models.VoterDB{},
	&models.VoteRecordDB{},
	&models.AuditEntryDB{},
}

var GlobalDB *gorm.DB = nil

func InitializeGlobalDB(dbFile string) error {
	if GlobalDB != nil {
		return nil
	}

	var err error
	GlobalDB, err = GetDatabaseConnection(dbFile)

	return err
}

func GetDatabaseConnection(dbFile string) (*gorm.DB, error) {
	if dir := filepath.Dir(dbFile); dir != "." && dbFile != ":memory:" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
			log.Printf("|Database| Created directory '%s'", dir)
		}
	}

	//TranslateError surfaces unique constraint violations as gorm.ErrDuplicatedKey,
	//which the repositories rely on for conditional writes
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	//sqlite allows a single writer, a pool of one avoids lock errors under load
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(modelsToMigrate...)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func ResetDatabase(db *gorm.DB) error {
	err := db.Migrator().DropTable(modelsToMigrate...)

	if err != nil {
		return err
	}

	return db.AutoMigrate(modelsToMigrate...)
}

func CloseDatabaseConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
