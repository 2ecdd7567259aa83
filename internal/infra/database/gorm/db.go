package gorm

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todolist-api/internal/domain/entity"
	"todolist-api/pkg/log"
	"todolist-api/pkg/resource"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config describes the database connection
type Config struct {
	Driver      string
	Host        string
	Port        string
	Username    string
	Password    string
	Database    string
	Schema      string
	SQLitePath  string
	AutoMigrate bool
}

// ConfigFromProperties reads the app.db.* properties
func ConfigFromProperties() Config {
	return Config{
		Driver:      resource.GetStringOrDefault("app.db.driver", DriverPostgres),
		Host:        resource.GetString("app.db.host"),
		Port:        resource.GetString("app.db.port"),
		Username:    resource.GetString("app.db.username"),
		Password:    resource.GetString("app.db.password"),
		Database:    resource.GetString("app.db.database"),
		Schema:      resource.GetString("app.db.schema"),
		SQLitePath:  resource.GetString("app.db.sqlite-path"),
		AutoMigrate: resource.GetBool("app.db.auto-migrate"),
	}
}

// Open connects to the configured database and migrates the schema when enabled
func Open(config Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log.Writer{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	if config.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates the users, tasks, checklists and checklist_tasks tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.User{}, &entity.Task{}, &entity.Checklist{}); err != nil {
		return fmt.Errorf("fail to migrate database: %w", err)
	}
	return nil
}

func dialectorFor(config Config) (gorm.Dialector, error) {
	switch config.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
			config.Host, config.Username, config.Password, config.Database, config.Port, config.Schema)
		return postgres.Open(dsn), nil
	case DriverSQLite:
		if config.SQLitePath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(config.SQLitePath), 0o755); err != nil {
				return nil, fmt.Errorf("fail to create sqlite directory: %w", err)
			}
		}
		return sqlite.Open(config.SQLitePath + "?_foreign_keys=on"), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", config.Driver)
	}
}
