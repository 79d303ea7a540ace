package database

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"recruit_backend/internal/config"
	"recruit_backend/internal/logger"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open подключается к реляционной БД (MySQL или Postgres, по cfg.Database.Driver),
// настраивает пул соединений и проверяет соединение.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Database.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}

	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}

	logger.Info("Database connected", "driver", cfg.Database.Driver, "host", cfg.Database.Host, "name", cfg.Database.Name)
	return db, nil
}

// Close закрывает пул соединений.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Dialector выбирает gorm-диалект по имени драйвера.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.Database.Driver) {
	case "mysql":
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

// DSN returns cfg.Database.DSN when set, otherwise builds one from the
// host/port/credential fields in the driver's own format.
func DSN(cfg *config.Config) (string, error) {
	db := cfg.Database
	if db.DSN != "" {
		return db.DSN, nil
	}

	switch strings.ToLower(db.Driver) {
	case "mysql":
		mc := mysqldriver.NewConfig()
		mc.User = db.User
		mc.Passwd = db.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(db.Host, strconv.Itoa(db.Port))
		mc.DBName = db.Name
		mc.ParseTime = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		for k, v := range parseParams(db.Params) {
			mc.Params[k] = v
		}
		return mc.FormatDSN(), nil

	case "postgres":
		parts := []string{
			"host=" + db.Host,
			"port=" + strconv.Itoa(db.Port),
			"user=" + db.User,
			"dbname=" + db.Name,
		}
		if db.Password != "" {
			parts = append(parts, "password="+db.Password)
		}
		params := parseParams(db.Params)
		if _, ok := params["sslmode"]; !ok {
			params["sslmode"] = "disable"
		}
		for k, v := range params {
			parts = append(parts, k+"="+v)
		}
		return strings.Join(parts, " "), nil

	default:
		return "", fmt.Errorf("unsupported database driver: %s", db.Driver)
	}
}

// parseParams разбирает строку вида "a=1&b=2".
func parseParams(s string) map[string]string {
	out := map[string]string{}
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		out[k] = v
	}
	return out
}
