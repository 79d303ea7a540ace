package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"recruit_backend/internal/validator"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port" validate:"min=1,max=65535"`
		Env       string `yaml:"env"`
		StaticDir string `yaml:"static_dir"`
		Swagger   bool   `yaml:"swagger"`
	} `yaml:"server"`

	Database struct {
		Driver          string        `yaml:"driver" validate:"required,is-sql-driver"` // mysql, postgres
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		User            string        `yaml:"user"`
		Password        string        `yaml:"password"`
		Name            string        `yaml:"name"`
		Params          string        `yaml:"params"` // extra DSN parameters
		DSN             string        `yaml:"dsn"`    // overrides host/port/user/...
		MaxOpenConns    int           `yaml:"max_open_conns"`
		MaxIdleConns    int           `yaml:"max_idle_conns"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
		AutoMigrate     bool          `yaml:"auto_migrate"`
	} `yaml:"database"`

	DocStore struct {
		Type       string `yaml:"type" validate:"required,is-docstore-type"` // mongo, s3, local
		URI        string `yaml:"uri" validate:"required_if=Type mongo"`
		Database   string `yaml:"database"`
		Collection string `yaml:"collection"`
		Bucket     string `yaml:"bucket" validate:"required_if=Type s3"`
		Region     string `yaml:"region"`
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"access_key"`
		SecretKey  string `yaml:"secret_key"`
		Prefix     string `yaml:"prefix"` // s3 key prefix
		BasePath   string `yaml:"base_path"`
	} `yaml:"docstore"`

	Upload struct {
		MaxMemory int64 `yaml:"max_memory"` // bytes kept in memory while parsing multipart forms
	} `yaml:"upload"`

	Submission struct {
		CleanupOrphans bool `yaml:"cleanup_orphans"`
	} `yaml:"submission"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		AdminEmail   string `yaml:"admin_email"`
		QueueSize    int    `yaml:"queue_size"`
	} `yaml:"email"`
}

var AppConfig *Config

// Defaults returns a Config populated with the values used when neither the
// YAML file nor the environment set a key.
func Defaults() *Config {
	var cfg Config

	cfg.Server.Host = ""
	cfg.Server.Port = 3000
	cfg.Server.Env = "development"
	cfg.Server.StaticDir = "./public"

	cfg.Database.Driver = "mysql"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 3306
	cfg.Database.User = "root"
	cfg.Database.Name = "black_company"
	cfg.Database.MaxOpenConns = 10
	cfg.Database.MaxIdleConns = 5
	cfg.Database.ConnMaxLifetime = 30 * time.Minute

	cfg.DocStore.Type = "mongo"
	cfg.DocStore.Database = "recruit"
	cfg.DocStore.Collection = "resumeimages"
	cfg.DocStore.Region = "us-east-1"
	cfg.DocStore.Prefix = "resume-images/"
	cfg.DocStore.BasePath = "./data/resume-images"

	cfg.Upload.MaxMemory = 10 << 20
	cfg.Submission.CleanupOrphans = true

	cfg.Email.SMTPPort = 587
	cfg.Email.QueueSize = 64

	return &cfg
}

// Load читает .env, затем YAML (CONFIG_PATH или config/config.yaml, если есть),
// затем переменные окружения, и валидирует результат.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	configPath := os.Getenv("CONFIG_PATH")
	explicit := configPath != ""
	if !explicit {
		configPath = "config/config.yaml"
	}

	if err := loadYAML(cfg, configPath); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setString(&cfg.Server.Env, "SERVER_ENV")
	setString(&cfg.Server.StaticDir, "STATIC_DIR")
	if err := setBool(&cfg.Server.Swagger, "SWAGGER_ENABLED"); err != nil {
		return err
	}
	if err := setInt(&cfg.Server.Port, "PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.Server.Port, "SERVER_PORT"); err != nil {
		return err
	}

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.Host, "DB_HOST")
	if err := setInt(&cfg.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.DSN, "DATABASE_URL")
	if err := setBool(&cfg.Database.AutoMigrate, "DB_AUTO_MIGRATE"); err != nil {
		return err
	}

	setString(&cfg.DocStore.Type, "DOCSTORE_TYPE")
	setString(&cfg.DocStore.URI, "MONGO_URI")
	setString(&cfg.DocStore.Database, "MONGO_DATABASE")
	setString(&cfg.DocStore.Bucket, "S3_BUCKET")
	setString(&cfg.DocStore.Region, "S3_REGION")
	setString(&cfg.DocStore.Endpoint, "S3_ENDPOINT")
	setString(&cfg.DocStore.AccessKey, "S3_ACCESS_KEY")
	setString(&cfg.DocStore.SecretKey, "S3_SECRET_KEY")
	setString(&cfg.DocStore.Prefix, "S3_PREFIX")
	setString(&cfg.DocStore.BasePath, "DOCSTORE_PATH")

	if err := setBool(&cfg.Submission.CleanupOrphans, "CLEANUP_ORPHAN_IMAGES"); err != nil {
		return err
	}

	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	if err := setInt(&cfg.Email.SMTPPort, "SMTP_PORT"); err != nil {
		return err
	}
	setString(&cfg.Email.SMTPUsername, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "SMTP_FROM")
	setString(&cfg.Email.AdminEmail, "ADMIN_EMAIL")

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

// LoadConfig загружает конфигурацию в AppConfig и завершает процесс при ошибке.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// IsDevelopment reports whether the server runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// EmailEnabled reports whether SMTP notifications can be sent.
func (c *Config) EmailEnabled() bool {
	return c.Email.SMTPHost != "" && c.Email.AdminEmail != ""
}
