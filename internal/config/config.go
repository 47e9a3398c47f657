package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port          string `mapstructure:"port"`
		Env           string `mapstructure:"env"`
		PublicBaseURL string `mapstructure:"public_base_url"`
	} `mapstructure:"app"`
	Upload struct {
		MaxFileSize    int64  `mapstructure:"max_file_size"`
		MaxRequestSize int64  `mapstructure:"max_request_size"`
		MaxTotalSize   int64  `mapstructure:"max_total_size"`
		BlobPath       string `mapstructure:"blob_path"`
	} `mapstructure:"upload"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Contact struct {
		RateLimit  int           `mapstructure:"rate_limit"`
		RateWindow time.Duration `mapstructure:"rate_window"`
	} `mapstructure:"contact"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
		ServiceName  string `mapstructure:"service_name"`
	} `mapstructure:"tracing"`
	Profile struct {
		Name     string `mapstructure:"name"`
		Headline string `mapstructure:"headline"`
		Email    string `mapstructure:"email"`
		GitHub   string `mapstructure:"github"`
		LinkedIn string `mapstructure:"linkedin"`
	} `mapstructure:"profile"`
}

// RegisterFlags declares the command-line overrides understood by Load.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", ".", "directory containing config.yaml and .env")
	fs.String("port", "", "HTTP port (overrides app.port)")
	fs.String("env", "", "runtime environment: development or production")
	fs.StringSlice("kafka-brokers", nil, "Kafka brokers for content activity events")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.public_base_url", "http://localhost:8080")
	v.SetDefault("upload.max_file_size", int64(10<<20))
	v.SetDefault("upload.max_request_size", int64(32<<20))
	v.SetDefault("upload.max_total_size", int64(256<<20))
	v.SetDefault("upload.blob_path", "/blobs/")
	v.SetDefault("contact.rate_limit", 5)
	v.SetDefault("contact.rate_window", time.Minute)
	v.SetDefault("kafka.group_id", "content-activity-group")
	v.SetDefault("tracing.service_name", "portfolio-api")
	v.SetDefault("profile.name", "Pranav Sangichetty")
	v.SetDefault("profile.headline", "Data Science, AI & LLMs, Machine Learning and Data Analytics")
	v.SetDefault("profile.email", "sangichettypranav@gmail.com")
	v.SetDefault("profile.github", "https://github.com/Pranavsangichetty")
	v.SetDefault("profile.linkedin", "https://www.linkedin.com/in/pranav-sangichetty")
}

// LoadConfig reads config.yaml and .env from path, then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	return Load(path, nil)
}

// Load is LoadConfig plus flag overrides. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (cfg Config, err error) {
	if path == "" {
		path = "."
	}

	if err := godotenv.Load(strings.TrimSuffix(path, "/") + "/.env"); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.public_base_url", "PUBLIC_BASE_URL")
	v.BindEnv("upload.max_file_size", "UPLOAD_MAX_FILE_SIZE")
	v.BindEnv("upload.max_request_size", "UPLOAD_MAX_REQUEST_SIZE")
	v.BindEnv("upload.max_total_size", "UPLOAD_MAX_TOTAL_SIZE")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("contact.rate_limit", "CONTACT_RATE_LIMIT")
	v.BindEnv("contact.rate_window", "CONTACT_RATE_WINDOW")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")

	if fs != nil {
		bindFlag(v, fs, "app.port", "port")
		bindFlag(v, fs, "app.env", "env")
		bindFlag(v, fs, "kafka.brokers", "kafka-brokers")
	}

	err = v.Unmarshal(&cfg)
	return
}

// bindFlag only binds flags the user actually set, so unset flags never shadow config values.
func bindFlag(v *viper.Viper, fs *pflag.FlagSet, key, name string) {
	f := fs.Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	v.BindPFlag(key, f)
}
