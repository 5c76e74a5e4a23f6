package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// Server
	ServerPort  string
	CORSOrigins []string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret string
	JWTTTL    time.Duration

	// Identity sync
	IdentityCacheTTL time.Duration

	// Leaderboard
	LeaderboardWindow time.Duration
	LeaderboardLimit  int
}

var defaults = map[string]interface{}{
	"SERVER_PORT":  "8000",
	"CORS_ORIGINS": "http://localhost:3000,http://127.0.0.1:3000",

	"DB_HOST":     "localhost",
	"DB_PORT":     "5432",
	"DB_USER":     "postgres",
	"DB_PASSWORD": "postgres",
	"DB_NAME":     "community",
	"DB_SSLMODE":  "disable",

	"REDIS_HOST":     "localhost",
	"REDIS_PORT":     "6379",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,

	"JWT_SECRET": "your-secret-key-change-in-production",
	"JWT_TTL":    "24h",

	"IDENTITY_CACHE_TTL": "1h",

	"LEADERBOARD_WINDOW": "24h",
	"LEADERBOARD_LIMIT":  5,
}

// Load reads configuration from the process environment, an optional .env
// file and an optional config.yaml in the working directory. Environment
// variables win over the yaml file.
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config := &Config{
		ServerPort:  v.GetString("SERVER_PORT"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),

		RedisHost:     v.GetString("REDIS_HOST"),
		RedisPort:     v.GetString("REDIS_PORT"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		IdentityCacheTTL: v.GetDuration("IDENTITY_CACHE_TTL"),

		LeaderboardWindow: v.GetDuration("LEADERBOARD_WINDOW"),
		LeaderboardLimit:  v.GetInt("LEADERBOARD_LIMIT"),
	}

	return config, nil
}

// DSN builds the postgres connection string shared by the service and the
// migrate command.
func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
