package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Redis        Redis
	JWT          JWT
	Quiz         Quiz
	GeminiApiKey string
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}
type Redis struct {
	Addr     string
	Password string
	DB       int
}
type JWT struct {
	Secret      string
	ExpiryHours int
}
type Quiz struct {
	// Seconds a player gets per question; delivered to clients with each question.
	QuestionTimeLimit int
	// TTL in seconds for cached leaderboard pages in Redis.
	LeaderboardCacheTTL int
	// Upper bound on live anonymous sessions; oldest are evicted past it.
	MaxAnonymousSessions int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("JWT_EXPIRY_HOURS", 72)
	viper.SetDefault("QUESTION_TIME_LIMIT", 30)
	viper.SetDefault("LEADERBOARD_CACHE_TTL", 60)
	viper.SetDefault("MAX_ANONYMOUS_SESSIONS", 10000)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.ExpiryHours = viper.GetInt("JWT_EXPIRY_HOURS")

	config.Quiz.QuestionTimeLimit = viper.GetInt("QUESTION_TIME_LIMIT")
	config.Quiz.LeaderboardCacheTTL = viper.GetInt("LEADERBOARD_CACHE_TTL")
	config.Quiz.MaxAnonymousSessions = viper.GetInt("MAX_ANONYMOUS_SESSIONS")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
