package cmd

import (
	"strconv"
	"strings"

	"laundry/internal/adapters/out/postgres"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	RedisAddr              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	DashboardRefreshSpec   string
	QRSize                 string
}

func (c Config) ConnectionSettings() postgres.ConnectionSettings {
	return postgres.ConnectionSettings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// KafkaBrokers splits KafkaHost on commas. An empty host disables publishing.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// TagSize is the QR bag tag size in pixels, or 0 for the adapter's default.
func (c Config) TagSize() int {
	size, err := strconv.Atoi(strings.TrimSpace(c.QRSize))
	if err != nil || size < 0 {
		return 0
	}
	return size
}
