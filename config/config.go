package config

// Config contains all configuration grouped by domain
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
}

// All config structs use string fields only - packages handle conversion during initialization
type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  string
	WriteTimeout string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type WorkerConfig struct {
	CleanupInterval string
}

type LoggingConfig struct {
	Level       string
	Format      string
	ServiceName string
}
