package config

import "time"

// DatabaseConfig configures the MongoDB preset store.
type DatabaseConfig struct {
	URI                    string        `yaml:"uri"`
	Database               string        `yaml:"database"`
	MaxPoolSize            int           `yaml:"max_pool_size"`
	MinPoolSize            int           `yaml:"min_pool_size"`
	ConnectTimeout         time.Duration `yaml:"connect_timeout"`
	SocketTimeout          time.Duration `yaml:"socket_timeout"`
	ServerSelectionTimeout time.Duration `yaml:"server_selection_timeout"`
	// MigrateOnStart runs pending index migrations before serving.
	MigrateOnStart bool `yaml:"migrate_on_start"`
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URI:                    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:               getEnv("MONGODB_DATABASE", "staticmaps"),
		MaxPoolSize:            getEnvAsInt("MONGODB_MAX_POOL_SIZE", 20),
		MinPoolSize:            getEnvAsInt("MONGODB_MIN_POOL_SIZE", 0),
		ConnectTimeout:         getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		SocketTimeout:          getEnvAsDuration("MONGODB_SOCKET_TIMEOUT", 30*time.Second),
		ServerSelectionTimeout: getEnvAsDuration("MONGODB_SERVER_SELECTION_TIMEOUT", 5*time.Second),
		MigrateOnStart:         getEnvAsBool("MONGODB_MIGRATE_ON_START", true),
	}
}
