package config

type MapsConfig struct {
	// APIKey is sent as the key parameter when a request does not carry its own.
	APIKey string `yaml:"api_key"`
	// UseHTTPS is the scheme default for requests that do not choose one.
	UseHTTPS     bool `yaml:"use_https"`
	UsingSensor  bool `yaml:"using_sensor"`
	MaxWidth     int  `yaml:"max_width"`
	MaxHeight    int  `yaml:"max_height"`
	MaxMarkers   int  `yaml:"max_markers"`
	MaxPaths     int  `yaml:"max_paths"`
	MaxLocations int  `yaml:"max_locations"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		APIKey:       getEnv("GOOGLE_MAPS_API_KEY", ""),
		UseHTTPS:     getEnvAsBool("STATIC_MAPS_USE_HTTPS", false),
		UsingSensor:  getEnvAsBool("STATIC_MAPS_USING_SENSOR", false),
		MaxWidth:     getEnvAsInt("STATIC_MAPS_MAX_WIDTH", 2048),
		MaxHeight:    getEnvAsInt("STATIC_MAPS_MAX_HEIGHT", 2048),
		MaxMarkers:   getEnvAsInt("STATIC_MAPS_MAX_MARKERS", 50),
		MaxPaths:     getEnvAsInt("STATIC_MAPS_MAX_PATHS", 20),
		MaxLocations: getEnvAsInt("STATIC_MAPS_MAX_LOCATIONS", 100),
	}
}
