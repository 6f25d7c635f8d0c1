package config

import "time"

const (
	DefaultAppName           = "JSONPlaceholder API Proxy"
	DefaultAppVersion        = "1.0.0"
	DefaultLogLevel          = "debug"
	DefaultHTTPAddress       = "0.0.0.0:8000"
	DefaultReadTimeout       = 15 * time.Second
	DefaultWriteTimeout      = 60 * time.Second
	DefaultShutdownTimeout   = 30 * time.Second
	DefaultUpstreamBaseURL   = "https://jsonplaceholder.typicode.com"
	DefaultUpstreamTimeout   = 30 * time.Second
	DefaultHealthCheckUserID = 1
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     DefaultAppName,
			Version:  DefaultAppVersion,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			ReadTimeout:        DefaultReadTimeout,
			WriteTimeout:       DefaultWriteTimeout,
			ShutdownTimeout:    DefaultShutdownTimeout,
			CORSAllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			BaseURL:           DefaultUpstreamBaseURL,
			RequestTimeout:    DefaultUpstreamTimeout,
			HealthCheckUserID: DefaultHealthCheckUserID,
		},
	}
}
