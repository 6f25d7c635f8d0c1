package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Name     string `json:"name"`
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress           string   `json:"http_address"`
		ReadTimeout           Duration `json:"read_timeout"`
		WriteTimeout          Duration `json:"write_timeout"`
		ShutdownTimeout       Duration `json:"shutdown_timeout"`
		CORSAllowedOrigins    []string `json:"cors_allowed_origins"`
		FlattenUpstreamErrors *bool    `json:"flatten_upstream_errors"`
	} `json:"server,omitempty"`

	Adapter struct {
		BaseURL           string   `json:"base_url"`
		RequestTimeout    Duration `json:"request_timeout"`
		HealthCheckUserID int64    `json:"health_check_user_id"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:     jsonCfg.App.Name,
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:           jsonCfg.Server.HTTPAddress,
			ReadTimeout:           time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:          time.Duration(jsonCfg.Server.WriteTimeout),
			ShutdownTimeout:       time.Duration(jsonCfg.Server.ShutdownTimeout),
			CORSAllowedOrigins:    jsonCfg.Server.CORSAllowedOrigins,
			FlattenUpstreamErrors: jsonCfg.Server.FlattenUpstreamErrors,
		},
		Adapter: Adapter{
			BaseURL:           jsonCfg.Adapter.BaseURL,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			HealthCheckUserID: jsonCfg.Adapter.HealthCheckUserID,
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from either a duration string
// ("30s") or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
