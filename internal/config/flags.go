package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line arguments (without the program name)
// into a partial *StructuredConfig. Flags that are not given stay zero so
// that lower-priority sources can fill them.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var appName string
	var appVersion string
	var logLevel string
	var readTimeout time.Duration
	var writeTimeout time.Duration
	var shutdownTimeout time.Duration
	var corsOrigins string
	var flattenUpstreamErrors optionalBool
	var upstreamURL string
	var upstreamTimeout time.Duration
	var healthCheckUserID int64

	fs := flag.NewFlagSet("users-proxy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appName, "name", "", "Service name")
	fs.StringVar(&appVersion, "version", "", "Service version")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Inbound request read timeout (e.g., 15s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Response write timeout (e.g., 60s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 30s)")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated list of allowed CORS origins")
	fs.Var(&flattenUpstreamErrors, "flatten-upstream-errors", "Report every upstream failure of the user listing as HTTP 500")
	fs.StringVar(&upstreamURL, "upstream", "", "Upstream API base URL")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout (e.g., 30s)")
	fs.Int64Var(&healthCheckUserID, "health-check-user-id", 0, "User id looked up by the upstream health probe")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Name:     appName,
			Version:  appVersion,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:           serverAddress.String(),
			ReadTimeout:           readTimeout,
			WriteTimeout:          writeTimeout,
			ShutdownTimeout:       shutdownTimeout,
			CORSAllowedOrigins:    splitList(corsOrigins),
			FlattenUpstreamErrors: flattenUpstreamErrors.value,
		},
		Adapter: Adapter{
			BaseURL:           upstreamURL,
			RequestTimeout:    upstreamTimeout,
			HealthCheckUserID: healthCheckUserID,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// optionalBool is a boolean flag that stays nil unless it is given, so an
// explicit -flag=false can be told apart from an absent flag.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	// an empty host listens on all interfaces
	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
