package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the global configuration flags from args and returns
// the remaining positional arguments. Parsing stops at the first
// non-flag argument, so a command and its own flags are left untouched.
//
// Flags:
//
//	-a stub backend listen address in format [host]:[port]
//	-api inventory API base URL
//	-d local session database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration access token lifetime (e.g., "5m")
//	-refresh-duration refresh cookie lifetime (e.g., "24h")
//	-request-timeout outbound request timeout (e.g., "10s")
//	-server-timeout inbound request timeout (e.g., "30s")
//	-session-check-interval session keeper interval (e.g., "30s")
//	-refresh-skew refresh this long before expiry (e.g., "30s")
//	-log-file client log file path
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var apiURL string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var refreshDuration time.Duration
	var requestTimeout time.Duration
	var serverTimeout time.Duration
	var sessionCheckInterval time.Duration
	var refreshSkew time.Duration
	var logPath string

	fs := flag.NewFlagSet("stock-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiURL, "api", "", "Inventory API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local session database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Access token lifetime (e.g., 5m)")
	fs.DurationVar(&refreshDuration, "refresh-duration", 0, "Refresh cookie lifetime (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 10s)")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Inbound request timeout (e.g., 30s)")
	fs.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session keeper interval (e.g., 30s)")
	fs.DurationVar(&refreshSkew, "refresh-skew", 0, "Refresh this long before token expiry")
	fs.StringVar(&logPath, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			RefreshDuration: refreshDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			APIURL:         apiURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionCheckInterval: sessionCheckInterval,
			RefreshSkew:          refreshSkew,
		},
		Log:          Log{Path: logPath},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
