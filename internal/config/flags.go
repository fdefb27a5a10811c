package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-a                server address in format [host]:[port]
//	-g                gRPC health address in format [host]:[port]
//	-d                database DSN
//	-c/-config        json file path with configs
//	-token-sign-key   token signing key
//	-token-issuer     token issuer name
//	-token-duration   token lifetime (e.g. "1h")
//	-hash-key         decoy salt hash key
//	-bcrypt-cost      bcrypt work factor
//	-request-timeout  inbound request timeout
//	-shutdown-timeout graceful shutdown timeout
//	-s                vault server URL used by the client
//	-adapter-timeout  outbound request timeout of the client
//	-locale           collation locale of the client
//	-clipboard-ttl    clipboard auto-clear delay
//	-log-file         client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcAddress NetAddress
	var (
		databaseDSN     string
		jsonConfigPath  string
		tokenSignKey    string
		tokenIssuer     string
		tokenDuration   time.Duration
		hashKey         string
		bcryptCost      int
		requestTimeout  time.Duration
		shutdownTimeout time.Duration
		adapterAddress  string
		adapterTimeout  time.Duration
		locale          string
		clipboardTTL    time.Duration
		logFile         string
	)

	fs := flag.NewFlagSet("go-pass-vault", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "g", "gRPC health address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&hashKey, "hash-key", "", "Decoy salt hash key")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt work factor")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&adapterAddress, "s", "", "Vault server URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.StringVar(&locale, "locale", "", "Collation locale, BCP 47")
	fs.DurationVar(&clipboardTTL, "clipboard-ttl", 0, "Clipboard auto-clear delay")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
			BcryptCost:    bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			GRPCAddress:     grpcAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Client: Client{
			Locale:       locale,
			ClipboardTTL: clipboardTTL,
			LogFile:      logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
