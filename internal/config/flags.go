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

// parseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-a                 API base URL or host:port
//	-request-timeout   outbound request timeout (e.g. "15s")
//	-d                 session database path
//	-persist-interval  periodic session flush (negative disables)
//	-order-transitions order status policy: any | forward
//	-log-file          console log file
//	-stub-address      stub backend listen address host:port
//	-seed              fill the stub backend with demo data
//	-c/-config         json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiAddress       string
		requestTimeout   time.Duration
		databaseDSN      string
		persistInterval  time.Duration
		orderTransitions string
		logFile          string
		stubAddress      NetAddress
		seed             bool
		jsonConfigPath   string
	)

	fs := flag.NewFlagSet("shop-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiAddress, "a", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Session database path")
	fs.DurationVar(&persistInterval, "persist-interval", 0, "Periodic session flush interval, negative disables")
	fs.StringVar(&orderTransitions, "order-transitions", "", "Order status transition policy: any | forward")
	fs.StringVar(&logFile, "log-file", "", "Console log file")
	fs.Var(&stubAddress, "stub-address", "Stub API listen address host:port")
	fs.BoolVar(&seed, "seed", false, "Seed the stub API with demo data")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			OrderTransitions: orderTransitions,
			LogFile:          logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			PersistInterval: persistInterval,
		},
		Stub: Stub{
			HTTPAddress:  stubAddress.String(),
			SeedDemoData: seed,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
