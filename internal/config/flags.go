package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a portal backend base URL (e.g. http://localhost:3000)
//	-push-address websocket push endpoint (e.g. ws://localhost:3000/ws)
//	-d local store SQLite path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-push-retry push reader redial interval (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var pushAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pushRetry time.Duration

	flag.StringVar(&serverAddress, "a", "", "Portal backend base URL")
	flag.StringVar(&pushAddress, "push-address", "", "Websocket push endpoint")
	flag.StringVar(&databaseDSN, "d", "", "Local store SQLite path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&pushRetry, "push-retry", 0, "Push reader redial interval (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			PushAddress:    pushAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PushRetryInterval: pushRetry,
		},
		JSONFilePath: jsonConfigPath,
	}
}
