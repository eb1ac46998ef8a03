package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/diagramkeeper/internal/flagx"
	"github.com/dmitrijs2005/diagramkeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
//
// Only keys present in the file override the current Config.
type JsonConfig struct {
	EndpointAddrGRPC     string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP     string         `json:"endpoint_addr_http"`
	DatabaseDSN          string         `json:"database_dsn"`
	S3RootUser           string         `json:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint"`
	BlobBackend          string         `json:"blob_backend"`
	MemoryBaseURL        string         `json:"memory_base_url"`
	CounterBackend       string         `json:"counter_backend"`
	RedisAddr            string         `json:"redis_addr"`
	StoreTimeout         timex.Duration `json:"store_timeout"`
	StoreRetryMaxElapsed timex.Duration `json:"store_retry_max_elapsed"`
	PresignExpiry        timex.Duration `json:"presign_expiry"`
	VersionPageSize      int            `json:"version_page_size"`
	GraphvizPath         string         `json:"graphviz_path"`
	LogLevel             string         `json:"log_level"`
	LogFormat            string         `json:"log_format"`
}

// parseJson loads configuration values from the JSON file named by -c/-config
// (or $DIAGRAMKEEPER_CONFIG) into config. No file means no changes.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.BlobBackend, c.BlobBackend)
	setString(&config.MemoryBaseURL, c.MemoryBaseURL)
	setString(&config.CounterBackend, c.CounterBackend)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.GraphvizPath, c.GraphvizPath)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)

	if c.StoreTimeout.Duration != 0 {
		config.StoreTimeout = c.StoreTimeout.Duration
	}
	if c.StoreRetryMaxElapsed.Duration != 0 {
		config.StoreRetryMaxElapsed = c.StoreRetryMaxElapsed.Duration
	}
	if c.PresignExpiry.Duration != 0 {
		config.PresignExpiry = c.PresignExpiry.Duration
	}
	if c.VersionPageSize != 0 {
		config.VersionPageSize = c.VersionPageSize
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
