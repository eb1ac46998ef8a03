package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/diagramkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-w string     HTTP bind address (e.g., ":8080")
//	-d string     PostgreSQL DSN
//	-u string     S3 root user
//	-p string     S3 root password
//	-b string     S3 bucket name
//	-g string     S3 region
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-m string     blob backend: s3 | memory
//	-k string     counter backend: postgres | redis
//	-r string     Redis address
//	-t duration   store call timeout
//	-x duration   store write retry budget
//	-s duration   presigned URL expiry
//	-n int        versions per page
//	-z string     path to the Graphviz dot binary
//	-l string     log level
//	-f string     log format: json | console
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so the -c config flag does not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-w", "-d", "-u", "-p", "-b", "-g", "-e", "-m", "-k", "-r",
		"-t", "-x", "-s", "-n", "-z", "-l", "-f",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.BlobBackend, "m", config.BlobBackend, "blob backend (s3|memory)")
	fs.StringVar(&config.CounterBackend, "k", config.CounterBackend, "counter backend (postgres|redis)")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")

	fs.DurationVar(&config.StoreTimeout, "t", config.StoreTimeout, "store call timeout")
	fs.DurationVar(&config.StoreRetryMaxElapsed, "x", config.StoreRetryMaxElapsed, "store write retry budget")
	fs.DurationVar(&config.PresignExpiry, "s", config.PresignExpiry, "presigned URL expiry")
	fs.IntVar(&config.VersionPageSize, "n", config.VersionPageSize, "versions per page")

	fs.StringVar(&config.GraphvizPath, "z", config.GraphvizPath, "graphviz dot binary")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|console)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
