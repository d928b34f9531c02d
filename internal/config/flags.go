package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses command-line arguments (without the program name).
//
// Usage:
//
//	mirror [flags] [remote-folder]
//
// Flags:
//
//	-b/-backend remote backend: dropbox or s3
//	-l/-local local mirror directory
//	-c/-config json file path with configs
//	-policy staleness policy: hash or mtime
//	-traversal folder order: depth or breadth
//	-no-mtime do not copy remote modification times
//	-dry-run log decisions without writing
//	-interval repeat the sync every interval (e.g. "15m")
//	-i/-interactive ask before creating a missing local directory
//	-s3-bucket, -s3-region, -s3-endpoint S3 location
//	-log-level, -log-format, -log-file logger settings
//	-metrics-file Prometheus textfile path
//
// Credentials are deliberately not accepted as flags; use the environment or
// the JSON file.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		backend, localDir, jsonConfigPath string
		policy, traversal                 string
		noModTime, dryRun, interactive    bool
		interval                          time.Duration
		s3Bucket, s3Region, s3Endpoint    string
		logLevel, logFormat, logFile      string
		metricsFile                       string
	)

	fs := flag.NewFlagSet("mirror", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&backend, "b", "", "Remote backend (dropbox, s3)")
	fs.StringVar(&backend, "backend", "", "Remote backend (alias)")
	fs.StringVar(&localDir, "l", "", "Local mirror directory")
	fs.StringVar(&localDir, "local", "", "Local mirror directory (alias)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&policy, "policy", "", "Staleness policy (hash, mtime)")
	fs.StringVar(&traversal, "traversal", "", "Traversal order (depth, breadth)")
	fs.BoolVar(&noModTime, "no-mtime", false, "Do not copy remote modification times")
	fs.BoolVar(&dryRun, "dry-run", false, "Log decisions without writing")
	fs.DurationVar(&interval, "interval", 0, "Repeat the sync every interval (e.g., 15m)")
	fs.BoolVar(&interactive, "i", false, "Ask before creating a missing local directory")
	fs.BoolVar(&interactive, "interactive", false, "Ask before creating a missing local directory (alias)")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket")
	fs.StringVar(&s3Region, "s3-region", "", "S3 region")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "S3 endpoint override")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", "", "Log format (json, console)")
	fs.StringVar(&logFile, "log-file", "", "Append logs to file")
	fs.StringVar(&metricsFile, "metrics-file", "", "Prometheus textfile path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("%w: expected at most one remote folder, got %d", ErrInvalidArguments, fs.NArg())
	}

	return &StructuredConfig{
		Remote: Remote{
			Backend: backend,
			Folder:  fs.Arg(0),
		},
		S3: S3{
			Bucket:   s3Bucket,
			Region:   s3Region,
			Endpoint: s3Endpoint,
		},
		Local: Local{
			Directory: localDir,
		},
		Sync: Sync{
			Policy:      policy,
			Traversal:   traversal,
			NoModTime:   noModTime,
			DryRun:      dryRun,
			Interval:    interval,
			Interactive: interactive,
		},
		Log: Log{
			Level:  logLevel,
			Format: logFormat,
			File:   logFile,
		},
		Metrics: Metrics{
			File: metricsFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
