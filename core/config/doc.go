// Package config provides configuration management for moodbank.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// moodbank.yaml / moodbank.json file, and environment variables (in increasing
// precedence). Defaults come from `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Root: project root (key "root")
//   - Server: dev server port and proxy rules ("server.port", "server.proxy")
//   - Build: output directory ("build.outDir")
//   - Backend: backend API port and session settings
//   - Database: SQLite or MySQL connection details
//   - Storage: S3/MinIO credentials and bucket for publishing builds
//   - Log: Logging level and format
//
// The file shape matches the encoded server.Descriptor, so the output of
// "moodbank config show" can be saved as moodbank.yaml.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Descriptor().Port)
package config
