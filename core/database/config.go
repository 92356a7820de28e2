package database

import "strings"

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"moodbank.db"`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Files returns the on-disk files of a sqlite database, journals included,
// or nil for mysql and in-memory databases.
func (c Config) Files() []string {
	if c.Driver != DriverSQLite {
		return nil
	}
	name := strings.TrimPrefix(c.Name, "file:")
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == ":memory:" {
		return nil
	}
	files := []string{name}
	for _, suffix := range []string{"-journal", "-wal", "-shm"} {
		files = append(files, name+suffix)
	}
	return files
}
