package config

// defaultMaxFilesToRetain defines the default number of rotated log files to keep.
const defaultMaxFilesToRetain int = 10

// RotationConfig defines log rotation settings: file size limits, age
// limits, and compression for rotated audit logs.
type RotationConfig struct {
	// MaxSize specifies the maximum size of a log file before rotation (e.g., "100MB").
	MaxSize string
	// MaxAge specifies the maximum age of log files before deletion (e.g., "7d").
	MaxAge string
	// MaxFiles specifies the maximum number of rotated log files to retain.
	MaxFiles int
	// Compress indicates whether rotated log files should be gzip
	// compressed. The rotating log Writer carries this flag but does not
	// compress backups.
	Compress bool
}

// DefaultRotationConfig returns a RotationConfig with sensible defaults.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSize:  "100MB",
		MaxFiles: defaultMaxFilesToRetain,
	}
}
