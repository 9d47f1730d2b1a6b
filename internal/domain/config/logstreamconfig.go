package config

// LogStreamConfig configures one audit log stream: file path,
// timestamp format, and rotation settings.
type LogStreamConfig struct {
	// FilePath specifies the path to the log file for this stream.
	FilePath string
	// Format specifies the Go time format string for timestamps.
	Format string
	// RotationConfig defines log rotation settings for this stream.
	RotationConfig RotationConfig
}

// File returns the log file path.
func (l *LogStreamConfig) File() string {
	return l.FilePath
}

// TimestampFormat returns the timestamp format.
func (l *LogStreamConfig) TimestampFormat() string {
	return l.Format
}

// Rotation returns the rotation configuration.
func (l *LogStreamConfig) Rotation() RotationConfig {
	return l.RotationConfig
}

// NewLogStreamConfig creates a new LogStreamConfig with the given file path.
func NewLogStreamConfig(filePath string) LogStreamConfig {
	return LogStreamConfig{
		FilePath:       filePath,
		RotationConfig: DefaultRotationConfig(),
	}
}
