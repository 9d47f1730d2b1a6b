package config

// LoggingConfig defines global logging settings applied across the bus
// process: the base directory writers resolve relative paths against,
// the process-wide audit writers, and the defaults new per-node audit
// streams inherit.
type LoggingConfig struct {
	Defaults LogDefaults
	Audit    AuditLogging
	BaseDir  string
}

// LogDefaults defines default timestamp format and rotation settings
// for audit log streams that don't override them.
type LogDefaults struct {
	TimestampFormat string
	Rotation        RotationConfig
}
