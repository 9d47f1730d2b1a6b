package config

// NodeLogging configures a node's audit log stream: the trail of
// create/subscribe/publish/pull/notify activity recorded for that
// node, as opposed to the daemon-level log configured by AuditLogging.
type NodeLogging struct {
	Audit LogStreamConfig
}

// AuditConfig projects a node's single log stream into the AuditLogging
// shape the audit logger factory consumes: one file writer at the
// stream's path, at info level. Returns the zero AuditLogging (no
// writers) when the node has no file path configured, so callers fall
// back to the process-wide audit logger.
func (n *NodeLogging) AuditConfig() AuditLogging {
	if n.Audit.FilePath == "" {
		return AuditLogging{}
	}
	return AuditLogging{
		Writers: []WriterConfig{
			{
				Type:  "file",
				Level: "info",
				File: FileWriterConfig{
					Path:     n.Audit.FilePath,
					Rotation: n.Audit.RotationConfig,
				},
			},
		},
	}
}
