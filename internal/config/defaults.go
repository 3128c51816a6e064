package config

const (
	defaultOutputRoot      = "~/organized_output"
	defaultLogDir          = "~/.local/share/filehive/logs"
	defaultMarkerToken     = "xh"
	defaultNoteFilename    = "organization_note.txt"
	defaultFreeSpaceMinMiB = 64
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultNotifyTimeout   = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputRoot: defaultOutputRoot,
			LogDir:     defaultLogDir,
		},
		Organizer: Organizer{
			MarkerToken:     defaultMarkerToken,
			NoteFilename:    defaultNoteFilename,
			FreeSpaceMinMiB: defaultFreeSpaceMinMiB,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
			Organization:   true,
			Reprocess:      true,
			Errors:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
