package config

const (
	defaultLogDir         = "~/.local/share/picsync/logs"
	defaultExiftoolBinary = "exiftool"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// defaultDateFields lists metadata field names checked in order when
// resolving a creation date. The names match exiftool's human-readable
// output labels.
func defaultDateFields() []string {
	return []string{
		"Date/Time Original",
		"Create Date",
		"Media Create Date",
		"Track Create Date",
		"Creation Date",
		"Date/Time Digitized",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Exiftool: Exiftool{
			Binary: defaultExiftoolBinary,
		},
		Dates: Dates{
			Fields: defaultDateFields(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
