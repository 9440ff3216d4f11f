package models

// ServerArgument is anything that names a server command-line flag.
type ServerArgument interface {
	// Argument returns the flag as it appears on the command line,
	// including the leading dashes (e.g. "--relaxed-security").
	Argument() string
}

// GeneralServerFlag is a server flag that is not tied to a particular
// automation driver. Any string can be converted to a GeneralServerFlag, so
// flags missing from the list below are still usable.
type GeneralServerFlag string

// Argument implements [ServerArgument].
func (f GeneralServerFlag) Argument() string {
	return string(f)
}

const (
	// SessionOverride enables session override (clobbering).
	SessionOverride GeneralServerFlag = "--session-override"

	// RelaxedSecurity disables additional security checks so that
	// insecure features can be used.
	RelaxedSecurity GeneralServerFlag = "--relaxed-security"

	// AllowInsecure lists insecure features to enable, comma separated.
	AllowInsecure GeneralServerFlag = "--allow-insecure"

	// DenyInsecure lists insecure features to disable even when
	// RelaxedSecurity is on, comma separated.
	DenyInsecure GeneralServerFlag = "--deny-insecure"

	// AllowCORS lets web clients from any origin talk to the server.
	AllowCORS GeneralServerFlag = "--allow-cors"

	// LogLevel sets the server log level, e.g. "debug" or "info:warn".
	LogLevel GeneralServerFlag = "--log-level"

	// LogTimestamp prefixes console output with timestamps.
	LogTimestamp GeneralServerFlag = "--log-timestamp"

	// LocalTimezone uses the local timezone for timestamps.
	LocalTimezone GeneralServerFlag = "--local-timezone"

	// LogNoColors disables colors in console output.
	LogNoColors GeneralServerFlag = "--log-no-colors"

	// DebugLogSpacing adds extra spacing to the log for debugging.
	DebugLogSpacing GeneralServerFlag = "--debug-log-spacing"

	// BasePath sets the path prefix the server routes are served under.
	BasePath GeneralServerFlag = "--base-path"

	// CallbackAddress is the address used for callbacks.
	CallbackAddress GeneralServerFlag = "--callback-address"

	// CallbackPort is the port used for callbacks.
	CallbackPort GeneralServerFlag = "--callback-port"

	// KeepAliveTimeout is the HTTP keep-alive timeout in seconds.
	KeepAliveTimeout GeneralServerFlag = "--keep-alive-timeout"

	// StrictCaps makes the server reject unknown capabilities.
	StrictCaps GeneralServerFlag = "--strict-caps"

	// TempDirectory is the absolute path of the server's temp directory.
	TempDirectory GeneralServerFlag = "--tmp"

	// Webhook sends log output to the given host:port.
	Webhook GeneralServerFlag = "--webhook"

	// NoPermsCheck skips the check that the server runs with sufficient
	// permissions.
	NoPermsCheck GeneralServerFlag = "--no-perms-check"
)
