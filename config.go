package teseq

// Config carries the options that, in the reference implementation, were
// process-wide globals (teseq_opts) set once by the CLI and read
// everywhere. Here they are threaded explicitly into NewProcessor instead.
type Config struct {
	// EchoEscapes enables the ":"-sigil lines that echo the literal bytes
	// of a recognized escape/CSI sequence.
	EchoEscapes bool
	// Describe enables the "\""-sigil English description lines.
	Describe bool
	// CaretNames suffixes control names with "/^X" (X = name + 0x40).
	CaretNames bool
	// LineWidth is the putter's wrap width; 0 selects putter.DefaultLineMax.
	LineWidth int
	// AcceptColonAsPrivateMarker makes 0x3A recognized as a CSI private
	// marker alongside the standard 0x3C-0x3F range. The reference
	// implementation hardcodes this; here it is a field that callers of
	// NewProcessor may clear. The CLI always sets it, and its -config file
	// has no key for it.
	AcceptColonAsPrivateMarker bool
}

// DefaultConfig returns the Config a bare "render everything" invocation
// would use: escapes echoed, descriptions on, caret suffixes off,
// default width, and the reference's 0x3A private-marker deviation
// accepted.
func DefaultConfig() Config {
	return Config{
		EchoEscapes:                true,
		Describe:                   true,
		AcceptColonAsPrivateMarker: true,
	}
}
