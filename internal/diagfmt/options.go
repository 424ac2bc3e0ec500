package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeVerbatim uses the path stored in the location as-is.
	PathModeVerbatim PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// Options configures the plain fixed-layout renderer.
type Options struct {
	Color bool // colorize the severity label
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max int // truncate output after Max diagnostics, 0 = unlimited
}
