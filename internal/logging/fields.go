package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfigFiles = "config_files"
	FieldFormat      = "format"
	FieldDepth       = "depth"

	// Document fields.
	FieldLanguage   = "language"
	FieldBytes      = "bytes"
	FieldBlocks     = "blocks"
	FieldAttributes = "attributes"
	FieldQuery      = "query"
	FieldMatches    = "matches"

	// Bench fields.
	FieldIterations = "iterations"
	FieldMode       = "mode"
	FieldElapsed    = "elapsed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
