package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format selects text or JSON reports
	Format OutputFormat

	// Colour enables ANSI colours in text reports
	Colour bool

	// Draw appends a board diagram after a text report
	Draw bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Text,
	}
}
