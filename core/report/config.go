package report

// Config holds configuration for the batch report artifacts.
type Config struct {
	// Dir is the local directory reports are written to.
	Dir string `mapstructure:"dir" default:"."`
	// Prefix is the file name prefix; a timestamp is appended.
	Prefix string `mapstructure:"prefix" default:"marketplace_comparison" validate:"required"`
	// Upload publishes the files to object storage after writing them.
	Upload bool `mapstructure:"upload" default:"false"`
}
