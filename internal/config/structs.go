package config

// Config is the complete configuration of the pdftab application. It loads
// from configuration files, environment variables and command-line flags,
// later sources overriding earlier ones key by key.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Extraction settings
	Extraction ExtractionConfig `mapstructure:"extraction" yaml:"extraction" json:"extraction"`

	// Output serialization settings
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Table post-processing settings
	Processing ProcessingConfig `mapstructure:"processing" yaml:"processing" json:"processing"`

	// Batch processing settings
	Batch BatchConfig `mapstructure:"batch" yaml:"batch" json:"batch"`
}

// ExtractionConfig controls backend selection.
type ExtractionConfig struct {
	// Method is the extraction backend (auto, lattice, grid, pagetext, text).
	Method string `mapstructure:"method" yaml:"method" json:"method"`
	// Pages is the default page selector ("" or "all" for every page).
	Pages string `mapstructure:"pages" yaml:"pages" json:"pages"`
	// MinConfidence is the detection confidence floor for scoring backends
	// (0 = backend default).
	MinConfidence float64 `mapstructure:"min_confidence" yaml:"min_confidence" json:"min_confidence"`
	// DisabledBackends lists backends to turn off. The text fallback cannot
	// be disabled.
	DisabledBackends []string `mapstructure:"disabled_backends" yaml:"disabled_backends" json:"disabled_backends"`
}

// OutputConfig controls serialization.
type OutputConfig struct {
	Format    string `mapstructure:"format" yaml:"format" json:"format"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" json:"delimiter"`
	Encoding  string `mapstructure:"encoding" yaml:"encoding" json:"encoding"`
	Header    bool   `mapstructure:"header" yaml:"header" json:"header"`
	// SparseThreshold is the empty-cell ratio at which validation warns.
	SparseThreshold float64 `mapstructure:"sparse_threshold" yaml:"sparse_threshold" json:"sparse_threshold"`
	// MaxReportedLines caps listed inconsistent lines in validation warnings.
	MaxReportedLines int `mapstructure:"max_reported_lines" yaml:"max_reported_lines" json:"max_reported_lines"`
}

// ProcessingConfig controls table merging and cleanup.
type ProcessingConfig struct {
	// Merge is the policy for combining multiple tables (concat, union).
	Merge string `mapstructure:"merge" yaml:"merge" json:"merge"`
	// Clean re-trims merged cells and drops rows emptied by trimming.
	Clean bool `mapstructure:"clean" yaml:"clean" json:"clean"`
	// Dedupe removes duplicate rows after merging.
	Dedupe bool `mapstructure:"dedupe" yaml:"dedupe" json:"dedupe"`
}

// BatchConfig contains batch processing settings.
type BatchConfig struct {
	Workers         int  `mapstructure:"workers" yaml:"workers" json:"workers"`
	ContinueOnError bool `mapstructure:"continue_on_error" yaml:"continue_on_error" json:"continue_on_error"`
	Recursive       bool `mapstructure:"recursive" yaml:"recursive" json:"recursive"`
}

// DefaultConfig returns the configuration with all default values set.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Verbose:  false,
		Extraction: ExtractionConfig{
			Method:           "auto",
			Pages:            "all",
			MinConfidence:    0,
			DisabledBackends: []string{},
		},
		Output: OutputConfig{
			Format:           "csv",
			Delimiter:        ",",
			Encoding:         "utf-8",
			Header:           true,
			SparseThreshold:  0.8,
			MaxReportedLines: 5,
		},
		Processing: ProcessingConfig{
			Merge:  "concat",
			Clean:  true,
			Dedupe: false,
		},
		Batch: BatchConfig{
			Workers:         4,
			ContinueOnError: true,
			Recursive:       false,
		},
	}
}
