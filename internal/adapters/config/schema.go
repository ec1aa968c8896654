package config

// Encorefile represents the structure of the encore.yaml configuration file.
type Encorefile struct {
	Root       string               `yaml:"root"`
	OutputPath string               `yaml:"output_path"`
	Version    string               `yaml:"version"`
	BaseURL    string               `yaml:"base_url"`
	Entries    map[string]*EntryDTO `yaml:"entries"`
}

// EntryDTO represents the default asset options of one entry point.
// Keys the resolver does not know are kept in Extra.
type EntryDTO struct {
	JS       *bool          `yaml:"js"`
	CSS      *bool          `yaml:"css"`
	JSDep    []string       `yaml:"js_dep"`
	CSSDep   []string       `yaml:"css_dep"`
	InFooter *bool          `yaml:"in_footer"`
	Media    *string        `yaml:"media"`
	Extra    map[string]any `yaml:",inline"`
}
