package config

// DefaultSearchOutput is where extract-search writes the index.
const DefaultSearchOutput = ".data/search-content.json"

// DefaultExcludes are glob patterns excluded from the content walk by default.
var DefaultExcludes = []string{
	"**/_*.md",
	"**/drafts/**",
	"node_modules/**",
	".git/**",
}

// DefaultReferences is the reference source the site ships with.
var DefaultReferences = []ReferenceSource{
	{
		Slug: "storage",
		Name: "Storage",
		URL:  "https://raw.githubusercontent.com/thirdweb-dev/js/main/packages/storage/typedoc/documentation.json.gz",
	},
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	refs := make([]ReferenceSource, len(DefaultReferences))
	copy(refs, DefaultReferences)
	return &Config{
		SiteName:          "Documentation",
		ContentDir:        "content",
		NavigationFile:    "",
		OutputDir:         "site",
		SearchOutput:      DefaultSearchOutput,
		Port:              8080,
		RevalidateMinutes: 15,
		LogLevel:          "info",
		Include:           []string{"**/*.md"},
		Exclude:           append([]string(nil), DefaultExcludes...),
		References:        refs,
	}
}
