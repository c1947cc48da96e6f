package config

// ReferenceSource describes one remote API description rendered under
// /references/{slug}.
type ReferenceSource struct {
	Slug string `yaml:"slug" koanf:"slug"`
	Name string `yaml:"name" koanf:"name"`
	URL  string `yaml:"url" koanf:"url"`
}

// Config is the top-level docsite configuration, corresponding to .docsite.yml.
type Config struct {
	SiteName          string            `yaml:"site_name" koanf:"site_name"`
	ContentDir        string            `yaml:"content_dir" koanf:"content_dir"`
	NavigationFile    string            `yaml:"navigation_file" koanf:"navigation_file"`
	OutputDir         string            `yaml:"output_dir" koanf:"output_dir"`
	SearchOutput      string            `yaml:"search_output" koanf:"search_output"`
	Port              int               `yaml:"port" koanf:"port"`
	RevalidateMinutes int               `yaml:"revalidate_minutes" koanf:"revalidate_minutes"`
	LogLevel          string            `yaml:"log_level" koanf:"log_level"`
	Include           []string          `yaml:"include" koanf:"include"`
	Exclude           []string          `yaml:"exclude" koanf:"exclude"`
	References        []ReferenceSource `yaml:"references" koanf:"references"`
}
