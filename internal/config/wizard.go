package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// contentDirCandidates are directories checked, in order, for existing
// Markdown content when suggesting a content_dir.
var contentDirCandidates = []string{"content", "docs", "pages"}

// detectContentDir returns the first candidate directory that exists.
func detectContentDir() string {
	for _, dir := range contentDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "content"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docsite! Let's configure your documentation site.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Site name.
	siteName := defaults.SiteName
	if wd, err := os.Getwd(); err == nil && filepath.Base(wd) != "." {
		siteName = filepath.Base(wd)
	}
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: siteName,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}

	// 2. Content directory.
	contentPrompt := promptui.Prompt{
		Label:   "Content directory (Markdown pages)",
		Default: detectContentDir(),
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	// 3. Navigation source.
	navPrompt := promptui.Select{
		Label: "Sidebar navigation",
		Items: []string{
			"generated from the content directory",
			"authored in navigation.yml",
		},
	}
	navIdx, _, err := navPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("navigation selection: %w", err)
	}
	navFile := ""
	if navIdx == 1 {
		navFile = "navigation.yml"
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for docsite serve",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 5. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	exclude := defaults.Exclude
	if excludeStr != "" {
		exclude = append(exclude, splitAndTrim(excludeStr)...)
	}

	cfg := defaults
	cfg.SiteName = siteName
	cfg.ContentDir = contentDir
	cfg.NavigationFile = navFile
	cfg.Port = port
	cfg.Exclude = exclude

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
