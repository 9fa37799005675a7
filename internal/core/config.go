package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/the-slidewriter/internal/slides"
	"github.com/julien-sobczak/the-slidewriter/pkg/resync"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
)

// How many parent directories to traverse before considering a directory as not a sw workspace
const maxDepth = 10

// Editor modes
const (
	EditorModeVisual = "visual"
	EditorModeRaw    = "raw"
)

// Presentation modes
const (
	PresentModeTerminal = "terminal"
	PresentModeHTML     = "html"
)

// Default .sw/config content
const DefaultConfig = `
[editor]
mode = "visual"
defaultSlide = "# New Slide\n\nEdit this content."

[present]
mode = "terminal"
outputDir = "build"
assetsDir = "assets"
`

// Default .sw/.gitignore content
const DefaultGitIgnore = `
/database.db
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Editor  ConfigEditor  `toml:"editor"`
	Present ConfigPresent `toml:"present"`
}
type ConfigEditor struct {
	Mode         string `toml:"mode"`
	DefaultSlide string `toml:"defaultSlide"`
	// External editor used in raw mode. Default to $EDITOR.
	Command string `toml:"command"`
}
type ConfigPresent struct {
	Mode      string `toml:"mode"`
	OutputDir string `toml:"outputDir"`
	AssetsDir string `toml:"assetsDir"`
}

type Config struct {
	// Absolute path to the directory containing .sw/
	RootDirectory string
	ConfigFile    ConfigFile
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
		if configSingleton == nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", ErrNoWorkspace)
			os.Exit(1)
		}
	})
	return configSingleton
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes.
	//
	//   $ env SW_HOME=./examples go run ./cmd/sw present
	if path, ok := os.LookupEnv("SW_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $SW_HOME")
			os.Exit(1)
		}
		if _, err := os.Stat(abspath); os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Path in $SW_HOME undefined")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory loads the configuration by searching for a .sw directory in the given directory
// or any parent directories. A nil configuration is returned when no workspace is found.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath := path
	i := 0 // Safeguard to not go up too far
	for {
		i++
		if i > maxDepth {
			return nil, nil
		}
		swPath := filepath.Join(rootPath, ".sw")
		_, err := os.Stat(swPath)
		if os.IsNotExist(err) {
			parent := filepath.Dir(rootPath)
			if parent == rootPath {
				// Root directory detected
				return nil, nil
			}
			rootPath = parent
		} else if err != nil {
			return nil, fmt.Errorf("error while searching for configuration directory: %w", err)
		} else {
			break
		}
	}

	// Check for .sw/config
	swConfigPath := filepath.Join(rootPath, ".sw", "config")
	_, err := os.Stat(swConfigPath)
	var configFile *ConfigFile
	if os.IsNotExist(err) {
		configFile, err = parseConfigFile(DefaultConfig)
		if err != nil {
			return nil, fmt.Errorf("default configuration is broken: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to check for .sw/config file: %w", err)
	} else {
		content, err := os.ReadFile(swConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read .sw/config file: %w", err)
		}
		configFile, err = parseConfigFile(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse .sw/config file: %w", err)
		}
	}

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
	}, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	r := strings.NewReader(content)
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	var result ConfigFile
	if err := d.Decode(&result); err != nil {
		return nil, err
	}

	// Apply default values
	if result.Editor.Mode == "" {
		result.Editor.Mode = EditorModeVisual
	}
	if result.Editor.DefaultSlide == "" {
		result.Editor.DefaultSlide = slides.DefaultContent
	}
	if result.Present.Mode == "" {
		result.Present.Mode = PresentModeTerminal
	}
	if result.Present.OutputDir == "" {
		result.Present.OutputDir = "build"
	}
	if result.Present.AssetsDir == "" {
		result.Present.AssetsDir = "assets"
	}
	return &result, nil
}

// InitConfigFromDirectory creates the .sw configuration directory with default files.
func InitConfigFromDirectory(path string) (*Config, error) {
	currentConfig, err := ReadConfigFromDirectory(path)
	if err != nil {
		return nil, err
	}
	if currentConfig != nil {
		// Do not override current configuration
		return nil, fmt.Errorf("current configuration detected in %s", currentConfig.RootDirectory)
	}

	// Create .sw directory
	swPath := filepath.Join(path, ".sw")
	if err := os.Mkdir(swPath, 0755); err != nil {
		return nil, err
	}

	// Init .sw/config file
	if err := os.WriteFile(filepath.Join(swPath, "config"), []byte(DefaultConfig), 0644); err != nil {
		return nil, err
	}

	// Init .sw/.gitignore file
	gitIgnorePath := filepath.Join(swPath, ".gitignore")
	_, err = os.Stat(gitIgnorePath)
	if os.IsNotExist(err) { // Do not override existing file!
		if err := os.WriteFile(gitIgnorePath, []byte(DefaultGitIgnore), 0644); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	// Reread configuration
	return ReadConfigFromDirectory(path)
}

// Check validates the configuration.
func (c *Config) Check() error {
	if !slices.Contains([]string{EditorModeVisual, EditorModeRaw}, c.ConfigFile.Editor.Mode) {
		return fmt.Errorf("unknown editor mode %q", c.ConfigFile.Editor.Mode)
	}
	if !slices.Contains([]string{PresentModeTerminal, PresentModeHTML}, c.ConfigFile.Present.Mode) {
		return fmt.Errorf("unknown present mode %q", c.ConfigFile.Present.Mode)
	}
	if strings.TrimSpace(c.ConfigFile.Editor.DefaultSlide) == "" {
		return fmt.Errorf("default slide content cannot be blank")
	}
	if slides.ContainsDelimiter(c.ConfigFile.Editor.DefaultSlide) {
		return fmt.Errorf("default slide content cannot contain a slide delimiter")
	}
	return nil
}

// EditorCommand returns the external editor to use in raw mode.
func (c *Config) EditorCommand() string {
	if c.ConfigFile.Editor.Command != "" {
		return c.ConfigFile.Editor.Command
	}
	if editor, ok := os.LookupEnv("EDITOR"); ok && editor != "" {
		return editor
	}
	return "vi"
}

// OutputDir returns the absolute path where exported slideshows are written.
func (c *Config) OutputDir() string {
	return c.absolutePath(c.ConfigFile.Present.OutputDir)
}

// AssetsDir returns the absolute path of the assets referenced by slides.
func (c *Config) AssetsDir() string {
	return c.absolutePath(c.ConfigFile.Present.AssetsDir)
}

func (c *Config) absolutePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.RootDirectory, path)
}
