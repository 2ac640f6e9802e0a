package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Output describes one proxy consumer: whether it is produced at all and
// which quality tier satisfies it. Source may name the other output's
// tier; cross-wiring is intentional so a single encode can serve both.
type Output struct {
	Enabled bool   `toml:"enabled"`
	Source  string `toml:"source"`
}

// Outputs holds the two output toggles.
type Outputs struct {
	Preview  Output `toml:"preview"`
	Workflow Output `toml:"workflow"`
}

// Quality holds the encode settings for one tier.
type Quality struct {
	Scale        string `toml:"scale"`
	VideoBitrate string `toml:"video_bitrate"`
	AudioBitrate string `toml:"audio_bitrate"`
	Codec        string `toml:"codec"`
	CodecProfile string `toml:"codec_profile"`
	Container    string `toml:"container"`
	CRF          string `toml:"crf"`
	Preset       string `toml:"preset"`
	Tune         string `toml:"tune"`
}

// Qualities holds the per-tier encode settings.
type Qualities struct {
	Preview  Quality `toml:"preview"`
	Workflow Quality `toml:"workflow"`
}

// Mapping controls where workflow proxies are stored.
type Mapping struct {
	MarkerFolder string `toml:"marker_folder"`
	NewBase      string `toml:"new_base"`
	RemoveLevels int    `toml:"remove_levels"`
	AppendFolder string `toml:"append_folder"`
}

// Transcoder selects and tunes the external FFmpeg process.
type Transcoder struct {
	// FFmpegPath points at a custom FFmpeg build; empty uses the P5
	// built-in binary (libopenh264 only).
	FFmpegPath string `toml:"ffmpeg_path"`
	// Serialize makes concurrent prevgen invocations run their encodes
	// one at a time via a lock file in the temp directory.
	Serialize bool `toml:"serialize"`
}

// Logging contains configuration for the log sink.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File overrides the log file location; empty writes to
	// prevgen.log in the P5 temp directory.
	File string `toml:"file"`
}

// Config encapsulates all configuration values for prevgen.
type Config struct {
	Outputs    Outputs    `toml:"outputs"`
	Quality    Qualities  `toml:"quality"`
	Mapping    Mapping    `toml:"mapping"`
	Transcoder Transcoder `toml:"transcoder"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/prevgen/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has path fields expanded and tokens normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("prevgen.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	c.Outputs.Preview.Source = strings.ToLower(strings.TrimSpace(c.Outputs.Preview.Source))
	c.Outputs.Workflow.Source = strings.ToLower(strings.TrimSpace(c.Outputs.Workflow.Source))

	for _, q := range []*Quality{&c.Quality.Preview, &c.Quality.Workflow} {
		q.Codec = strings.ToLower(strings.TrimSpace(q.Codec))
		q.Container = strings.ToLower(strings.TrimSpace(q.Container))
		q.Scale = strings.TrimSpace(q.Scale)
	}

	c.Mapping.MarkerFolder = strings.TrimSpace(c.Mapping.MarkerFolder)
	c.Mapping.AppendFolder = strings.TrimSpace(c.Mapping.AppendFolder)
	if base := strings.TrimSpace(c.Mapping.NewBase); base != "" {
		expanded, err := expandPath(base)
		if err != nil {
			return err
		}
		c.Mapping.NewBase = expanded
	} else {
		c.Mapping.NewBase = ""
	}

	if custom := strings.TrimSpace(c.Transcoder.FFmpegPath); custom != "" {
		expanded, err := expandPath(custom)
		if err != nil {
			return err
		}
		c.Transcoder.FFmpegPath = expanded
	} else {
		c.Transcoder.FFmpegPath = ""
	}

	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return err
		}
		c.Logging.File = expanded
	} else {
		c.Logging.File = ""
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
