package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/chainkit-mutate/internal/domain/rewrite"
	"github.com/oshokin/chainkit-mutate/internal/repository/revision"
	"github.com/oshokin/chainkit-mutate/internal/repository/source"
)

// Config holds every knob of a rewrite run. Zero values mean defaults.
type Config struct {
	// Target is the file rewritten in place.
	Target string `yaml:"target"`
	// OpenMarker starts a region.
	OpenMarker string `yaml:"open_marker"`
	// CloseMarker ends a region.
	CloseMarker string `yaml:"close_marker"`
	// LintDirective is the first header line.
	LintDirective string `yaml:"lint_directive"`
	// RegionMode is "unwrap" or "strip".
	RegionMode string `yaml:"region_mode"`
	// Strict fails the run when a region is never closed.
	Strict bool `yaml:"strict"`
	// VersionPolicy is "placeholder" or "abort".
	VersionPolicy string `yaml:"version_policy"`
	// VersionPlaceholder is stamped when the revision lookup fails under the placeholder policy.
	VersionPlaceholder string `yaml:"version_placeholder"`
	// GitTimeout bounds the revision lookup.
	GitTimeout time.Duration `yaml:"git_timeout"`
	// RepoDir is where the revision lookup runs; empty means the working directory.
	RepoDir string `yaml:"repo_dir"`
}

const (
	// DefaultConfigFilename is read when no --config flag is given. It is optional.
	DefaultConfigFilename = "chainkit-mutate.yaml"

	// PolicyPlaceholder stamps VersionPlaceholder when the revision is unavailable.
	PolicyPlaceholder = "placeholder"
	// PolicyAbort fails the run when the revision is unavailable.
	PolicyAbort = "abort"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errTargetRequired is returned when the target path is blank after defaults.
	errTargetRequired = errors.New("target must be provided")
	// errSameMarkers is returned when both markers are equal.
	errSameMarkers = errors.New("open and close markers must differ")
	// errUnknownPolicy is returned for unsupported version policies.
	errUnknownPolicy = errors.New("unknown version policy")
	// errMultilineHeader is returned when a header value would break the two-line header.
	errMultilineHeader = errors.New("header values must be single-line")
)

// Default returns the configuration reproducing the original behaviour.
func Default() *Config {
	return &Config{
		Target:        source.DefaultPath,
		OpenMarker:    rewrite.DefaultOpenMarker,
		CloseMarker:   rewrite.DefaultCloseMarker,
		LintDirective: rewrite.DefaultLintDirective,
		RegionMode:    string(rewrite.ModeUnwrap),
		VersionPolicy: PolicyPlaceholder,
		GitTimeout:    revision.DefaultTimeout,
	}
}

// Load reads configuration from path and validates it. An empty path reads
// DefaultConfigFilename if it exists and falls back to Default otherwise.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fills blank fields with defaults and reports every invalid value at once.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	applyDefaults(cfg)

	var err error

	if strings.TrimSpace(cfg.Target) == "" {
		err = multierr.Append(err, errTargetRequired)
	}

	if markerErr := cfg.Markers().Validate(); markerErr != nil {
		err = multierr.Append(err, markerErr)
	} else if cfg.OpenMarker == cfg.CloseMarker {
		err = multierr.Append(err, fmt.Errorf("%w: %q", errSameMarkers, cfg.OpenMarker))
	}

	if _, modeErr := rewrite.ParseMode(cfg.RegionMode); modeErr != nil {
		err = multierr.Append(err, modeErr)
	}

	switch cfg.VersionPolicy {
	case PolicyPlaceholder, PolicyAbort:
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %q", errUnknownPolicy, cfg.VersionPolicy))
	}

	if strings.ContainsAny(cfg.LintDirective+cfg.VersionPlaceholder, "\r\n") {
		err = multierr.Append(err, errMultilineHeader)
	}

	return err
}

// Markers returns the configured marker pair.
func (c *Config) Markers() rewrite.Markers {
	return rewrite.Markers{
		Open:  c.OpenMarker,
		Close: c.CloseMarker,
	}
}

// Mode returns the parsed region mode. Call after Validate.
func (c *Config) Mode() rewrite.Mode {
	mode, err := rewrite.ParseMode(c.RegionMode)
	if err != nil {
		return rewrite.ModeUnwrap
	}

	return mode
}

func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Target == "" {
		cfg.Target = def.Target
	}

	if cfg.OpenMarker == "" {
		cfg.OpenMarker = def.OpenMarker
	}

	if cfg.CloseMarker == "" {
		cfg.CloseMarker = def.CloseMarker
	}

	if cfg.LintDirective == "" {
		cfg.LintDirective = def.LintDirective
	}

	if cfg.RegionMode == "" {
		cfg.RegionMode = def.RegionMode
	}

	if cfg.VersionPolicy == "" {
		cfg.VersionPolicy = def.VersionPolicy
	}

	if cfg.GitTimeout <= 0 {
		cfg.GitTimeout = def.GitTimeout
	}
}
