package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/nego/internal/model"
)

// DefaultConfigFile is looked up in the working directory when no config is given.
const DefaultConfigFile = "nego.toml"

const defaultTimeout = 10 * time.Second

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ConfigLoader reads run configuration and target definitions.
type ConfigLoader interface {
	LoadRunConfig(path m.Path) (m.RunConfig, error)
	LoadTarget(path m.Path, envFile m.Path) (m.Target, error)
}

// LocalConfigLoader reads configuration from the local filesystem.
type LocalConfigLoader struct{}

// NewLocalConfigLoader constructs a LocalConfigLoader.
func NewLocalConfigLoader() *LocalConfigLoader {
	return &LocalConfigLoader{}
}

// DefaultRunConfig returns the configuration used when no file is present.
func DefaultRunConfig() m.RunConfig {
	return m.RunConfig{
		Report: m.ReportConfig{Dir: DefaultReportDir},
		Run: m.RunSettings{
			Parallel: 1,
			Timeout:  m.Duration{Duration: defaultTimeout},
		},
	}
}

// LoadRunConfig decodes a TOML run configuration. An empty path falls back to
// nego.toml in the working directory; a missing default file yields defaults.
func (l *LocalConfigLoader) LoadRunConfig(path m.Path) (m.RunConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	cfg := DefaultRunConfig()

	meta, err := toml.DecodeFile(string(path), &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultRunConfig(), nil
		}

		return m.RunConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return m.RunConfig{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}

	if cfg.Run.Parallel < 1 {
		return m.RunConfig{}, fmt.Errorf("%s: [run].parallel must be at least 1", path)
	}

	if cfg.Report.Dir == "" {
		cfg.Report.Dir = DefaultReportDir
	}

	return cfg, nil
}

// LoadTarget reads a YAML target definition. Variables from envFile (or a .env
// next to the target) are loaded first, then ${VAR} placeholders are expanded.
func (l *LocalConfigLoader) LoadTarget(path m.Path, envFile m.Path) (m.Target, error) {
	if err := loadEnv(path, envFile); err != nil {
		return m.Target{}, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Target{}, fmt.Errorf("target: failed to read %s: %w", path, err)
	}

	var target m.Target
	if err := yaml.Unmarshal(data, &target); err != nil {
		return m.Target{}, fmt.Errorf("target: failed to parse %s: %w", path, err)
	}

	expandTarget(&target)

	if err := validateTarget(target); err != nil {
		return m.Target{}, fmt.Errorf("target: %s: %w", path, err)
	}

	return target, nil
}

func loadEnv(target, envFile m.Path) error {
	if envFile != "" {
		if err := godotenv.Load(string(envFile)); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}

		return nil
	}

	local := filepath.Join(filepath.Dir(string(target)), ".env")
	if _, err := os.Stat(local); err != nil {
		return nil //nolint:nilerr // a missing .env is optional
	}

	if err := godotenv.Load(local); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", local, err)
	}

	return nil
}

func expandTarget(t *m.Target) {
	t.BaseURL = expandEnvString(t.BaseURL)

	for k, v := range t.Headers {
		t.Headers[k] = expandEnvString(v)
	}

	for i := range t.Operations {
		op := &t.Operations[i]
		op.Method = strings.ToUpper(strings.TrimSpace(op.Method))

		for j := range op.Headers {
			op.Headers[j].Value = expandEnvString(op.Headers[j].Value)
		}

		for j := range op.Fields {
			op.Fields[j].Value = expandEnvString(op.Fields[j].Value)
		}
	}
}

func validateTarget(t m.Target) error {
	if t.BaseURL == "" {
		return fmt.Errorf("missing baseUrl")
	}

	if _, err := url.ParseRequestURI(t.BaseURL); err != nil {
		return fmt.Errorf("invalid baseUrl: %w", err)
	}

	if len(t.Operations) == 0 {
		return fmt.Errorf("no operations defined")
	}

	for i, op := range t.Operations {
		if op.Path == "" {
			return fmt.Errorf("operations[%d]: missing path", i)
		}

		if op.Method == "" {
			return fmt.Errorf("operations[%d]: missing method", i)
		}

		for _, f := range op.Fields {
			if f.Pattern == "" {
				continue
			}

			if _, err := regexp.Compile(f.Pattern); err != nil {
				return fmt.Errorf("operations[%d]: field %s: invalid pattern: %w", i, f.Name, err)
			}
		}
	}

	return nil
}

// expandEnvString replaces ${VAR} with the value of the environment variable VAR.
func expandEnvString(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
