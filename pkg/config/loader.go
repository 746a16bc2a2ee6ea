package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes environment overrides
const EnvPrefix = "RXPIPE_"

// Variables under EnvPrefix that are not configuration keys
var reservedEnv = map[string]bool{
	"RXPIPE_CONFIG_DIR": true,
	"RXPIPE_STATE_DIR":  true,
	"RXPIPE_WORKSPACE":  true,
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options selects the files to load
type Options struct {
	// UserFile is the user configuration file; it may be missing
	UserFile string

	// ExplicitFile replaces UserFile and must exist
	ExplicitFile string

	// WorkspaceFile is the workspace configuration file; it may be missing
	WorkspaceFile string

	// Overrides are applied last, keyed like the TOML file ("output.format")
	Overrides map[string]interface{}
}

// Load builds the configuration from all layers and validates it
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	userFile, required := opts.UserFile, false
	if opts.ExplicitFile != "" {
		userFile, required = opts.ExplicitFile, true
	}

	for _, f := range []struct {
		path     string
		required bool
	}{
		{userFile, required},
		{opts.WorkspaceFile, false},
	} {
		loaded, err := loadFile(k, f.path, f.required)
		if err != nil {
			return nil, err
		}
		if loaded {
			sources = append(sources, f.path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to decode configuration")
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", sources).
		Int("quickRules", cfg.QuickRules).
		Int("quickCommands", cfg.QuickCommands).
		Msg("Configuration loaded")
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string, required bool) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
	}
	return true, nil
}

// envKey maps RXPIPE_OUTPUT__NO_COLOR to output.no_color
func envKey(s string) string {
	if reservedEnv[s] {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
