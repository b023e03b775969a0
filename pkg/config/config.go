package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"time"

	mwerrors "github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/logging"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.toml
var defaultConfig []byte

// Keys shared by flags, env bindings and defaults
const (
	KeyUsername    = "username"
	KeyBotPassword = "botpassword"
	KeyOAuth2Token = "oauth2-token"
	KeyAPIURL      = "api-url"
	KeyRESTURL     = "rest-url"
	KeyTemplate    = "template"
	KeyEnvFile     = "env-file"
	KeyPage        = "page"
	KeyTimeout     = "timeout"
)

// Layer names where a value came from
type Layer string

const (
	LayerDefault Layer = "default"
	LayerEnvFile Layer = "env-file"
	LayerEnv     Layer = "env"
	LayerFlag    Layer = "flag"
)

// Binding ties a key to the environment variable that can set it
type Binding struct {
	Key string
	Env string
}

// Bindings lists the environment variables mwbotctl reads
var Bindings = []Binding{
	{Key: KeyUsername, Env: "MW_USERNAME"},
	{Key: KeyBotPassword, Env: "MW_BOTPASSWORD"},
	{Key: KeyOAuth2Token, Env: "MW_OAUTH2"},
	{Key: KeyAPIURL, Env: "MW_API_URL"},
	{Key: KeyRESTURL, Env: "MW_REST_URL"},
}

// Input is the resolved operator input
type Input struct {
	Username    string        `koanf:"username"`
	BotPassword string        `koanf:"botpassword"`
	OAuth2Token string        `koanf:"oauth2-token"`
	APIURL      string        `koanf:"api-url"`
	RESTURL     string        `koanf:"rest-url"`
	Template    string        `koanf:"template"`
	EnvFile     string        `koanf:"env-file"`
	Page        string        `koanf:"page"`
	Timeout     time.Duration `koanf:"timeout"`
}

// Sources are the raw layers to merge
type Sources struct {
	// Flags holds only flags the operator set explicitly, keyed like Input.
	Flags map[string]string
	// LookupEnv reads the process environment; os.LookupEnv when nil.
	LookupEnv func(string) (string, bool)
	// EnvFileRequired makes a missing .env file an error (set when --env-file is given).
	EnvFileRequired bool
}

// Resolved is the merged input plus where each key came from
type Resolved struct {
	Input   Input
	origins map[string]Layer
}

// Origin reports which layer supplied key, or "" if none did
func (r *Resolved) Origin(key string) Layer {
	return r.origins[key]
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Resolve merges defaults, .env, environment and flags
func Resolve(src Sources) (*Resolved, error) {
	logger := logging.GetLogger("config")
	lookup := src.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	k := koanf.New(".")
	origins := make(map[string]Layer)

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, mwerrors.Wrap(err, mwerrors.ErrConfigLoad, "failed to load defaults")
	}
	for _, key := range k.Keys() {
		origins[key] = LayerDefault
	}

	// The env file location can itself come from a flag
	envFile := k.String(KeyEnvFile)
	if v, ok := src.Flags[KeyEnvFile]; ok {
		envFile = v
	}

	// 2. .env file
	fromFile, err := loadEnvFile(envFile, src.EnvFileRequired)
	if err != nil {
		return nil, err
	}
	if err := loadLayer(k, origins, LayerEnvFile, fromFile); err != nil {
		return nil, err
	}

	// 3. Process environment
	fromEnv := make(map[string]interface{})
	for _, b := range Bindings {
		if v, ok := lookup(b.Env); ok && v != "" {
			fromEnv[b.Key] = v
		}
	}
	if err := loadLayer(k, origins, LayerEnv, fromEnv); err != nil {
		return nil, err
	}

	// 4. Flags
	fromFlags := make(map[string]interface{}, len(src.Flags))
	for key, v := range src.Flags {
		fromFlags[key] = v
	}
	if err := loadLayer(k, origins, LayerFlag, fromFlags); err != nil {
		return nil, err
	}

	var in Input
	if err := k.Unmarshal("", &in); err != nil {
		return nil, mwerrors.Wrap(err, mwerrors.ErrConfigParse, "invalid configuration value")
	}

	for key, layer := range origins {
		logger.Trace().Str("key", key).Str("layer", string(layer)).Msg("Resolved input")
	}

	return &Resolved{Input: in, origins: origins}, nil
}

func loadLayer(k *koanf.Koanf, origins map[string]Layer, layer Layer, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return mwerrors.Wrapf(err, mwerrors.ErrConfigLoad, "failed to load %s values", layer)
	}
	for key := range values {
		origins[key] = layer
	}
	return nil
}

// loadEnvFile reads a dotenv file and maps its MW_* variables onto keys
func loadEnvFile(path string, required bool) (map[string]interface{}, error) {
	values := make(map[string]interface{})
	if path == "" {
		return values, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return values, nil
		}
		return nil, mwerrors.Wrapf(err, mwerrors.ErrConfigLoad, "cannot read env file %s", path).
			WithDetail("path", path)
	}

	ek := koanf.New(".")
	if err := ek.Load(file.Provider(path), dotenv.Parser()); err != nil {
		return nil, mwerrors.Wrapf(err, mwerrors.ErrConfigParse, "cannot parse env file %s", path).
			WithDetail("path", path)
	}

	for _, b := range Bindings {
		if v := ek.String(b.Env); v != "" {
			values[b.Key] = v
		}
	}
	return values, nil
}
