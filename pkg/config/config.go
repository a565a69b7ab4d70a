package config

import (
	"os"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/ColdGrub1384/SeeLess/pkg/buildgen"
)

// DefaultFile is the optional config file that is read from the build directory
const DefaultFile = "cproj.toml"

// Config describes all configuration options
type Config struct {
	Verbose    string `env:"VERBOSE" toml:"verbose" usage:"pass -v to the compiler if set to 1"`
	Compiler   string `env:"CPROJ_COMPILER" toml:"compiler" default:"clang" usage:"compiler command"`
	ConfigFile string `env:"CPROJ_CONFIG_FILE" toml:"config_file" default:"../../configuration/configuration.txt" usage:"clang config file, relative to the objects directory"`
	Linker     string `env:"CPROJ_LINKER" toml:"linker" default:"llvm-link" usage:"linker command"`
	Output     string `env:"CPROJ_OUTPUT" toml:"output" default:"objects/.compile.sh" usage:"path of the generated script"`
	Log        struct {
		Level string `env:"LEVEL" toml:"level" default:"info" usage:"debug, info, warn or error"`
	} `env:"CPROJ_LOG" toml:"log"`
}

var logLevels = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// Loader initializes an empty config object and returns a new Loader for this object.
// Without files, DefaultFile is used. Missing files are skipped.
func Loader(files ...string) (*Config, *aconfig.Loader) {
	if len(files) == 0 {
		files = []string{DefaultFile}
	}

	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}

	cfg := Config{}
	return &cfg, aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags:          true,
		AllowUnknownFields: true,
		AllowUnknownEnvs:   true,
		SkipFiles:          len(existing) == 0,
		Files:              existing,
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})
}

// Load reads the environment and the passed config files and validates the result
func Load(files ...string) (*Config, error) {
	cfg, loader := Loader(files...)
	if err := loader.Load(); err != nil {
		return nil, eris.Wrap(err, "failed to load configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate verifies that all config fields have valid values
func (cfg *Config) Validate() error {
	if _, ok := logLevels[cfg.Log.Level]; !ok {
		return eris.Errorf("Invalid value for log.level: %s", cfg.Log.Level)
	}

	if cfg.Compiler == "" {
		return eris.New("compiler must not be empty")
	}

	if cfg.Linker == "" {
		return eris.New("linker must not be empty")
	}

	if cfg.Output == "" {
		return eris.New("output must not be empty")
	}

	return nil
}

// Level converts the Log.Level field to a zerolog.Level
func (cfg *Config) Level() zerolog.Level {
	return logLevels[cfg.Log.Level]
}

// IsVerbose reports whether VERBOSE was set to exactly "1". Any other value disables it.
func (cfg *Config) IsVerbose() bool {
	return cfg.Verbose == "1"
}

// ScriptOptions converts the config into options for the script assembler
func (cfg *Config) ScriptOptions() buildgen.ScriptOptions {
	opts := buildgen.DefaultScriptOptions()
	opts.Verbose = cfg.IsVerbose()
	opts.Compiler = cfg.Compiler
	opts.ConfigFile = cfg.ConfigFile
	opts.Linker = cfg.Linker

	return opts
}
