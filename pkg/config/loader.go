package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// QAWaveYAMLConfig represents the complete qawave.yaml file structure.
// Every section is optional; omitted sections keep their built-in
// defaults, present sections are merged field-by-field over them.
type QAWaveYAMLConfig struct {
	AI         *AIConfig         `yaml:"ai"`
	Queue      *QueueConfig      `yaml:"queue"`
	Resilience *ResilienceConfig `yaml:"resilience"`
	Runs       *RunsConfig       `yaml:"runs"`
	Retention  *RetentionConfig  `yaml:"retention"`
}

// Initialize is the configuration entry point: it reads qawave.yaml from
// configDir, expands {{.VAR}} templates from the environment, merges the
// result over built-in defaults, and validates the whole thing before
// returning it.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Loading configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration ready",
		"ai_base_url", cfg.AI.BaseURL,
		"ai_model", cfg.AI.Model,
		"workers", cfg.Queue.WorkerCount,
		"max_concurrent_runs", cfg.Queue.MaxConcurrentRuns)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlConfig, err := loader.loadQAWaveYAML()
	if err != nil {
		return nil, NewLoadError("qawave.yaml", err)
	}

	// Merge each user section over the built-in defaults. Non-zero user
	// values override; unset fields keep their defaults.
	ai := DefaultAIConfig()
	if err := mergeSection(ai, yamlConfig.AI, "ai"); err != nil {
		return nil, err
	}

	queue := DefaultQueueConfig()
	if err := mergeSection(queue, yamlConfig.Queue, "queue"); err != nil {
		return nil, err
	}

	resilience := DefaultResilienceConfig()
	if err := mergeSection(resilience, yamlConfig.Resilience, "resilience"); err != nil {
		return nil, err
	}

	runs := DefaultRunsConfig()
	if err := mergeSection(runs, yamlConfig.Runs, "runs"); err != nil {
		return nil, err
	}

	retention := DefaultRetentionConfig()
	if err := mergeSection(retention, yamlConfig.Retention, "retention"); err != nil {
		return nil, err
	}

	return &Config{
		configDir:  configDir,
		AI:         ai,
		Queue:      queue,
		Resilience: resilience,
		Runs:       runs,
		Retention:  retention,
	}, nil
}

// mergeSection merges the user-provided section into the defaults in dst.
// A nil user section keeps the defaults untouched.
func mergeSection[T any](dst *T, user *T, name string) error {
	if user == nil {
		return nil
	}
	if err := mergo.Merge(dst, user, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge %s config: %w", name, err)
	}
	return nil
}

func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand {{.VAR}} templates before parsing. Literal ${...} stays
	// untouched, which matters here: scenario step templates use ${var}
	// placeholders and must survive the file verbatim.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadQAWaveYAML() (*QAWaveYAMLConfig, error) {
	var config QAWaveYAMLConfig

	if err := l.loadYAML("qawave.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
