package impact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Config carries the world tuning knobs. A zero value in any field means
// "use the default", so partial YAML files work.
type Config struct {
	Gravity           Vector  `yaml:"gravity"`
	CellSize          float64 `yaml:"cell_size"`
	Slop              float64 `yaml:"slop"`
	CorrectionPercent float64 `yaml:"correction_percent"`

	// Defaults stamped onto added bodies that have no sleep tuning of
	// their own.
	SleepVelocityThreshold float64 `yaml:"sleep_velocity_threshold"`
	SleepTimeThreshold     float64 `yaml:"sleep_time_threshold"`
}

func DefaultConfig() Config {
	return Config{
		CellSize:               100,
		Slop:                   collisionSlop,
		CorrectionPercent:      correctionPercent,
		SleepVelocityThreshold: DefaultSleepVelocityThreshold,
		SleepTimeThreshold:     DefaultSleepTimeThreshold,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.CellSize <= 0 {
		c.CellSize = def.CellSize
	}
	if c.Slop <= 0 {
		c.Slop = def.Slop
	}
	if c.CorrectionPercent <= 0 {
		c.CorrectionPercent = def.CorrectionPercent
	}
	if c.SleepVelocityThreshold <= 0 {
		c.SleepVelocityThreshold = def.SleepVelocityThreshold
	}
	if c.SleepTimeThreshold <= 0 {
		c.SleepTimeThreshold = def.SleepTimeThreshold
	}
	return c
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config.withDefaults(), nil
}

// WatchConfig reloads the file whenever it changes and hands the result to
// onChange. Tuning applies to worlds the caller constructs afterwards (or
// re-tunes by hand between steps); nothing here touches a running Step.
// The returned function stops the watch.
func WatchConfig(path string, onChange func(Config)) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file so editors that replace
	// the file on save don't silently kill the watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if config, err := LoadConfig(path); err == nil {
					onChange(config)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher.Close, nil
}
