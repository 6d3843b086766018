package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "SIDENAV_"

// Имена переменных стиля корневой области
const (
	FullNavWidthKey = "full-nav-width"
	MiniNavWidthKey = "mini-nav-width"
)

// Config конфигурация приложения
type Config struct {
	// Внешний вид
	Theme string `koanf:"theme" yaml:"theme"` // "dark" или "light"

	// Переменные стиля корневой области (аналог custom properties)
	Style map[string]string `koanf:"style" yaml:"style"`

	// Горячие клавиши
	Keybindings map[string]string `koanf:"keybindings" yaml:"keybindings"`

	// Следить за файлом конфигурации и перечитывать стиль
	Watch bool `koanf:"watch" yaml:"watch"`

	// Логирование
	Logging LoggingConfig `koanf:"logging" yaml:"logging"`

	// Путь к файлу, из которого загружена конфигурация
	path string
}

// LoggingConfig настройки логирования
type LoggingConfig struct {
	Level    string `koanf:"level" yaml:"level"`         // debug, info, warn, error (уровни)
	FilePath string `koanf:"file_path" yaml:"file_path"` // Путь к файлу логов
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Theme: "dark",

		Style: map[string]string{
			FullNavWidthKey: "24ch",
			MiniNavWidthKey: "5ch",
		},

		Keybindings: DefaultKeybindings(),

		Logging: LoggingConfig{
			Level:    "info",
			FilePath: "", // Будет определен автоматически
		},
	}
}

// DefaultKeybindings возвращает привязки клавиш по умолчанию
func DefaultKeybindings() map[string]string {
	return map[string]string{
		"toggle_nav":      "ctrl+b",
		"quit":            "ctrl+q",
		"command_palette": "ctrl+p",
		"help":            "f1",
		"settings":        "f2",
		"focus_next":      "tab",
	}
}

// Load загружает конфигурацию. Приоритет (от низшего к высшему):
// значения по умолчанию, файл, переменные окружения SIDENAV_*, флаги.
// Пустой path означает стандартный путь; отсутствующий файл создается
// со значениями по умолчанию.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	k := koanf.New(".")

	// 1. Значения по умолчанию
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Файл конфигурации. Если его нет, создаем с настройками по умолчанию
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := DefaultConfig().Save(path); err != nil {
			return nil, fmt.Errorf("create config file %s: %w", path, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat config file %s: %w", path, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	// 3. Переменные окружения: SIDENAV_STYLE_FULL_NAV_WIDTH -> style.full-nav-width
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Явно заданные флаги
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.path = path

	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = defaultLogPath()
	}
	cfg.applyKeybindingDefaults(DefaultKeybindings())

	// Валидация значений и нормализация дефолтов
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultsMap() map[string]interface{} {
	d := DefaultConfig()
	m := map[string]interface{}{
		"theme":         d.Theme,
		"watch":         d.Watch,
		"logging.level": d.Logging.Level,
	}
	for name, value := range d.Style {
		m["style."+name] = value
	}
	for name, value := range d.Keybindings {
		m["keybindings."+name] = value
	}
	return m
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch {
	case strings.HasPrefix(key, "style_"):
		return "style." + strings.ReplaceAll(strings.TrimPrefix(key, "style_"), "_", "-")
	case strings.HasPrefix(key, "logging_"):
		return "logging." + strings.TrimPrefix(key, "logging_")
	case strings.HasPrefix(key, "keybindings_"):
		return "keybindings." + strings.TrimPrefix(key, "keybindings_")
	default:
		return key
	}
}

// flagKeys сопоставляет флаги CLI ключам конфигурации
var flagKeys = map[string]string{
	"theme":          "theme",
	"watch":          "watch",
	"full-nav-width": "style." + FullNavWidthKey,
	"mini-nav-width": "style." + MiniNavWidthKey,
	"log-level":      "logging.level",
	"log-file":       "logging.file_path",
}

func flagKey(flags *pflag.FlagSet) func(*pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	}
}

func (c *Config) applyKeybindingDefaults(defaults map[string]string) {
	if c.Keybindings == nil {
		c.Keybindings = make(map[string]string, len(defaults))
	}
	for key, value := range defaults {
		current, ok := c.Keybindings[key]
		if !ok || strings.TrimSpace(current) == "" {
			c.Keybindings[key] = value
		}
	}
}

// PropertyValue возвращает значение переменной стиля. Имя можно указывать
// с ведущими "--" или без них. Отсутствующая переменная дает "".
func (c *Config) PropertyValue(name string) string {
	if c == nil || c.Style == nil {
		return ""
	}
	return c.Style[strings.TrimPrefix(name, "--")]
}

// Path возвращает путь к файлу конфигурации
func (c *Config) Path() string {
	return c.path
}

// Save сохраняет конфигурацию в файл
func (c *Config) Save(path string) error {
	// Создаем директорию если ее нет
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yamlv3.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultPath возвращает путь к конфигурационному файлу
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "sidenav-tui", "config.yaml"), nil
}

// defaultLogPath возвращает путь к файлу логов по умолчанию
func defaultLogPath() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		homeDir, _ := os.UserHomeDir()
		cacheDir = filepath.Join(homeDir, ".cache")
	}

	return filepath.Join(cacheDir, "sidenav-tui", "app.log")
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	// Проверяем тему
	if c.Theme != "dark" && c.Theme != "light" {
		c.Theme = "dark"
	}

	// Проверяем уровень логирования
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if !validLevels[c.Logging.Level] {
		c.Logging.Level = "info"
	}

	// Привязки клавиш не могут быть пустыми
	for name, key := range c.Keybindings {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("keybinding %q is empty", name)
		}
	}

	return nil
}
