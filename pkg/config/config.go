package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"

	"github.com/birdayz/transpose/pkg/cipher"
)

// NamedKey is a cipher key saved under a name.
type NamedKey struct {
	Name   string `yaml:"name"`
	Digits string `yaml:"digits"`
}

// Parse validates the stored digits.
func (k *NamedKey) Parse() (cipher.Key, error) {
	key, err := cipher.ParseKey(k.Digits)
	if err != nil {
		return cipher.Key{}, fmt.Errorf("key %q: %w", k.Name, err)
	}
	return key, nil
}

type Config struct {
	CurrentKey  string      `yaml:"current-key"`
	KeyOverride string      `yaml:"-"`
	Keys        []*NamedKey `yaml:"keys"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

func (c *Config) HasKey(name string) bool {
	for _, k := range c.Keys {
		if k.Name == name {
			return true
		}
	}
	return false
}

// AddKey stores digits under name after validating them.
func (c *Config) AddKey(name, digits string) error {
	if c.HasKey(name) {
		return fmt.Errorf("key with name '%v' exists already", name)
	}
	nk := &NamedKey{Name: name, Digits: digits}
	if _, err := nk.Parse(); err != nil {
		return err
	}
	c.Keys = append(c.Keys, nk)
	return nil
}

// RemoveKey drops the key called name. Removing the current key also
// clears current-key.
func (c *Config) RemoveKey(name string) error {
	for i, k := range c.Keys {
		if k.Name == name {
			c.Keys = append(c.Keys[:i], c.Keys[i+1:]...)
			if c.CurrentKey == name {
				c.CurrentKey = ""
			}
			return nil
		}
	}
	return fmt.Errorf("key with name '%v' does not exist", name)
}

func (c *Config) SetCurrentKey(name string) error {
	oldKey := c.CurrentKey
	for _, k := range c.Keys {
		if k.Name == name {
			c.CurrentKey = name

			if err := c.Write(); err != nil {
				// "Revert" change, either everything is successful or
				// nothing.
				c.CurrentKey = oldKey
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("could not find key with name %v", name)
}

// ActiveKey returns a copy of the key selected by KeyOverride, or by
// CurrentKey when there is no override. It returns nil if neither names a
// stored key.
func (c *Config) ActiveKey() *NamedKey {
	if c == nil {
		return nil
	}

	toSearch := c.KeyOverride
	if c.KeyOverride == "" {
		toSearch = c.CurrentKey
	}

	if toSearch == "" {
		return nil
	}

	for _, k := range c.Keys {
		if k.Name == toSearch {
			k := *k
			return &k
		}
	}
	return nil
}

// Path returns the file this config is read from and written to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	c.configPath = configPath
	return nil
}

// ReadConfig loads the config at cfgPath, or at $HOME/.transpose/config
// when cfgPath is empty. A missing default file is an empty config, a
// missing explicit file is an error.
func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".transpose", "config"), nil
}
