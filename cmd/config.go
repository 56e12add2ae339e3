package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func FindConfig(locations []string) (string, bool) {

	for _, val := range locations {

		stat, err := os.Stat(val)
		if err != nil {
			continue
		}

		if stat.Mode().IsRegular() {
			return val, true
		}
	}

	return "", false
}

func LoadConfigFile(path string) (*FileConfig, error) {

	file, err := os.OpenFile(path, os.O_RDONLY, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %s", err.Error())
	}

	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get config file info: %s", err.Error())
	}

	if !info.Mode().IsRegular() {
		return nil, errors.New("failed to read config file: config file must be a regular file")
	}

	var cfg FileConfig

	if strings.HasSuffix(path, ".yml") || strings.HasSuffix(path, ".yaml") {
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %s", err.Error())
		}
	} else if strings.HasSuffix(path, ".json") {
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %s", err.Error())
		}
	} else {
		return nil, errors.New("unsupported config file format")
	}

	return &cfg, nil
}

type FileConfig struct {
	Endpoint string          `yaml:"endpoint" json:"endpoint"`
	Model    string          `yaml:"model" json:"model"`
	Image    string          `yaml:"image" json:"image"`
	ProxyUrl string          `yaml:"proxy_url" json:"proxy_url"`
	Timeout  string          `yaml:"timeout" json:"timeout"`
	Watch    WatchFileConfig `yaml:"watch" json:"watch"`

	timeout time.Duration
}

type WatchFileConfig struct {
	Interval string `yaml:"interval" json:"interval"`

	interval time.Duration
}

func (this *FileConfig) Valid() error {

	if val, err := parseDuration(this.Timeout); err != nil {
		return fmt.Errorf("invalid timeout value: %s", err.Error())
	} else {
		this.timeout = val
	}

	if val, err := parseDuration(this.Watch.Interval); err != nil {
		return fmt.Errorf("invalid watch interval value: %s", err.Error())
	} else {
		this.Watch.interval = val
	}

	if this.Watch.interval <= time.Second {
		this.Watch.interval = 5 * time.Minute
	}

	return nil
}

func (this *FileConfig) RequestTimeout() time.Duration {
	return this.timeout
}

func (this *WatchFileConfig) IntervalValue() time.Duration {
	return this.interval
}

func parseDuration(val string) (time.Duration, error) {

	if val = strings.TrimSpace(val); val == "" || val == "0" {
		return 0, nil
	}

	for _, next := range val {
		if next < '0' || next > '9' {
			return time.ParseDuration(val)
		}
	}

	seconds, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}

	if seconds < 0 {
		return 0, errors.New("invalid duration value")
	}

	return time.Duration(seconds) * time.Second, nil
}
