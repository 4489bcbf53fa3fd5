package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port              int           `yaml:"port"`
	ClientOrigin      string        `yaml:"client_origin"`
	JwtTTL            time.Duration `yaml:"jwt_ttl"`
	DirectoryCacheTTL time.Duration `yaml:"directory_cache_ttl"`
	MaxUploadSizeMB   int64         `yaml:"max_upload_size_mb"`
	LogLevel          string        `yaml:"log_level"`
	LogJSON           bool          `yaml:"log_json"`
}

type Private struct {
	Pg         Pg         `yaml:"pg"`
	JwtKey     string     `yaml:"jwt_key"`
	Cloudinary Cloudinary `yaml:"cloudinary"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Cloudinary struct {
	CloudName string `yaml:"cloud_name"`
	ApiKey    string `yaml:"api_key"`
	ApiSecret string `yaml:"api_secret"`
	Folder    string `yaml:"folder"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
