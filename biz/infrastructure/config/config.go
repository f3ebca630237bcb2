package config

import (
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var config *Config

type Auth struct {
	PublicKey string
}

// Storage 模板与标准答案所在的对象存储
type Storage struct {
	Endpoint     string `json:",optional"`
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	PromptPrefix string `json:",optional"`
	AnswerPrefix string `json:",optional"`
}

// Gemini 批改模型配置（Vertex AI）
type Gemini struct {
	Project         string
	Location        string  `json:",default=us-central1"`
	CredentialsFile string  `json:",optional"`
	Model           string  `json:",default=gemini-1.5-pro"`
	Datastore       string  `json:",optional"`
	Temperature     float64 `json:",default=0.1"`
	TopP            float64 `json:",default=0.5"`
	MaxOutputTokens int32   `json:",default=8192"`
}

// Vision OCR 配置
type Vision struct {
	CredentialsFile string `json:",optional"`
	APIKey          string `json:",optional"`
}

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string `json:",default=prod"`
	Auth     Auth
	Mongo    struct {
		URL string
		DB  string
	}
	MySQL struct {
		DSN string `json:",optional"`
	}
	Cache   cache.CacheConf  `json:",optional"`
	Redis   *redis.RedisConf `json:",optional"`
	Storage Storage
	Gemini  Gemini
	Vision  Vision
	Metrics struct {
		ListenOn string `json:",default=:9091"`
		Path     string `json:",default=/metrics"`
	}
}

func NewConfig() (*Config, error) {
	c := new(Config)
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	if err := conf.Load(path, c); err != nil {
		return nil, err
	}
	if err := c.SetUp(); err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
