package provider

import (
	"essay-grader/biz/application/service"
	"essay-grader/biz/infrastructure/config"
	"essay-grader/biz/infrastructure/gemini"
	"essay-grader/biz/infrastructure/redis"
	"essay-grader/biz/infrastructure/repository/answerkey"
	"essay-grader/biz/infrastructure/repository/record"
	"essay-grader/biz/infrastructure/storage"
	"essay-grader/biz/infrastructure/vision"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config         *config.Config
	GradingService service.IGradingService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.GradingServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	vision.NewClient,
	wire.Bind(new(service.OCRClient), new(*vision.Client)),
	storage.NewS3Store,
	wire.Bind(new(service.TextStore), new(*storage.S3Store)),
	gemini.NewEngine,
	wire.Bind(new(service.ModelInvoker), new(*gemini.Engine)),
	record.NewMongoMapper,
	answerkey.NewMySQLMapper,
	redis.NewRedis,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
