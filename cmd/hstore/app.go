package main

import (
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/arklib/hstore"
	"github.com/arklib/hstore/config"
	"github.com/arklib/hstore/errx"
	"github.com/arklib/hstore/logger"
	"github.com/arklib/hstore/serializer"
	"github.com/arklib/hstore/store"
	"github.com/arklib/hstore/validator"
)

type AppConfig struct {
	Mode   string        `config:"mode" default:"prod" vd:"oneof=dev prod"`
	Lang   string        `config:"lang" default:"en"`
	Codec  string        `config:"codec" default:"gojson" vd:"oneof=gojson sonic"`
	Logger logger.Config `config:"logger"`
	Store  StoreConfig   `config:"store"`
}

type StoreConfig struct {
	// memory | redis | db
	Driver string `config:"driver" default:"db" vd:"oneof=memory redis db"`
	Scene  string `config:"scene" default:"hstore"`
	Redis  struct {
		Addr     string `config:"addr" default:"127.0.0.1:6379" vd:"required"`
		Password string `config:"password"`
		DB       int    `config:"db" vd:"gte=0"`
	} `config:"redis"`
	DB struct {
		// sqlite file path or dsn
		DSN string `config:"dsn" default:"hstore.db" vd:"required"`
	} `config:"db"`
}

type app struct {
	config   *AppConfig
	logger   *logger.Logger
	registry *hstore.Registry
	store    *store.Store
}

func newApp(paths ...string) (*app, error) {
	c, err := config.Load(paths...)
	if err != nil {
		return nil, errx.New("load config", err).WithCode(errx.InputErrCode)
	}

	ac := new(AppConfig)
	if err = c.Bind("", ac); err != nil {
		return nil, errx.New("bind config", err).WithCode(errx.InputErrCode)
	}
	if err = validator.New(ac.Lang).Test(ac, ac.Lang); err != nil {
		return nil, err
	}

	codec, err := serializer.New(ac.Codec)
	if err != nil {
		return nil, err
	}

	return &app{
		config:   ac,
		logger:   logger.NewByMode(ac.Mode, &ac.Logger),
		registry: hstore.NewRegistry(hstore.WithJSON(codec)),
	}, nil
}

func (a *app) Store() (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	driver, err := a.newDriver()
	if err != nil {
		return nil, err
	}
	a.store = store.New(driver,
		store.WithRegistry(a.registry),
		store.WithLogger(a.logger),
	)
	return a.store, nil
}

func (a *app) newDriver() (store.Driver, error) {
	sc := a.config.Store
	switch sc.Driver {
	case "memory":
		return store.NewMemoryDriver(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     sc.Redis.Addr,
			Password: sc.Redis.Password,
			DB:       sc.Redis.DB,
		})
		return store.NewRedisDriver(client, sc.Scene), nil
	case "db":
		db, err := gorm.Open(sqlite.Open(sc.DB.DSN), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			return nil, errx.New("open db", err)
		}
		driver := store.NewDBDriver(db)
		if err = driver.Init(); err != nil {
			return nil, errx.New("init db", err)
		}
		return driver, nil
	default:
		return nil, errx.Sprintf("unknown store driver: %s", sc.Driver).WithCode(errx.InputErrCode)
	}
}

func (a *app) Close() {
	_ = a.logger.Sync()
}
