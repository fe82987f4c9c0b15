package main

import (
	"context"

	"cropcycle/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type App struct {
	cfg      Config
	log      *zap.Logger
	mongo    *mongo.Client
	db       *mongo.Database
	users    *mongo.Collection
	sessions *mongo.Collection
	cache    *redis.Client // nil when REDIS_ADDR is unset

	predictor *PredictorClient
	registry  *RegistryClient
	analytics *AnalyticsClient
	predPool  *predictorPool
	limiter   *RateLimiter
}

func newApp(ctx context.Context, cfg Config, log *zap.Logger) (*App, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDB)

	app := &App{
		cfg:      cfg,
		log:      log,
		mongo:    client,
		db:       db,
		users:    db.Collection("users"),
		sessions: db.Collection("wizard_sessions"),
		limiter:  NewRateLimiter(),
	}
	// Indexes
	if _, err := app.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, err
	}
	if _, err := app.sessions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "updatedAt", Value: -1}},
	}); err != nil {
		return nil, err
	}

	if cfg.RedisAddr != "" {
		app.cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	app.predictor = NewPredictorClient(cfg.PredictorURL, log)
	app.registry = NewRegistryClient(cfg.MarketURL, log)
	app.analytics = NewAnalyticsClient(cfg.MarketURL, log)
	app.predPool = newPredictorPool(app.predictor)

	_ = models.User{} // ensure models imported
	return app, nil
}

func (a *App) close(ctx context.Context) {
	if a.cache != nil {
		_ = a.cache.Close()
	}
	_ = a.mongo.Disconnect(ctx)
}
