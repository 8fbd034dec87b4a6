package repositories

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"ysphere-server/configs"
)

type dbs struct {
	Mongo *mongo.Client
	DB    *mongo.Database
	Redis *redis.Client
}

// Singleton，啟動時初始化一次
var DBS dbs

func Init() {
	initMongo()
	initRedis()
	ensureIndexes()
}

func initMongo() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(configs.Configs.MongoDB.Uri))
	if err != nil {
		configs.Logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		return
	}

	if err := client.Ping(ctx, nil); err != nil {
		configs.Logger.Fatal("Failed to ping MongoDB", zap.Error(err))
		return
	}

	DBS.Mongo = client
	DBS.DB = client.Database(configs.Configs.MongoDB.Database)
	configs.Logger.Info("MongoDB connected successfully")
}

func initRedis() {
	opt := &redis.Options{
		Addr:     configs.Configs.Redis.Addresses[0],
		Username: configs.Configs.Redis.Username,
		Password: configs.Configs.Redis.Password,
		DB:       configs.Configs.Redis.Database,
	}

	if configs.Configs.Redis.Tls {
		opt.TLSConfig = &tls.Config{}
	}

	DBS.Redis = redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := DBS.Redis.Ping(ctx).Result()
	if err != nil {
		configs.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		return
	}

	configs.Logger.Info("Redis connected successfully", zap.String("result", result))
}

// ensureIndexes 建立唯一索引，重複值靠資料庫擋下
func ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	sparseUnique := options.Index().SetUnique(true).SetSparse(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "IDNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: sparseUnique},
		},
		"departments": {
			{Keys: bson.D{{Key: "departmentId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name", Value: 1}, {Key: "company", Value: 1}}, Options: unique},
		},
		"companies": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "companyId", Value: 1}}, Options: unique},
		},
		"serviceTickets": {
			{Keys: bson.D{{Key: "ticketId", Value: 1}}, Options: unique},
		},
		"formTemplates": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"forms": {
			{Keys: bson.D{{Key: "formNumber", Value: 1}, {Key: "formTemplate", Value: 1}}, Options: unique},
		},
		"tempUsers": {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "company", Value: 1}, {Key: "department", Value: 1}}},
		},
		"auditLogs": {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "targetModel", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := DBS.DB.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			configs.Logger.Error("Failed to create indexes",
				zap.String("collection", coll),
				zap.Error(err))
		}
	}
}
