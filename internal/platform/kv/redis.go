package kv

import (
	"context"
	"log/slog"
	"os"

	"github.com/RJohnPaul/dms/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func ConnectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	_, err := RDB.Ping(ctx).Result()
	if err != nil {
		slog.Error("Could not connect to Redis", "addr", config.AppConfig.RedisAddr, "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to Redis", "addr", config.AppConfig.RedisAddr)
}

func CloseRedis() {
	if RDB != nil {
		RDB.Close()
		slog.Info("Redis connection closed")
	}
}
