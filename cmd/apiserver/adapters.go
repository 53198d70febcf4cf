package main

import (
	"context"

	rediscache "github.com/turtacn/MacBench/internal/infrastructure/cache/redis"
	"github.com/turtacn/MacBench/internal/infrastructure/dataset"
	"github.com/turtacn/MacBench/pkg/errors"
)

// Adapters for HealthHandler

type redisHealthAdapter struct {
	client *rediscache.Client
}

func (a *redisHealthAdapter) Name() string {
	return "redis"
}

func (a *redisHealthAdapter) Check(ctx context.Context) error {
	return a.client.Ping(ctx)
}

type datasetHealthAdapter struct {
	repo *dataset.Repository
}

func (a *datasetHealthAdapter) Name() string {
	return "dataset"
}

func (a *datasetHealthAdapter) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.repo.Len() == 0 {
		return errors.New(errors.ErrCodeDatasetInvalid, "dataset is empty")
	}
	return nil
}

//Personal.AI order the ending
