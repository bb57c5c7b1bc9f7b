package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

func (a *App) initMongo() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	credential := options.Credential{
		AuthSource: a.Config.Mongo.DBName,
		Username:   a.Config.Mongo.User,
		Password:   a.Config.Mongo.Password,
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.Config.Mongo.DSN()).SetAuth(credential))
	if err != nil {
		return errors.Wrap(err, "connect mongo")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return errors.Wrap(err, "ping mongo")
	}

	a.Mongo = client

	return nil
}
