// Package storage отвечает за подключение к MongoDB и подготовку коллекций.
package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andreyzhukovv/country-explorer/internal/config"
)

// UsersCollection — имя коллекции пользователей.
const UsersCollection = "users"

// Storage держит подключение к MongoDB и выбранную базу данных.
type Storage struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// New подключается к MongoDB и проверяет соединение ping-ом.
// Ошибка подключения на старте фатальна для приложения — вызывающая
// сторона завершает процесс.
func New(ctx context.Context, cfg config.MongoConnection) (*Storage, error) {
	const op = "storage.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		Client: client,
		DB:     client.Database(cfg.Database),
	}, nil
}

// EnsureIndexes создает индексы коллекции пользователей: уникальность
// email и username обеспечивается на уровне базы. Повторный вызов
// безопасен — существующие индексы не пересоздаются.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	const op = "storage.EnsureIndexes"

	users := s.DB.Collection(UsersCollection)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close разрывает подключение к MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	const op = "storage.Close"
	if err := s.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
