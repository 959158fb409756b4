// Package repository реализует доступ к документам пользователей в MongoDB:
// регистрацию, поиск по учётным данным и операции со встроенным списком
// избранных стран.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andreyzhukovv/country-explorer/internal/models"
	"github.com/andreyzhukovv/country-explorer/internal/storage"
)

// Ошибки уровня хранилища. Сервисный слой переводит их в сообщения
// и HTTP-статусы.
var (
	// ErrUserNotFound — пользователь с данным идентификатором или
	// учётными данными не существует.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser — нарушение уникальности email или username.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrAlreadyFavorite — страна уже есть во встроенном списке избранного.
	ErrAlreadyFavorite = errors.New("country already in favorites")
)

// Users предоставляет операции над коллекцией пользователей.
type Users struct {
	coll *mongo.Collection
}

// NewUsers создает репозиторий поверх подключенного хранилища.
func NewUsers(s *storage.Storage) *Users {
	return &Users{coll: s.DB.Collection(storage.UsersCollection)}
}

// RegisterUser сохраняет нового пользователя и возвращает его ID.
// Нарушение уникальных индексов (email, username) переводится
// в ErrDuplicateUser.
func (u *Users) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "repository.RegisterUser"

	user.CreatedAt = time.Now().UTC()
	if user.Favorites == nil {
		user.Favorites = []models.Country{}
	}

	res, err := u.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%s: %w", op, ErrDuplicateUser)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	return id.Hex(), nil
}

// GetUserByEmail возвращает пользователя по email или ErrUserNotFound.
func (u *Users) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "repository.GetUserByEmail"
	return u.findOne(ctx, op, bson.M{"email": email})
}

// GetUserByUsername возвращает пользователя по username или ErrUserNotFound.
func (u *Users) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "repository.GetUserByUsername"
	return u.findOne(ctx, op, bson.M{"username": username})
}

// GetUserByID возвращает пользователя по строковому ObjectID.
func (u *Users) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "repository.GetUserByID"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return u.findOne(ctx, op, bson.M{"_id": oid})
}

func (u *Users) findOne(ctx context.Context, op string, filter bson.M) (*models.User, error) {
	var user models.User
	err := u.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// AddFavorite добавляет снимок страны во встроенный список пользователя
// и возвращает обновлённый список. Добавление выполняется одним запросом
// с защитой от дубликата: фильтр пропускает документ только если страны
// с таким cca3 в списке ещё нет.
func (u *Users) AddFavorite(ctx context.Context, userID string, country models.Country) ([]models.Country, error) {
	const op = "repository.AddFavorite"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	filter := bson.M{
		"_id":            oid,
		"favorites.cca3": bson.M{"$ne": country.CCA3},
	}
	update := bson.M{"$push": bson.M{"favorites": country}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err = u.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Либо пользователя нет, либо страна уже в избранном — различаем
		if _, findErr := u.findOne(ctx, op, bson.M{"_id": oid}); findErr != nil {
			return nil, findErr
		}
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyFavorite)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user.Favorites, nil
}

// RemoveFavorite убирает страну из встроенного списка по коду cca3
// и возвращает обновлённый список. Отсутствие страны в списке — не
// ошибка: $pull без совпадений оставляет документ как есть.
func (u *Users) RemoveFavorite(ctx context.Context, userID, cca3 string) ([]models.Country, error) {
	const op = "repository.RemoveFavorite"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	update := bson.M{"$pull": bson.M{"favorites": bson.M{"cca3": cca3}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err = u.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user.Favorites, nil
}

// ListFavorites возвращает встроенный список избранного пользователя.
func (u *Users) ListFavorites(ctx context.Context, userID string) ([]models.Country, error) {
	const op = "repository.ListFavorites"

	user, err := u.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Favorites == nil {
		return []models.Country{}, nil
	}
	return user.Favorites, nil
}
