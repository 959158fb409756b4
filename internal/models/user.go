// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и встроенный список
// избранных стран. Структура используется в бизнес‑логике и при работе
// с хранилищем MongoDB.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User представляет зарегистрированного пользователя системы.
// Избранные страны хранятся внутри документа пользователя как
// денормализованные копии данных страны на момент добавления,
// а не как ссылки на внешний справочник.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`          // Уникальный идентификатор пользователя
	Name         string             `bson:"name"`                   // Отображаемое имя
	Email        string             `bson:"email"`                  // Электронная почта (уникальная)
	Username     string             `bson:"username"`               // Имя пользователя (уникальное)
	PasswordHash string             `bson:"password_hash" json:"-"` // Хэш пароля, наружу не отдается
	CreatedAt    time.Time          `bson:"created_at"`             // Дата создания учётной записи
	Favorites    []Country          `bson:"favorites"`              // Встроенный список избранных стран
}
