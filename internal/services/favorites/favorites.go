// Package services содержит бизнес-логику работы с избранными странами
// пользователя: добавление, удаление и чтение встроенного списка.
package services

import (
	"context"
	"log/slog"

	"github.com/andreyzhukovv/country-explorer/internal/models"
)

// FavoritesRepository определяет операции хранилища над встроенным
// списком избранного.
type FavoritesRepository interface {
	// AddFavorite добавляет снимок страны и возвращает обновлённый список.
	AddFavorite(ctx context.Context, userID string, country models.Country) ([]models.Country, error)
	// RemoveFavorite убирает страну по cca3 и возвращает обновлённый список.
	RemoveFavorite(ctx context.Context, userID, cca3 string) ([]models.Country, error)
	// ListFavorites возвращает текущий список избранного.
	ListFavorites(ctx context.Context, userID string) ([]models.Country, error)
}

// FavoritesService реализует бизнес-логику избранного.
type FavoritesService struct {
	repo FavoritesRepository
	log  *slog.Logger
}

// NewFavoritesService создает новый экземпляр FavoritesService.
func NewFavoritesService(repo FavoritesRepository, log *slog.Logger) *FavoritesService {
	return &FavoritesService{repo: repo, log: log}
}

// Add добавляет страну в избранное пользователя. Страна сохраняется
// как снимок данных на момент добавления. Повторное добавление той же
// страны — конфликт (repository.ErrAlreadyFavorite).
func (s *FavoritesService) Add(ctx context.Context, userID string, country models.Country) ([]models.Country, error) {
	favorites, err := s.repo.AddFavorite(ctx, userID, country)
	if err != nil {
		return nil, err
	}
	s.log.Info("added country to favorites",
		slog.String("user_id", userID),
		slog.String("cca3", country.CCA3))
	return favorites, nil
}

// Remove убирает страну из избранного. Удаление безусловное: отсутствие
// страны в списке не считается ошибкой.
func (s *FavoritesService) Remove(ctx context.Context, userID, cca3 string) ([]models.Country, error) {
	favorites, err := s.repo.RemoveFavorite(ctx, userID, cca3)
	if err != nil {
		return nil, err
	}
	s.log.Info("removed country from favorites",
		slog.String("user_id", userID),
		slog.String("cca3", cca3))
	return favorites, nil
}

// List возвращает список избранного пользователя.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]models.Country, error) {
	return s.repo.ListFavorites(ctx, userID)
}
