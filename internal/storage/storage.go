// internal/storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"songify/internal/models"
)

var ErrSongNotFound = errors.New("song not found")

// NotFoundError reports an id that is absent from the store. It matches ErrSongNotFound.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("song with id: %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrSongNotFound
}

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mock_storage

type SongStorage interface {
	List(ctx context.Context, limit *int) map[int]models.Song
	Get(ctx context.Context, id int) (models.Song, error)
	Create(ctx context.Context, song models.Song) (int, models.Song)
	Delete(ctx context.Context, id int) error
	// Replace returns the displaced song alongside the stored one.
	Replace(ctx context.Context, id int, name, artist string) (models.Song, models.Song, error)
	PartialUpdate(ctx context.Context, id int, name, artist *string) (models.Song, error)
	Count(ctx context.Context) int
}
