package service

import (
	"context"
	"fmt"
	"songify/internal/lib/logger/utils"
	"songify/internal/models"
	"songify/internal/storage"

	"go.uber.org/zap"
)

type SongService struct {
	storage storage.SongStorage
}

func NewSongService(storage storage.SongStorage) *SongService {
	return &SongService{
		storage: storage,
	}
}

// GetSongs returns every song, or at most *limit of them when limit is set.
func (s *SongService) GetSongs(ctx context.Context, limit *int) map[int]models.Song {
	if limit != nil {
		utils.Logger.Debug("SongService.GetSongs", zap.Int("limit", *limit))
	} else {
		utils.Logger.Debug("SongService.GetSongs")
	}
	return s.storage.List(ctx, limit)
}

func (s *SongService) GetSong(ctx context.Context, id int) (models.Song, error) {
	utils.Logger.Debug("SongService.GetSong", zap.Int("id", id))

	song, err := s.storage.Get(ctx, id)
	if err != nil {
		return models.Song{}, fmt.Errorf("SongService.GetSong - storage.Get failed: %w", err)
	}
	return song, nil
}

func (s *SongService) AddSong(ctx context.Context, req *models.CreateSongRequest) (int, models.Song) {
	song := req.ToSong()
	utils.Logger.Info("SongService.AddSong - adding new song", zap.String("name", song.Name), zap.String("artist", song.Artist))

	id, added := s.storage.Create(ctx, song)

	utils.Logger.Info("SongService.AddSong - song added", zap.Int("song_id", id))
	return id, added
}

// DeleteSong removes the song and returns a confirmation message for the caller.
func (s *SongService) DeleteSong(ctx context.Context, id int) (string, error) {
	utils.Logger.Debug("SongService.DeleteSong", zap.Int("id", id))

	if err := s.storage.Delete(ctx, id); err != nil {
		return "", fmt.Errorf("SongService.DeleteSong - storage.Delete failed: %w", err)
	}
	utils.Logger.Info("SongService.DeleteSong - song deleted", zap.Int("song_id", id))
	return fmt.Sprintf("You deleted song with id: %d", id), nil
}

func (s *SongService) UpdateSong(ctx context.Context, id int, req *models.UpdateSongRequest) (models.Song, error) {
	utils.Logger.Debug("SongService.UpdateSong", zap.Int("id", id), zap.String("name", req.SongName), zap.String("artist", req.Artist))

	old, updated, err := s.storage.Replace(ctx, id, req.SongName, req.Artist)
	if err != nil {
		return models.Song{}, fmt.Errorf("SongService.UpdateSong - storage.Replace failed: %w", err)
	}
	utils.Logger.Info("SongService.UpdateSong - song updated",
		zap.Int("song_id", id),
		zap.String("old_name", old.Name), zap.String("new_name", updated.Name),
		zap.String("old_artist", old.Artist), zap.String("new_artist", updated.Artist),
	)
	return updated, nil
}

func (s *SongService) PartiallyUpdateSong(ctx context.Context, id int, req *models.PartiallyUpdateSongRequest) (models.Song, error) {
	utils.Logger.Debug("SongService.PartiallyUpdateSong", zap.Int("id", id))

	updated, err := s.storage.PartialUpdate(ctx, id, req.SongName, req.Artist)
	if err != nil {
		return models.Song{}, fmt.Errorf("SongService.PartiallyUpdateSong - storage.PartialUpdate failed: %w", err)
	}
	if req.SongName != nil {
		utils.Logger.Info("SongService.PartiallyUpdateSong - partially updated song name", zap.Int("song_id", id))
	}
	if req.Artist != nil {
		utils.Logger.Info("SongService.PartiallyUpdateSong - partially updated artist", zap.Int("song_id", id))
	}
	return updated, nil
}

func (s *SongService) CountSongs(ctx context.Context) int {
	return s.storage.Count(ctx)
}
