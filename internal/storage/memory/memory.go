package memory

import (
	"context"
	"fmt"
	"sync"

	"songify/internal/lib/logger/utils"
	"songify/internal/models"
	"songify/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

// IDPolicy selects how Create assigns identifiers.
type IDPolicy string

const (
	// IDPolicySize assigns len(store)+1. After a delete this can reuse, and overwrite, an existing id.
	IDPolicySize IDPolicy = "size"
	// IDPolicyCounter assigns ids from a counter that only ever grows.
	IDPolicyCounter IDPolicy = "counter"
)

func ParseIDPolicy(s string) (IDPolicy, error) {
	switch p := IDPolicy(s); p {
	case IDPolicySize, IDPolicyCounter:
		return p, nil
	case "":
		return IDPolicyCounter, nil
	default:
		return "", fmt.Errorf("unknown id policy %q", s)
	}
}

// DefaultSongs are the entries a fresh process starts with.
func DefaultSongs() map[int]models.Song {
	return map[int]models.Song{
		1: {Name: "Bring Me The Horizon", Artist: "Korn"},
		2: {Name: "Fall Out Boy", Artist: "Linkin Park"},
		3: {Name: "A Day To Remember", Artist: "System of a Down"},
		4: {Name: "Several Species", Artist: "Pink Floyd"},
	}
}

// Storage is an in-memory SongStorage. A single RWMutex guards the whole mapping.
type Storage struct {
	mu     sync.RWMutex
	songs  map[int]models.Song
	policy IDPolicy
	lastID int
}

func NewStorage(policy IDPolicy, seed map[int]models.Song) *Storage {
	s := &Storage{
		songs:  make(map[int]models.Song, len(seed)),
		policy: policy,
	}
	for id, song := range seed {
		s.songs[id] = song
		if id > s.lastID {
			s.lastID = id
		}
	}
	return s
}

var _ storage.SongStorage = (*Storage)(nil)

func (s *Storage) List(ctx context.Context, limit *int) map[int]models.Song {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit == nil || *limit >= len(s.songs) {
		return maps.Clone(s.songs)
	}

	result := make(map[int]models.Song, max(*limit, 0))
	if *limit <= 0 {
		return result
	}
	for id, song := range s.songs {
		result[id] = song
		if len(result) == *limit {
			break
		}
	}
	return result
}

func (s *Storage) Get(ctx context.Context, id int) (models.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	song, ok := s.songs[id]
	if !ok {
		return models.Song{}, &storage.NotFoundError{ID: id}
	}
	return song, nil
}

func (s *Storage) Create(ctx context.Context, song models.Song) (int, models.Song) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id int
	switch s.policy {
	case IDPolicySize:
		id = len(s.songs) + 1
		if existing, ok := s.songs[id]; ok {
			utils.Logger.Warn("memory.Storage.Create - id already taken, overwriting",
				zap.Int("id", id), zap.String("name", existing.Name), zap.String("artist", existing.Artist))
		}
	default:
		s.lastID++
		id = s.lastID
	}
	if id > s.lastID {
		s.lastID = id
	}

	s.songs[id] = song
	return id, song
}

func (s *Storage) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.songs[id]; !ok {
		return &storage.NotFoundError{ID: id}
	}
	delete(s.songs, id)
	return nil
}

func (s *Storage) Replace(ctx context.Context, id int, name, artist string) (models.Song, models.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.songs[id]
	if !ok {
		return models.Song{}, models.Song{}, &storage.NotFoundError{ID: id}
	}
	song := models.Song{Name: name, Artist: artist}
	s.songs[id] = song
	return old, song, nil
}

func (s *Storage) PartialUpdate(ctx context.Context, id int, name, artist *string) (models.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.songs[id]
	if !ok {
		return models.Song{}, &storage.NotFoundError{ID: id}
	}
	merged := models.MergeSong(old, name, artist)
	s.songs[id] = merged
	return merged, nil
}

func (s *Storage) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.songs)
}
