// internal/models/song.go
package models

// Song is an immutable name/artist pair. Its identity is the key it is stored under.
type Song struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
}

type CreateSongRequest struct {
	SongName string `json:"songName"`
	Artist   string `json:"artist"`
}

type UpdateSongRequest struct {
	SongName string `json:"songName"`
	Artist   string `json:"artist"`
}

// PartiallyUpdateSongRequest carries optional fields; nil means "keep the stored value".
type PartiallyUpdateSongRequest struct {
	SongName *string `json:"songName"`
	Artist   *string `json:"artist"`
}

type GetAllSongsResponse struct {
	Songs map[int]Song `json:"songs"`
}

type GetSongResponse struct {
	Song Song `json:"song"`
}

type CreateSongResponse struct {
	ID   int  `json:"id"`
	Song Song `json:"song"`
}

type UpdateSongResponse struct {
	NewSongName string `json:"newSongName"`
	NewArtist   string `json:"newArtist"`
}

type PartiallyUpdateSongResponse struct {
	UpdatedSong Song `json:"updatedSong"`
}

type DeleteSongResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (r *CreateSongRequest) ToSong() Song {
	return Song{Name: r.SongName, Artist: r.Artist}
}

func (r *UpdateSongRequest) ToSong() Song {
	return Song{Name: r.SongName, Artist: r.Artist}
}

// MergeSong builds a new Song from old, replacing each field whose override is non-nil.
func MergeSong(old Song, name, artist *string) Song {
	merged := old
	if name != nil {
		merged.Name = *name
	}
	if artist != nil {
		merged.Artist = *artist
	}
	return merged
}
