// internal/api/handlers/songs/songs_handlers.go
package songs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"songify/internal/api/middleware"
	"songify/internal/lib/logger/utils"
	"songify/internal/lib/response"
	"songify/internal/models"
	"songify/internal/service"
	"songify/internal/storage"
)

type SongHandlers struct {
	songService *service.SongService
}

func NewSongHandlers(songService *service.SongService) *SongHandlers {
	return &SongHandlers{
		songService: songService,
	}
}

// @Summary List songs
// @Description Get all songs keyed by id, optionally capped to the first `limit` entries.
// @Tags songs
// @Produce json
// @Param limit query int false "Maximum number of songs to return"
// @Success 200 {object} models.GetAllSongsResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /songs [get]
func (h *SongHandlers) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetSongsHandler called")

	var limit *int
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			utils.Logger.Warn("GetSongsHandler - invalid limit", zap.Error(err), zap.String("limit", limitStr))
			response.Error(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = &parsed
	}

	songs := h.songService.GetSongs(r.Context(), limit)

	response.JSON(w, http.StatusOK, models.GetAllSongsResponse{Songs: songs})
	utils.Logger.Debug("GetSongsHandler - songs retrieved", zap.Int("count", len(songs)))
}

// @Summary Get song by ID
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Param requestId header string false "Caller supplied request id, logged only"
// @Success 200 {object} models.GetSongResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /songs/{id} [get]
func (h *SongHandlers) GetSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetSongHandler called", zap.String("request_id", middleware.GetRequestID(r.Context())))

	id, ok := pathID(w, r, "GetSongHandler")
	if !ok {
		return
	}

	song, err := h.songService.GetSong(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "GetSongHandler", "Failed to get song", id)
		return
	}

	response.JSON(w, http.StatusOK, models.GetSongResponse{Song: song})
}

// @Summary Add a new song
// @Tags songs
// @Accept json
// @Produce json
// @Param body body models.CreateSongRequest true "Song to add"
// @Success 200 {object} models.CreateSongResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /songs [post]
func (h *SongHandlers) AddSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("AddSongHandler called")
	var req models.CreateSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("AddSongHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validateSongFields(req.SongName, req.Artist); msg != "" {
		utils.Logger.Warn("AddSongHandler - validation failed", zap.String("reason", msg))
		response.Error(w, http.StatusBadRequest, msg)
		return
	}

	id, song := h.songService.AddSong(r.Context(), &req)

	response.JSON(w, http.StatusOK, models.CreateSongResponse{ID: id, Song: song})
}

// @Summary Replace song by ID
// @Description Overwrite both fields of an existing song.
// @Tags songs
// @Accept json
// @Produce json
// @Param id path int true "Song ID"
// @Param body body models.UpdateSongRequest true "New song fields"
// @Success 200 {object} models.UpdateSongResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /songs/{id} [put]
func (h *SongHandlers) UpdateSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("UpdateSongHandler called")
	id, ok := pathID(w, r, "UpdateSongHandler")
	if !ok {
		return
	}

	var req models.UpdateSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("UpdateSongHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validateSongFields(req.SongName, req.Artist); msg != "" {
		utils.Logger.Warn("UpdateSongHandler - validation failed", zap.String("reason", msg))
		response.Error(w, http.StatusBadRequest, msg)
		return
	}

	song, err := h.songService.UpdateSong(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, "UpdateSongHandler", "Failed to update song", id)
		return
	}

	response.JSON(w, http.StatusOK, models.UpdateSongResponse{NewSongName: song.Name, NewArtist: song.Artist})
}

// @Summary Partially update song by ID
// @Description Update only the fields present in the body; absent fields keep their stored value.
// @Tags songs
// @Accept json
// @Produce json
// @Param id path int true "Song ID"
// @Param body body models.PartiallyUpdateSongRequest true "Fields to change"
// @Success 200 {object} models.PartiallyUpdateSongResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /songs/{id} [patch]
func (h *SongHandlers) PartiallyUpdateSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("PartiallyUpdateSongHandler called")
	id, ok := pathID(w, r, "PartiallyUpdateSongHandler")
	if !ok {
		return
	}

	var req models.PartiallyUpdateSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("PartiallyUpdateSongHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	song, err := h.songService.PartiallyUpdateSong(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, "PartiallyUpdateSongHandler", "Failed to update song", id)
		return
	}

	response.JSON(w, http.StatusOK, models.PartiallyUpdateSongResponse{UpdatedSong: song})
}

// @Summary Delete song by ID
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} models.DeleteSongResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /songs/{id} [delete]
func (h *SongHandlers) DeleteSongHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("DeleteSongHandler called")
	id, ok := pathID(w, r, "DeleteSongHandler")
	if !ok {
		return
	}

	message, err := h.songService.DeleteSong(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "DeleteSongHandler", "Failed to delete song", id)
		return
	}

	response.JSON(w, http.StatusOK, models.DeleteSongResponse{Message: message, Status: http.StatusOK})
}

func (h *SongHandlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func pathID(w http.ResponseWriter, r *http.Request, handler string) (int, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.Logger.Warn(handler+" - invalid song ID", zap.Error(err), zap.String("id", idStr))
		response.Error(w, http.StatusBadRequest, "Invalid song ID")
		return 0, false
	}
	return id, true
}

// writeServiceError maps not-found to 404 and anything else to 500.
func writeServiceError(w http.ResponseWriter, err error, handler, fallback string, id int) {
	if errors.Is(err, storage.ErrSongNotFound) {
		utils.Logger.Warn(handler+" - song not found", zap.Int("id", id))
		response.Error(w, http.StatusNotFound, (&storage.NotFoundError{ID: id}).Error())
		return
	}
	utils.Logger.Error(handler+" - service call failed", zap.Error(err), zap.Int("id", id))
	response.Error(w, http.StatusInternalServerError, fallback)
}

func validateSongFields(songName, artist string) string {
	switch {
	case strings.TrimSpace(songName) == "" && strings.TrimSpace(artist) == "":
		return "songName and artist must not be blank"
	case strings.TrimSpace(songName) == "":
		return "songName must not be blank"
	case strings.TrimSpace(artist) == "":
		return "artist must not be blank"
	}
	return ""
}
