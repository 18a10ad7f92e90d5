package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"songify/internal/api"
	"songify/internal/api/handlers/songs"
	"songify/internal/metrics"
	"songify/internal/models"
	"songify/internal/service"
	"songify/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T, policy memory.IDPolicy, seed map[int]models.Song) *httptest.Server {
	store := memory.NewStorage(policy, seed)
	songService := service.NewSongService(store)
	m := metrics.New(func() int { return songService.CountSongs(context.Background()) })

	server := httptest.NewServer(api.NewRouter(songs.NewSongHandlers(songService), m))
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, method, url, body string) (int, []byte) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestSongsLifecycle(t *testing.T) {
	server := setupServer(t, memory.IDPolicyCounter, memory.DefaultSongs())

	status, body := doRequest(t, "GET", server.URL+"/songs", "")
	require.Equal(t, http.StatusOK, status)
	var all models.GetAllSongsResponse
	require.NoError(t, json.Unmarshal(body, &all))
	assert.Len(t, all.Songs, 4)
	assert.Equal(t, models.Song{Name: "Several Species", Artist: "Pink Floyd"}, all.Songs[4])

	status, body = doRequest(t, "GET", server.URL+"/songs?limit=2", "")
	require.Equal(t, http.StatusOK, status)
	var limited models.GetAllSongsResponse
	require.NoError(t, json.Unmarshal(body, &limited))
	assert.Len(t, limited.Songs, 2)
	for id, song := range limited.Songs {
		assert.Equal(t, all.Songs[id], song)
	}

	status, body = doRequest(t, "POST", server.URL+"/songs", `{"songName":"Toxicity","artist":"System of a Down"}`)
	require.Equal(t, http.StatusOK, status)
	var created models.CreateSongResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 5, created.ID)

	status, body = doRequest(t, "GET", fmt.Sprintf("%s/songs/%d", server.URL, created.ID), "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"song":{"name":"Toxicity","artist":"System of a Down"}}`, string(body))

	status, body = doRequest(t, "PUT", server.URL+"/songs/5", `{"songName":"Chop Suey","artist":"SOAD"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"newSongName":"Chop Suey","newArtist":"SOAD"}`, string(body))

	status, body = doRequest(t, "PATCH", server.URL+"/songs/5", `{"artist":"System of a Down"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"updatedSong":{"name":"Chop Suey","artist":"System of a Down"}}`, string(body))

	status, body = doRequest(t, "DELETE", server.URL+"/songs/5", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"You deleted song with id: 5","status":200}`, string(body))

	status, body = doRequest(t, "DELETE", server.URL+"/songs/5", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"song with id: 5 not found","status":404}`, string(body))

	status, _ = doRequest(t, "GET", server.URL+"/songs/5", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNotFoundAcrossOperations(t *testing.T) {
	server := setupServer(t, memory.IDPolicyCounter, memory.DefaultSongs())

	requests := []struct {
		method string
		body   string
	}{
		{method: "GET"},
		{method: "PUT", body: `{"songName":"a","artist":"b"}`},
		{method: "PATCH", body: `{"songName":"a"}`},
		{method: "DELETE"},
	}
	for _, r := range requests {
		t.Run(r.method, func(t *testing.T) {
			status, body := doRequest(t, r.method, server.URL+"/songs/42", r.body)
			assert.Equal(t, http.StatusNotFound, status)
			assert.JSONEq(t, `{"message":"song with id: 42 not found","status":404}`, string(body))
		})
	}
}

func TestCreateAfterDelete_SizePolicy(t *testing.T) {
	server := setupServer(t, memory.IDPolicySize, map[int]models.Song{
		1: {Name: "A", Artist: "B"},
		2: {Name: "C", Artist: "D"},
	})

	status, _ := doRequest(t, "DELETE", server.URL+"/songs/1", "")
	require.Equal(t, http.StatusOK, status)

	status, body := doRequest(t, "POST", server.URL+"/songs", `{"songName":"G","artist":"H"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":2,"song":{"name":"G","artist":"H"}}`, string(body))

	status, body = doRequest(t, "GET", server.URL+"/songs", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"songs":{"2":{"name":"G","artist":"H"}}}`, string(body))
}

func TestValidationRejectsBlankFields(t *testing.T) {
	server := setupServer(t, memory.IDPolicyCounter, memory.DefaultSongs())

	status, _ := doRequest(t, "POST", server.URL+"/songs", `{"songName":"","artist":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, "PUT", server.URL+"/songs/1", `{"songName":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := doRequest(t, "GET", server.URL+"/songs/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"song":{"name":"Bring Me The Horizon","artist":"Korn"}}`, string(body))
}

func TestAmbientEndpoints(t *testing.T) {
	server := setupServer(t, memory.IDPolicyCounter, memory.DefaultSongs())

	status, body := doRequest(t, "GET", server.URL+"/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", string(body))

	doRequest(t, "GET", server.URL+"/songs/1", "")
	status, body = doRequest(t, "GET", server.URL+"/metrics", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "songify_songs_stored 4")
	assert.Contains(t, string(body), `songify_http_requests_total{method="GET",route="/songs/{id}",status="200"} 1`)

	status, body = doRequest(t, "GET", server.URL+"/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "/songs/{id}")
}

func TestRequestIDEchoed(t *testing.T) {
	server := setupServer(t, memory.IDPolicyCounter, memory.DefaultSongs())

	req, err := http.NewRequest("GET", server.URL+"/songs/1", nil)
	require.NoError(t, err)
	req.Header.Set("requestId", "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}
