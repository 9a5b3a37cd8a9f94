package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/pkg/api"
)

func roomJSON(id string, number int) api.RoomDTO {
	return api.RoomDTO{
		ID:         id,
		PropertyID: "hotel-1",
		Kind:       models.RoomKindStandard,
		Occupancy:  "vacant",
		Cleaning:   "clean",
		Number:     number,
		Floor:      number / 100,
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080")

	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.Nil(t, client.tokenSource)

	authed := client.WithAccessToken("tok")
	require.NotNil(t, authed.tokenSource)
	token, err := authed.tokenSource(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Nil(t, client.tokenSource, "original client is not modified")
}

func TestClient_RedirectAuthorization(t *testing.T) {
	checkRedirect := NewClient("http://hotel.example").httpClient.CheckRedirect

	first := httptest.NewRequest(http.MethodGet, "http://hotel.example:8080/api/v1/properties/hotel-1/rooms", nil)
	first.Header.Set("Authorization", "Bearer access-token")

	tests := []struct {
		name     string
		target   string
		wantAuth string
	}{
		{name: "same host", target: "http://hotel.example:8080/api/v1/properties/hotel-1/rooms/", wantAuth: "Bearer access-token"},
		{name: "other host", target: "http://cdn.example:8080/rooms"},
		{name: "same hostname other port", target: "http://hotel.example:9090/rooms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := httptest.NewRequest(http.MethodGet, tt.target, nil)
			require.NoError(t, checkRedirect(next, []*http.Request{first}))
			assert.Equal(t, tt.wantAuth, next.Header.Get("Authorization"))
		})
	}

	via := make([]*http.Request, 10)
	for i := range via {
		via[i] = first
	}
	assert.Error(t, checkRedirect(httptest.NewRequest(http.MethodGet, "http://hotel.example:8080/", nil), via))
}

func TestClient_RedirectSameHostKeepsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/properties/hotel-1/rooms" {
			http.Redirect(w, r, "/moved/rooms", http.StatusTemporaryRedirect)
			return
		}
		assert.Equal(t, "/moved/rooms", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, api.RoomListResponse{Rooms: []api.RoomDTO{roomJSON("r1", 101)}})
	}))
	defer server.Close()

	rooms, err := NewClient(server.URL).WithAccessToken("access-token").ListRooms(context.Background(), "hotel-1")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
}

func TestClient_TokenSourceCalledPerRequest(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := 0
	client := NewClient(server.URL).WithTokenSource(func(ctx context.Context) (string, error) {
		n++
		return fmt.Sprintf("tok-%d", n), nil
	})

	require.NoError(t, client.DeleteRoom(context.Background(), "r1"))
	require.NoError(t, client.DeleteRoom(context.Background(), "r2"))
	assert.Equal(t, []string{"Bearer tok-1", "Bearer tok-2"}, seen)
}

func TestClient_TokenSourceError(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	noSession := errors.New("not logged in")
	client := NewClient(server.URL).WithTokenSource(func(ctx context.Context) (string, error) {
		return "", noSession
	})

	err := client.DeleteRoom(context.Background(), "r1")
	assert.ErrorIs(t, err, noSession)
	assert.False(t, called, "request is not sent without a token")
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "maria", req.Username)
		assert.Equal(t, "s3cretpass", req.Password)

		writeJSON(t, w, http.StatusCreated, api.RegisterResponse{UserID: "user-123", Message: "User registered successfully"})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Register(context.Background(), api.RegisterRequest{Username: "maria", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.UserID)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		body       any
		target     error
		name       string
		wantMsg    string
		statusCode int
	}{
		{
			name:       "conflict with message",
			statusCode: http.StatusConflict,
			body:       api.ErrorResponse{Error: "conflict", Message: "user already exists"},
			target:     ErrConflict,
			wantMsg:    "server error (409): user already exists",
		},
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       api.ErrorResponse{Error: "unauthorized"},
			target:     ErrUnauthorized,
			wantMsg:    "server error (401): unauthorized",
		},
		{
			name:       "plain text 404",
			statusCode: http.StatusNotFound,
			body:       "404 page not found",
			target:     ErrNotFound,
			wantMsg:    "server error (404): 404 page not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if s, ok := tt.body.(string); ok {
					w.WriteHeader(tt.statusCode)
					_, _ = w.Write([]byte(s + "\n"))
					return
				}
				writeJSON(t, w, tt.statusCode, tt.body)
			}))
			defer server.Close()

			err := NewClient(server.URL).DeleteRoom(context.Background(), "room-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.statusCode, statusErr.Code)
		})
	}
}

func TestClient_ListRooms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/properties/hotel-1/rooms", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, api.RoomListResponse{
			Rooms: []api.RoomDTO{roomJSON("r1", 101), roomJSON("r2", 102)},
		})
	}))
	defer server.Close()

	rooms, err := NewClient(server.URL).WithAccessToken("access-token").ListRooms(context.Background(), "hotel-1")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "r1", rooms[0].ID)
	assert.Equal(t, 102, rooms[1].Number)
	assert.Equal(t, models.CleaningClean, rooms[1].Cleaning)
}

func TestClient_ListRooms_RejectsUnexpectedShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown field",
			body: `{"rooms":[],"next_page":"abc"}`,
		},
		{
			name: "unknown room field",
			body: `{"rooms":[{"id":"r1","property_id":"h","occupancy":"vacant","cleaning":"clean","number":1,"floor":0,"flagged":false,"kind":"","notes":"","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z","colour":"red"}]}`,
		},
		{
			name: "invalid status",
			body: `{"rooms":[{"id":"r1","property_id":"h","occupancy":"booked","cleaning":"clean","number":1}]}`,
		},
		{
			name: "wrong type",
			body: `{"rooms":[{"id":"r1","number":"one"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL).ListRooms(context.Background(), "h")
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestClient_CreateRoom(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/properties/hotel-1/rooms", r.URL.Path)

		var req api.CreateRoomRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 205, req.Number)

		writeJSON(t, w, http.StatusCreated, roomJSON("real-id", req.Number))
	}))
	defer server.Close()

	room, err := NewClient(server.URL).CreateRoom(context.Background(), "hotel-1", api.CreateRoomRequest{
		Number: 205, Floor: 2, Occupancy: "vacant", Cleaning: "clean",
	})
	require.NoError(t, err)
	assert.Equal(t, "real-id", room.ID)
	assert.Equal(t, 205, room.Number)
}

func TestClient_CreateRoom_EmptyIDIsInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, roomJSON("", 205))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).CreateRoom(context.Background(), "hotel-1", api.CreateRoomRequest{Number: 205})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_UpdateRoom(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/rooms/r1", r.URL.Path)

		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, map[string]any{"occupancy": "occupied"}, patch, "nil fields are omitted")

		dto := roomJSON("r1", 101)
		dto.Occupancy = "occupied"
		writeJSON(t, w, http.StatusOK, dto)
	}))
	defer server.Close()

	occupied := "occupied"
	room, err := NewClient(server.URL).UpdateRoom(context.Background(), "r1", api.RoomPatch{Occupancy: &occupied})
	require.NoError(t, err)
	assert.Equal(t, models.OccupancyOccupied, room.Occupancy)
}

func TestClient_DeleteAndRestore(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPost:
			writeJSON(t, w, http.StatusOK, roomJSON("r1", 101))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.DeleteRoom(context.Background(), "r1"))
	room, err := client.RestoreRoom(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", room.ID)

	assert.Equal(t, []string{"DELETE /api/v1/rooms/r1", "POST /api/v1/rooms/r1/restore"}, calls)
}

func TestClient_History(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/history":
			var req api.HistoryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, api.HistoryRequest{ActorID: "u1", EntityID: "r1", Action: "delete"}, req)
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/rooms/r1/history":
			writeJSON(t, w, http.StatusOK, api.HistoryListResponse{Entries: []api.HistoryEntryDTO{
				{CreatedAt: created, ID: "h1", ActorID: "u1", EntityID: "r1", Action: "delete"},
			}})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.RecordHistory(context.Background(), "u1", "r1", "delete"))

	entries, err := client.ListHistory(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "h1", entries[0].ID)
	assert.True(t, created.Equal(entries[0].CreatedAt))
}

func TestClient_LoginRefreshLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login", "/api/v1/auth/refresh":
			writeJSON(t, w, http.StatusOK, api.TokenResponse{
				AccessToken: "access", RefreshToken: "refresh", UserID: "u1", ExpiresIn: 900,
			})
		case "/api/v1/auth/logout":
			var req api.LogoutRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh", req.RefreshToken)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	tokens, err := client.Login(context.Background(), api.LoginRequest{Username: "maria", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u1", tokens.UserID)

	tokens, err = client.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(900), tokens.ExpiresIn)

	assert.NoError(t, client.Logout(context.Background(), "refresh"))
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL).ListRooms(ctx, "hotel-1")
	assert.ErrorIs(t, err, context.Canceled)
}
