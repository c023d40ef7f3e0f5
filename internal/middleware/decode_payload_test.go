package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/thinkbox/internal/middleware"
	"github.com/ferdiebergado/thinkbox/internal/pagerank"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
	"github.com/ferdiebergado/thinkbox/internal/tictactoe"
	"github.com/google/go-cmp/cmp"
)

func TestDecodePayload_TicTacToeMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   string
		limit     int64
		wantCode  int
		wantBoard [][]string
	}{
		{
			name:      "board",
			payload:   `{"board":[["X","",""],["","O",""],["","",""]]}`,
			limit:     1024,
			wantCode:  http.StatusOK,
			wantBoard: [][]string{{"X", "", ""}, {"", "O", ""}, {"", "", ""}},
		},
		{"larger than the limit", `{"board":[["X","",""],["","O",""],["","",""]]}`, 16, http.StatusRequestEntityTooLarge, nil},
		{"unknown field", `{"board":[["","",""],["","",""],["","",""]],"player":"O"}`, 1024, http.StatusUnprocessableEntity, nil},
		{"two boards", `{"board":[]}{"board":[]}`, 1024, http.StatusBadRequest, nil},
		{"board is a string", `{"board":"X........"}`, 1024, http.StatusBadRequest, nil},
		{"cell is a number", `{"board":[[1,"",""],["","",""],["","",""]]}`, 1024, http.StatusBadRequest, nil},
		{"truncated", `{"board":[["X"`, 1024, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got *tictactoe.MoveRequest
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				req, err := web.ParamsFromContext[tictactoe.MoveRequest](r.Context())
				if err != nil {
					t.Errorf("ParamsFromContext() error = %v", err)
				}
				got = &req
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/tictactoe/move", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[tictactoe.MoveRequest](tt.limit)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}

			if tt.wantBoard == nil {
				if got != nil {
					t.Error("handler ran for a rejected payload")
				}
				return
			}

			if got == nil {
				t.Fatal("handler did not run")
			}
			if diff := cmp.Diff(tt.wantBoard, got.Board); diff != "" {
				t.Errorf("board mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodePayload_PageRankCorpus(t *testing.T) {
	t.Parallel()

	payload := `{"pages":{"1.html":["2.html"],"2.html":[]},"damping":0.5,"method":"iterate"}`

	var got pagerank.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = web.ParamsFromContext[pagerank.Request](r.Context())
		if err != nil {
			t.Errorf("ParamsFromContext() error = %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/pagerank", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	middleware.DecodePayload[pagerank.Request](1024)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("rec.Code = %d, want: %d", rec.Code, http.StatusOK)
	}

	damping := 0.5
	want := pagerank.Request{
		Pages:   map[string][]string{"1.html": {"2.html"}, "2.html": {}},
		Damping: &damping,
		Method:  pagerank.MethodIterate,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}
