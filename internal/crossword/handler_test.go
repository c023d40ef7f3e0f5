package crossword_test

import (
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/thinkbox/internal/crossword"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
	"github.com/google/go-cmp/cmp"
)

var squareRows = []string{"___", "_#_", "___"}

func TestHandler_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    any
		canceled  bool
		wantCode  int
		wantLines []string
	}{
		{
			name:     "fills the grid",
			params:   crossword.Request{Structure: squareRows, Words: []string{"cat", "cow", "tan", "win"}},
			wantCode: http.StatusOK,
		},
		{
			name:     "no solution",
			params:   crossword.Request{Structure: squareRows, Words: []string{"cat", "dog"}},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "blank structure",
			params:   crossword.Request{Structure: []string{"", " "}, Words: []string{"cat"}},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "unusable words",
			params:   crossword.Request{Structure: squareRows, Words: []string{"ice cream"}},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "canceled",
			params:   crossword.Request{Structure: squareRows, Words: []string{"cat", "cow", "tan", "win"}},
			canceled: true,
			wantCode: http.StatusGatewayTimeout,
		},
		{
			name:     "missing params",
			params:   nil,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := web.NewContextWithParams(t.Context(), tt.params)
			if tt.canceled {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/crossword", http.NoBody)
			rec := httptest.NewRecorder()

			crossword.NewHandler().Generate(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantCode {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantCode)
			}

			web.AssertContentType(t, res)

			if tt.wantCode != http.StatusOK {
				return
			}

			body := web.DecodeJSONResponse[web.OKResponse[crossword.Response]](t, res)
			if len(body.Data.Entries) != 4 {
				t.Fatalf("len(entries) = %d, want: 4", len(body.Data.Entries))
			}

			a := make(crossword.Assignment, len(body.Data.Entries))
			for _, e := range body.Data.Entries {
				a[e.Variable] = e.Word
			}

			cw := newCrossword(t, "___\n_#_\n___\n", "cat", "cow", "tan", "win")
			if diff := cmp.Diff(cw.Lines(a), body.Data.Lines); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if !crossword.NewCreator(cw).Consistent(a) {
				t.Errorf("entries %v are not consistent", body.Data.Entries)
			}
		})
	}
}

func TestHandler_GeneratePNG(t *testing.T) {
	t.Parallel()

	params := crossword.Request{Structure: squareRows, Words: []string{"cat", "cow", "tan", "win"}}
	ctx := web.NewContextWithParams(t.Context(), params)
	req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/crossword?format=png", http.NoBody)
	rec := httptest.NewRecorder()

	crossword.NewHandler().Generate(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
	}

	if got := res.Header.Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want: %q", got, "image/png")
	}

	if _, err := png.Decode(res.Body); err != nil {
		t.Errorf("png.Decode() error = %v", err)
	}
}
