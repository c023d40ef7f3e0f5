package crossword_test

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ferdiebergado/thinkbox/internal/crossword"
	"github.com/google/go-cmp/cmp"
)

var squareSolution = crossword.Assignment{down00: "CAT", across00: "COW", down02: "WIN", across20: "TAN"}

func TestCrossword_LetterGrid(t *testing.T) {
	t.Parallel()

	cw := newCrossword(t, square)

	got := cw.LetterGrid(crossword.Assignment{down00: "CAT"})
	want := [][]string{
		{"C", "", ""},
		{"A", "", ""},
		{"T", "", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LetterGrid() mismatch (-want +got):\n%s", diff)
	}

	got = cw.LetterGrid(crossword.Assignment{across00: "ÉTÉ"})
	want = [][]string{
		{"É", "T", "É"},
		{"", "", ""},
		{"", "", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LetterGrid() of accented word mismatch (-want +got):\n%s", diff)
	}
}

func TestCrossword_Render(t *testing.T) {
	t.Parallel()

	cw := newCrossword(t, square)

	tests := []struct {
		name string
		a    crossword.Assignment
		want string
	}{
		{
			name: "solved",
			a:    squareSolution,
			want: "COW\nA█I\nTAN\n",
		},
		{
			name: "partial leaves blanks",
			a:    crossword.Assignment{across00: "COW"},
			want: "COW\n █ \n   \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := cw.Render(&buf, tt.a); err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCrossword_SavePNG(t *testing.T) {
	t.Parallel()

	cw := newCrossword(t, square)
	path := filepath.Join(t.TempDir(), "square.png")

	if err := cw.SavePNG(path, squareSolution); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	if got := img.Bounds().Size(); got.X != 300 || got.Y != 300 {
		t.Fatalf("image size = %v, want: 300x300", got)
	}

	white := color.RGBAModel.Convert(color.White)
	black := color.RGBAModel.Convert(color.Black)

	pixels := []struct {
		name string
		x, y int
		want color.Color
	}{
		{name: "border", x: 0, y: 0, want: black},
		{name: "open cell corner", x: 5, y: 5, want: white},
		{name: "blocked cell", x: 150, y: 150, want: black},
	}
	for _, p := range pixels {
		if got := color.RGBAModel.Convert(img.At(p.x, p.y)); got != p.want {
			t.Errorf("%s pixel = %v, want: %v", p.name, got, p.want)
		}
	}

	dark := 0
	for y := 2; y < 98; y++ {
		for x := 2; x < 98; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == black {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("first cell has no letter drawn")
	}
}
