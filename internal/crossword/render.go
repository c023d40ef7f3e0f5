package crossword

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/google/renameio/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Blocked is drawn for blocked cells in text output.
const Blocked = "█"

const (
	cellSize   = 100
	cellBorder = 2
	glyphScale = 6
)

// LetterGrid lays the words of a onto the grid. Cells without a letter are "".
func (c *Crossword) LetterGrid(a Assignment) [][]string {
	grid := make([][]string, c.Height)
	for i := range grid {
		grid[i] = make([]string, c.Width)
	}

	for v, w := range a {
		letters := []rune(w)
		for k, cell := range v.Cells() {
			if k < len(letters) {
				grid[cell.I][cell.J] = string(letters[k])
			}
		}
	}
	return grid
}

// Lines renders a as text, one string per row.
func (c *Crossword) Lines(a Assignment) []string {
	letters := c.LetterGrid(a)
	lines := make([]string, c.Height)

	var sb strings.Builder
	for i := range c.Height {
		sb.Reset()
		for j := range c.Width {
			switch {
			case !c.Structure[i][j]:
				sb.WriteString(Blocked)
			case letters[i][j] == "":
				sb.WriteByte(' ')
			default:
				sb.WriteString(letters[i][j])
			}
		}
		lines[i] = sb.String()
	}
	return lines
}

// Render writes a as text to w.
func (c *Crossword) Render(w io.Writer, a Assignment) error {
	for _, line := range c.Lines(a) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("render crossword: %w", err)
		}
	}
	return nil
}

// Image draws a on a black canvas with white open cells and a centred
// letter in every filled cell.
func (c *Crossword) Image(a Assignment) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width*cellSize, c.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	glyph := image.NewRGBA(image.Rect(0, 0, face.Advance, face.Height))
	glyphW, glyphH := face.Advance*glyphScale, face.Height*glyphScale

	letters := c.LetterGrid(a)
	for i := range c.Height {
		for j := range c.Width {
			if !c.Structure[i][j] {
				continue
			}

			cell := image.Rect(
				j*cellSize+cellBorder, i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder, (i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)

			if letters[i][j] == "" {
				continue
			}

			draw.Draw(glyph, glyph.Bounds(), image.Transparent, image.Point{}, draw.Src)
			d := font.Drawer{
				Dst:  glyph,
				Src:  image.NewUniform(color.Black),
				Face: face,
				Dot:  fixed.P(0, face.Ascent),
			}
			d.DrawString(letters[i][j])

			origin := cell.Min.Add(image.Pt((cell.Dx()-glyphW)/2, (cell.Dy()-glyphH)/2))
			target := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(glyphW, glyphH))}
			xdraw.NearestNeighbor.Scale(img, target, glyph, glyph.Bounds(), xdraw.Over, nil)
		}
	}
	return img
}

// EncodePNG writes a as a PNG image to w.
func (c *Crossword) EncodePNG(w io.Writer, a Assignment) error {
	if err := png.Encode(w, c.Image(a)); err != nil {
		return fmt.Errorf("encode crossword png: %w", err)
	}
	return nil
}

// SavePNG writes a as a PNG image to path. The file is replaced atomically.
func (c *Crossword) SavePNG(path string, a Assignment) error {
	f, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Cleanup() //nolint:errcheck //Cleanup is a no-op once the file is replaced.

	if err := c.EncodePNG(f, a); err != nil {
		return err
	}

	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
