package racer

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Skin draws an entity into a cell-aligned area of the screen.
// A skin is either a loaded sprite or a solid fallback fill.
type Skin interface {
	Draw(dst *core.Screen, clip CellRect, area CellRect)
}

// SpriteSkin is a text-art sprite scaled onto the entity's cells.
type SpriteSkin struct {
	Lines []string
	Color core.Color
}

// FillSkin paints every cell with one rune.
type FillSkin struct {
	Rune  rune
	Color core.Color
}

// Skins holds the appearance of each entity kind.
type Skins struct {
	Player   Skin
	Obstacle Skin
	Coin     Skin
}

// DefaultSkins returns solid fills in the given colors.
func DefaultSkins(player, obstacle, coin core.Color) Skins {
	return Skins{
		Player:   FillSkin{Rune: '█', Color: player},
		Obstacle: FillSkin{Rune: '▓', Color: obstacle},
		Coin:     FillSkin{Rune: '●', Color: coin},
	}
}

// ResolveSkin loads a sprite from path. When path is empty or the file
// cannot be read, the fallback fill is returned along with the load error.
func ResolveSkin(path string, fallback FillSkin) (Skin, error) {
	if path == "" {
		return fallback, nil
	}
	lines, err := loadSprite(path)
	if err != nil {
		return fallback, err
	}
	return SpriteSkin{Lines: lines, Color: fallback.Color}, nil
}

func loadSprite(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("racer: cannot open sprite: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("racer: cannot read sprite: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("racer: sprite %s is empty", path)
	}
	return lines, nil
}

// Draw implements Skin.
func (f FillSkin) Draw(dst *core.Screen, clip CellRect, area CellRect) {
	area.each(clip, func(x, y, _, _ int) {
		dst.SetColored(x, y, f.Rune, f.Color)
	})
}

// Draw implements Skin. The sprite is sampled nearest-neighbor to fit the
// area; spaces in the sprite are transparent.
func (s SpriteSkin) Draw(dst *core.Screen, clip CellRect, area CellRect) {
	rows := len(s.Lines)
	area.each(clip, func(x, y, col, row int) {
		line := []rune(s.Lines[row*rows/area.H])
		if len(line) == 0 {
			return
		}
		r := line[col*len(line)/area.W]
		if r == ' ' {
			return
		}
		dst.SetColored(x, y, r, s.Color)
	})
}

// CellRect is an integer rectangle in screen cells.
type CellRect struct {
	X, Y, W, H int
}

// each calls fn for every cell of r that lies inside clip, passing the
// screen position and the offset within r.
func (r CellRect) each(clip CellRect, fn func(x, y, col, row int)) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	for row := 0; row < r.H; row++ {
		y := r.Y + row
		if y < clip.Y || y >= clip.Y+clip.H {
			continue
		}
		for col := 0; col < r.W; col++ {
			x := r.X + col
			if x < clip.X || x >= clip.X+clip.W {
				continue
			}
			fn(x, y, col, row)
		}
	}
}
