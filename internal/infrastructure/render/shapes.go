package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/raymover/internal/domain/entity"
)

// FillBox draws a filled world box
func FillBox(screen *ebiten.Image, cam *Camera, b entity.AABB, clr color.Color) {
	x, y, w, h := cam.RectToScreen(b)
	vector.FillRect(screen, x, y, w, h, clr, false)
}

// StrokeBox draws a world box outline
func StrokeBox(screen *ebiten.Image, cam *Camera, b entity.AABB, clr color.Color) {
	x, y, w, h := cam.RectToScreen(b)
	vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
}

// Cross draws a small x marker at a world point, size in pixels
func Cross(screen *ebiten.Image, cam *Camera, p entity.Vec, size float32, clr color.Color) {
	x, y := cam.ToScreen(p)
	vector.StrokeLine(screen, x-size, y-size, x+size, y+size, 1, clr, false)
	vector.StrokeLine(screen, x-size, y+size, x+size, y-size, 1, clr, false)
}

// Path draws lines between consecutive waypoints, closing the loop when cyclic
func Path(screen *ebiten.Image, cam *Camera, points []entity.Vec, cyclic bool, clr color.Color) {
	for i := 0; i+1 < len(points); i++ {
		line(screen, cam, points[i], points[i+1], clr)
	}
	if cyclic && len(points) > 2 {
		line(screen, cam, points[len(points)-1], points[0], clr)
	}
}

func line(screen *ebiten.Image, cam *Camera, a, b entity.Vec, clr color.Color) {
	x0, y0 := cam.ToScreen(a)
	x1, y1 := cam.ToScreen(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
}
