// Renders a rotational 2D vector field, handing vectors to gg through
// the foreign-struct interop (gg.Point is a plain {X, Y float64}).
package main

import (
	"log"

	"github.com/fogleman/gg"

	"github.com/humz2k/hqvec"
)

const (
	size    = 512
	step    = 32
	arrowLn = 12.0
)

func main() {
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	center := hqvec.V2(float64(size)/2, float64(size)/2)

	dc.SetRGB(0.1, 0.1, 0.6)
	dc.SetLineWidth(1.5)
	for yi := step; yi < size; yi += step {
		for xi := step; xi < size; xi += step {
			pos := hqvec.V2(float64(xi), float64(yi))
			rel := pos.Sub(center)
			if rel.SquaredNorm() == 0 {
				continue
			}

			// field v(p) = perpendicular of (p - center), unit length
			dir := hqvec.V2(-rel.Y, rel.X).DivScalar(rel.Norm()).MulScalar(arrowLn)

			from := hqvec.ToXY[gg.Point](pos)
			to := hqvec.ToXY[gg.Point](pos.Add(dir))
			dc.DrawLine(from.X, from.Y, to.X, to.Y)
			dc.Stroke()

			tip := hqvec.FromXY(to)
			dc.DrawCircle(tip.X, tip.Y, 1.8)
			dc.Fill()
		}
	}

	if err := dc.SavePNG("field.png"); err != nil {
		log.Fatal(err)
	}
}
