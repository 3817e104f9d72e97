// Package camera maps screen cells to rays
package camera

import (
	"github.com/lixenwraith/bagel/march"
	"github.com/lixenwraith/bagel/vmath"
)

// Generator produces the ray and shading sensor position for a cell
type Generator interface {
	Ray(col, row int) march.Ray
	Sensor(col, row int) vmath.Vec3F
}

// Orthographic fires one ray per cell straight into the screen along +Z
type Orthographic struct {
	CellOffset float64 // sub-cell sample position, 0.5 is the centre
	Depth      float64 // Z of the image plane
}

func NewOrthographic() *Orthographic {
	return &Orthographic{CellOffset: 0.5}
}

func (o *Orthographic) Ray(col, row int) march.Ray {
	return march.Ray{
		Origin: o.Sensor(col, row),
		Dir:    march.Forward,
	}
}

// Sensor is the cell centre on the image plane
func (o *Orthographic) Sensor(col, row int) vmath.Vec3F {
	return vmath.V3F(float64(col)+o.CellOffset, float64(row)+o.CellOffset, o.Depth)
}
