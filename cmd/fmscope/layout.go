// layout.go - Trace geometry

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package main

type panel struct {
	x, y, w, h int
}

type point struct {
	x, y float32
}

// panels splits the screen into two stacked trace areas below their labels.
func panels(width, height int) (top, bottom panel) {
	w := max(1, width-2*SCOPE_MARGIN)
	h := max(1, (height-3*SCOPE_MARGIN)/2-LABEL_HEIGHT)
	top = panel{x: SCOPE_MARGIN, y: SCOPE_MARGIN + LABEL_HEIGHT, w: w, h: h}
	bottom = panel{x: SCOPE_MARGIN, y: top.y + h + SCOPE_MARGIN + LABEL_HEIGHT, w: w, h: h}
	return top, bottom
}

// tracePoints spreads data across the panel width; 0 sits on the bottom
// edge and 255 on the top.
func tracePoints(data []uint8, r panel) []point {
	if len(data) == 0 {
		return nil
	}
	pts := make([]point, len(data))
	step := float32(0)
	if len(data) > 1 {
		step = float32(r.w) / float32(len(data)-1)
	}
	for i, v := range data {
		pts[i] = point{
			x: float32(r.x) + float32(i)*step,
			y: float32(r.y+r.h) - float32(v)/255*float32(r.h),
		}
	}
	return pts
}
