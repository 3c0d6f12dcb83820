// layout_test.go - Trace geometry tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package main

import "testing"

func TestPanels_StackWithoutOverlap(t *testing.T) {
	top, bottom := panels(SCOPE_WIDTH, SCOPE_HEIGHT)
	if top.y+top.h >= bottom.y {
		t.Fatalf("panels overlap: %+v %+v", top, bottom)
	}
	if bottom.y+bottom.h > SCOPE_HEIGHT {
		t.Fatalf("bottom panel off screen: %+v", bottom)
	}
	if top.w != SCOPE_WIDTH-2*SCOPE_MARGIN {
		t.Fatalf("width = %d", top.w)
	}
}

func TestTracePoints(t *testing.T) {
	r := panel{x: 10, y: 20, w: 100, h: 255}
	pts := tracePoints([]uint8{0, 128, 255}, r)
	if len(pts) != 3 {
		t.Fatalf("len = %d", len(pts))
	}
	if pts[0].x != 10 || pts[2].x != 110 {
		t.Errorf("x span = %v..%v", pts[0].x, pts[2].x)
	}
	if pts[0].y != 275 || pts[2].y != 20 {
		t.Errorf("rails = %v, %v", pts[0].y, pts[2].y)
	}
	if d := pts[1].y - 147; d > 0.01 || d < -0.01 {
		t.Errorf("centre = %v", pts[1].y)
	}
	if tracePoints(nil, r) != nil {
		t.Error("empty data produced points")
	}
}
