package evo

// Stub worlds for tests. Coordinates follow the engine's screen convention.

// openWorld is drivable everywhere inside its rectangle.
type openWorld struct {
	w, h int
}

func (o openWorld) InBounds(x, y int) bool {
	return x >= 0 && x < o.w && y >= 0 && y < o.h
}

func (o openWorld) Drivable(x, y int) bool {
	return o.InBounds(x, y)
}

// blockedWorld is in bounds everywhere but drivable nowhere.
type blockedWorld struct {
	w, h int
}

func (b blockedWorld) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

func (b blockedWorld) Drivable(x, y int) bool {
	return false
}

// wallWorld is drivable up to (but excluding) the vertical wall at wallX.
type wallWorld struct {
	w, h  int
	wallX int
}

func (ww wallWorld) InBounds(x, y int) bool {
	return x >= 0 && x < ww.w && y >= 0 && y < ww.h
}

func (ww wallWorld) Drivable(x, y int) bool {
	return ww.InBounds(x, y) && x < ww.wallX
}
