package theme

// Color is a 24 bit terminal foreground color.
type Color struct {
	R, G, B uint8
}

// Theme renders the single column cells of the lane view.
type Theme interface {
	RenderNote(denom int) string
	RenderLongEnd(denom int) string
	RenderInvisible() string
	RenderBomb(damage int) string
	RenderEmpty() string
}
