// Package shaders embeds the GLSL sources for the dial render passes.
package shaders

import _ "embed"

var (
	//go:embed dial.vert
	DialVertex string

	//go:embed dial.frag
	DialFragment string

	//go:embed depth.vert
	DepthVertex string

	//go:embed depth.frag
	DepthFragment string
)
