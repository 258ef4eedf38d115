// Package sources provides the embedded GLSL sources for the simple
// position/color shader.
package sources

import (
	_ "embed"

	"github.com/Faultbox/hellocone/internal/engine/shader"
)

//go:embed es2/simple.vert
var es2Vertex string

//go:embed es2/simple.frag
var es2Fragment string

//go:embed core/simple.vert
var coreVertex string

//go:embed core/simple.frag
var coreFragment string

// Profile names accepted by ForProfile.
const (
	ProfileES2  = "es2"
	ProfileCore = "core"
)

// ES2 returns the GLSL ES 1.00 sources for OpenGL ES contexts.
func ES2() shader.Sources {
	return shader.Sources{Vertex: es2Vertex, Fragment: es2Fragment}
}

// Core returns the GLSL 4.10 core sources for desktop contexts.
func Core() shader.Sources {
	return shader.Sources{Vertex: coreVertex, Fragment: coreFragment}
}

// ForProfile returns the sources for a profile name.
func ForProfile(profile string) (shader.Sources, bool) {
	switch profile {
	case ProfileES2:
		return ES2(), true
	case ProfileCore:
		return Core(), true
	default:
		return shader.Sources{}, false
	}
}
