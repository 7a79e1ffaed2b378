package gpu

import _ "embed"

// Embedded WGSL shader sources, compiled into the binary at build
// time via go:embed.

//go:embed shaders/grid.wgsl
var gridShaderSource string
