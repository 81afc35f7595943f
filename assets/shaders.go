package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader blends the player sprite toward the damage flash color.
	TintShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if TintShader != nil {
		return nil
	}

	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return fmt.Errorf("reading tint shader: %w", err)
	}
	TintShader, err = ebiten.NewShader(tintSrc)
	if err != nil {
		return fmt.Errorf("compiling tint shader: %w", err)
	}

	return nil
}
