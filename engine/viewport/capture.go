package viewport

import (
	"fmt"
	"log"

	"github.com/disintegration/imaging"
)

// SaveRender renders a clean frame (no background, grid, attachments or text),
// reads it back and writes it to path. The image format follows the file
// extension. It blocks until the file is written.
func (vp *Viewport) SaveRender(path string) error {
	if !vp.ready {
		return ErrNotReady
	}
	vp.RenderFrame(false)

	img, err := vp.renderer.ReadPixels(vp.width, vp.height)
	if err != nil {
		return fmt.Errorf("read viewport pixels: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save render %q: %w", path, err)
	}
	log.Printf("viewport render saved to: %s", path)
	return nil
}
