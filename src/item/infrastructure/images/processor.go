package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// Processor redimensiona imágenes de items y las guarda en disco.
// Las imágenes quedan en baseDir y se sirven estáticamente bajo /images.
type Processor struct {
	baseDir string
}

// NewProcessor crea un procesador que escribe en baseDir (se crea si no existe)
func NewProcessor(baseDir string) (*Processor, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating images dir: %w", err)
	}
	return &Processor{baseDir: baseDir}, nil
}

// Save redimensiona la imagen a 800x800, la guarda como JPEG (calidad 80)
// y retorna la ruta pública (/images/<archivo>)
func (p *Processor) Save(src io.Reader, nombre string) (string, error) {
	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("error decoding image: %w", err)
	}

	resized := imaging.Resize(img, 800, 800, imaging.Lanczos)

	imageName := fmt.Sprintf("%d_%s.jpg", time.Now().UnixMilli(), sanitize(nombre))
	fullPath := filepath.Join(p.baseDir, imageName)

	if err := imaging.Save(resized, fullPath, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("error saving image: %w", err)
	}

	return "/images/" + imageName, nil
}

// sanitize limpia el nombre para usarlo en el nombre del archivo
func sanitize(nombre string) string {
	nombre = strings.TrimSpace(nombre)
	nombre = strings.ReplaceAll(nombre, " ", "_")
	nombre = strings.ReplaceAll(nombre, string(filepath.Separator), "_")
	return nombre
}
