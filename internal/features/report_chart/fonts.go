package report_chart

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Embedded Go fonts keep the output identical on every machine.
var (
	fontsOnce   sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	fontsErr    error
)

func loadFonts() (*truetype.Font, *truetype.Font, error) {
	fontsOnce.Do(func() {
		regularFont, fontsErr = truetype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("failed to parse regular font: %w", fontsErr)
			return
		}
		boldFont, fontsErr = truetype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("failed to parse bold font: %w", fontsErr)
		}
	})
	return regularFont, boldFont, fontsErr
}

// faceSet holds one face per text role, sized in points at the figure DPI.
type faceSet struct {
	title  font.Face
	label  font.Face
	tick   font.Face
	legend font.Face
}

func newFaceSet(dpi float64) (*faceSet, error) {
	regular, bold, err := loadFonts()
	if err != nil {
		return nil, err
	}
	face := func(f *truetype.Font, size float64) font.Face {
		return truetype.NewFace(f, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull})
	}
	return &faceSet{
		title:  face(bold, titleFontSize),
		label:  face(regular, labelFontSize),
		tick:   face(regular, tickFontSize),
		legend: face(regular, legendFontSize),
	}, nil
}

func (fs *faceSet) Close() {
	for _, f := range []font.Face{fs.title, fs.label, fs.tick, fs.legend} {
		if f != nil {
			f.Close()
		}
	}
}
