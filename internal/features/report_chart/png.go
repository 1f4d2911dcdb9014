package report_chart

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
)

const (
	pngSignatureLen = 8
	ihdrChunkLen    = 4 + 4 + 13 + 4 // length, type, data, crc
	metersPerInch   = 0.0254
)

// encodePNG writes img as PNG with a pHYs chunk declaring dpi, so viewers
// and print pipelines see the intended physical size.
func encodePNG(w io.Writer, img image.Image, dpi float64) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return err
	}

	data := buf.Bytes()
	head := pngSignatureLen + ihdrChunkLen
	if len(data) < head || string(data[pngSignatureLen+4:pngSignatureLen+8]) != "IHDR" {
		return fmt.Errorf("unexpected png layout")
	}

	if _, err := w.Write(data[:head]); err != nil {
		return err
	}
	if _, err := w.Write(physChunk(dpi)); err != nil {
		return err
	}
	_, err := w.Write(data[head:])
	return err
}

// physChunk builds a pHYs chunk in pixels per meter.
func physChunk(dpi float64) []byte {
	ppm := uint32(math.Round(dpi / metersPerInch))

	body := make([]byte, 4+9)
	copy(body[:4], "pHYs")
	binary.BigEndian.PutUint32(body[4:8], ppm)
	binary.BigEndian.PutUint32(body[8:12], ppm)
	body[12] = 1 // unit: meter

	chunk := make([]byte, 4, 4+len(body)+4)
	binary.BigEndian.PutUint32(chunk, 9)
	chunk = append(chunk, body...)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(body))
	return chunk
}
