package snapshot_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"namevalue/internal/infrastructure/snapshot"
	"namevalue/internal/view"
)

func encode(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(10, 10, 14, 12))
	src.SetNRGBA(10, 10, color.NRGBA{R: 0xff, A: 0xff})          // непрозрачный
	src.SetNRGBA(11, 10, color.NRGBA{R: 0xff, G: 0xff, B: 0xff}) // прозрачный
	src.SetNRGBA(12, 10, color.NRGBA{A: 0x80})                   // полупрозрачный чёрный

	tests := []struct {
		name     string
		x, y     int
		expected color.RGBA
	}{
		{name: "Opaque pixel kept", x: 0, y: 0, expected: color.RGBA{R: 0xff, A: 0xff}},
		{name: "Transparent becomes background", x: 1, y: 0, expected: view.CardBackground},
		{name: "Untouched becomes background", x: 3, y: 1, expected: view.CardBackground},
	}

	out, err := snapshot.Flatten(encode(t, src), view.CardBackground)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, g, b, a := img.At(tc.x, tc.y).RGBA()
			require.Equal(t, tc.expected, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
		})
	}

	t.Run("Blend stays opaque", func(t *testing.T) {
		t.Parallel()

		rq := require.New(t)

		r, _, _, a := img.At(2, 0).RGBA()
		rq.Equal(uint32(0xffff), a)
		rq.Less(r>>8, uint32(view.CardBackground.R))
	})
}

func TestFlattenInvalidImage(t *testing.T) {
	t.Parallel()

	_, err := snapshot.Flatten([]byte("not a png"), view.CardBackground)
	require.Error(t, err)
}

func TestDisabledCapture(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	_, err := snapshot.Disabled{}.Capture(context.Background(), view.CardDocument{})
	rq.ErrorIs(err, snapshot.ErrDisabled)

	reason := errors.New("fork/exec /nonexistent/chrome: no such file or directory")

	_, err = snapshot.Disabled{Reason: reason}.Capture(context.Background(), view.CardDocument{})
	rq.ErrorIs(err, snapshot.ErrDisabled)
	rq.ErrorIs(err, reason)
}
