package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// maxRemoteImageBytes caps how much of a remote image is read.
const maxRemoteImageBytes = 16 << 20

var httpClient = &http.Client{Timeout: 15 * time.Second}

// FetchImage downloads an image body.
func FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteImageBytes))
	if err != nil {
		return nil, fmt.Errorf("fetch image: read body: %w", err)
	}
	return data, nil
}

// DecodeImageTexture decodes PNG or JPEG bytes into a texture.
func DecodeImageTexture(renderer *sdl.Renderer, data []byte) (CachedTexture, error) {
	if len(data) == 0 {
		return CachedTexture{}, fmt.Errorf("decode image: no data")
	}

	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("decode image: %w", err)
	}

	surface, err := img.LoadRW(rw, true)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("decode image: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("image texture: %w", err)
	}
	return CachedTexture{Texture: texture, W: surface.W, H: surface.H}, nil
}

// LoadImageFile loads an image from disk into a texture.
func LoadImageFile(renderer *sdl.Renderer, path string) (CachedTexture, error) {
	surface, err := img.Load(path)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("load image %s: %w", path, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("image texture: %w", err)
	}
	return CachedTexture{Texture: texture, W: surface.W, H: surface.H}, nil
}

// RemoteImage fetches an image off the render loop. Poll Ready each frame
// and upload the bytes with DecodeImageTexture once they arrive.
type RemoteImage struct {
	done chan struct{}
	data []byte
	err  error
}

// StartRemoteImage begins downloading url in the background.
func StartRemoteImage(ctx context.Context, url string) *RemoteImage {
	r := &RemoteImage{done: make(chan struct{})}
	go func() {
		defer close(r.done)
		r.data, r.err = FetchImage(ctx, url)
	}()
	return r
}

// Ready reports whether the download finished.
func (r *RemoteImage) Ready() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Result returns the downloaded bytes. Only valid once Ready is true.
func (r *RemoteImage) Result() ([]byte, error) {
	<-r.done
	return r.data, r.err
}
