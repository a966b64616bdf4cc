package internal

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 32

// CachedTexture is a texture together with its pixel size.
type CachedTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

type cacheEntry struct {
	key   string
	value CachedTexture
}

// TextureCache keeps rendered text and glyph textures across frames and
// destroys the least recently used one once full.
type TextureCache struct {
	entries map[string]*list.Element
	order   *list.List // front is most recently used
	maxSize int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: max(1, maxSize),
	}
}

func (c *TextureCache) Get(key string) (CachedTexture, bool) {
	el, ok := c.entries[key]
	if !ok {
		return CachedTexture{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

func (c *TextureCache) Set(key string, value CachedTexture) {
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		if entry.value.Texture != value.Texture && entry.value.Texture != nil {
			entry.value.Texture.Destroy()
		}
		entry.value = value
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, value: value})
}

// GetOrCreate returns the texture cached under key or stores the one create builds.
func (c *TextureCache) GetOrCreate(key string, create func() (CachedTexture, error)) (CachedTexture, error) {
	if cached, ok := c.Get(key); ok {
		return cached, nil
	}
	value, err := create()
	if err != nil {
		return CachedTexture{}, err
	}
	c.Set(key, value)
	return value, nil
}

func (c *TextureCache) Len() int {
	return c.order.Len()
}

func (c *TextureCache) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	entry := c.order.Remove(el).(*cacheEntry)
	delete(c.entries, entry.key)
	if entry.value.Texture != nil {
		entry.value.Texture.Destroy()
	}
}

func (c *TextureCache) Destroy() {
	for c.order.Len() > 0 {
		c.evictOldest()
	}
}
