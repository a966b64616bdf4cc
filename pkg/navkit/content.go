package navkit

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// BlockType identifies what a content Block draws.
type BlockType int

const (
	BlockText BlockType = iota
	BlockHeading
	BlockRow
	BlockDivider
	BlockImage
	BlockSpacer
)

// Block is one piece of page content, laid out top to bottom.
type Block struct {
	Type      BlockType
	Text      string // Body text, heading text or row label
	Value     string // Row value, drawn right aligned
	ImagePath string
	Height    int32 // Spacer height or the maximum image height
}

func NewTextBlock(text string) Block {
	return Block{Type: BlockText, Text: text}
}

func NewHeadingBlock(text string) Block {
	return Block{Type: BlockHeading, Text: text}
}

func NewRowBlock(label, value string) Block {
	return Block{Type: BlockRow, Text: label, Value: value}
}

func NewDividerBlock() Block {
	return Block{Type: BlockDivider}
}

// NewImageBlock shows an image scaled to the content width. maxHeight of 0
// leaves the height unbounded.
func NewImageBlock(path string, maxHeight int32) Block {
	return Block{Type: BlockImage, ImagePath: path, Height: maxHeight}
}

func NewSpacerBlock(height int32) Block {
	return Block{Type: BlockSpacer, Height: height}
}

const blockSpacing int32 = 12

// contentLayout measures blocks once for a given width and draws them at any
// scroll position.
type contentLayout struct {
	blocks  []Block
	width   int32
	heights []int32
	total   int32
	images  map[string]internal.CachedTexture
}

func newContentLayout(blocks []Block) *contentLayout {
	return &contentLayout{blocks: blocks, width: -1, images: map[string]internal.CachedTexture{}}
}

func blockFont(b Block) *ttf.Font {
	if b.Type == BlockHeading {
		return internal.Fonts.MediumFont
	}
	return internal.Fonts.SmallFont
}

// measure lays the blocks out for width and returns the total height.
func (l *contentLayout) measure(s *pageSession, width int32) int32 {
	if width == l.width {
		return l.total
	}
	l.width = width
	l.heights = make([]int32, len(l.blocks))
	l.total = 0

	for i, b := range l.blocks {
		var h int32
		switch b.Type {
		case BlockText, BlockHeading:
			h = internal.MeasureMultilineText(b.Text, blockFont(b), width)
		case BlockRow:
			h = int32(internal.Fonts.SmallFont.Height())
		case BlockDivider:
			h = 1
		case BlockImage:
			if tex, ok := l.image(s, b.ImagePath); ok {
				maxH := b.Height
				if maxH <= 0 {
					maxH = tex.H
				}
				_, h = internal.ScaleToFit(tex.W, tex.H, width, maxH)
			}
		case BlockSpacer:
			h = b.Height
		}
		l.heights[i] = h
		l.total += h
		if i > 0 {
			l.total += blockSpacing
		}
	}
	return l.total
}

func (l *contentLayout) image(s *pageSession, path string) (internal.CachedTexture, bool) {
	if tex, ok := l.images[path]; ok {
		return tex, tex.Texture != nil
	}
	tex, err := internal.LoadImageFile(s.renderer, path)
	if err != nil {
		s.logger.Error("Failed to load content image", "path", path, "error", err)
	}
	l.images[path] = tex
	return tex, tex.Texture != nil
}

// draw renders the blocks with the first one at y, skipping any that fall
// outside [clipTop, clipBottom].
func (l *contentLayout) draw(s *pageSession, x, y, width, clipTop, clipBottom int32) {
	l.measure(s, width)
	theme := internal.GetTheme()

	for i, b := range l.blocks {
		h := l.heights[i]
		if y+h >= clipTop && y <= clipBottom {
			switch b.Type {
			case BlockText, BlockHeading:
				internal.RenderMultilineText(s.renderer, s.cache, b.Text, blockFont(b), width, x, y, theme.TextColor, constants.TextAlignLeft)
			case BlockRow:
				l.drawRow(s, b, x, y, width)
			case BlockDivider:
				c := theme.HintColor
				c.A = 90
				s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
				s.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: width, H: 1})
			case BlockImage:
				if tex, ok := l.image(s, b.ImagePath); ok {
					w := int32(float64(tex.W) * float64(h) / float64(internal.Max32(tex.H, 1)))
					s.renderer.Copy(tex.Texture, nil, &sdl.Rect{X: x + (width-w)/2, Y: y, W: w, H: h})
				}
			}
		}
		y += h + blockSpacing
	}
}

func (l *contentLayout) drawRow(s *pageSession, b Block, x, y, width int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont

	value, err := internal.CachedText(s.renderer, s.cache, b.Value, font, theme.HintColor)
	if err != nil {
		s.logger.Error("Failed to render row value", "error", err)
	}
	if value.Texture != nil {
		s.renderer.Copy(value.Texture, nil, &sdl.Rect{X: x + width - value.W, Y: y, W: value.W, H: value.H})
	}

	label, err := internal.CachedText(s.renderer, s.cache, b.Text, font, theme.TextColor)
	if err != nil {
		s.logger.Error("Failed to render row label", "error", err)
		return
	}
	if label.Texture == nil {
		return
	}
	w := internal.Min32(label.W, internal.Max32(width-value.W-16, 0))
	s.renderer.Copy(label.Texture, &sdl.Rect{W: w, H: label.H}, &sdl.Rect{X: x, Y: y, W: w, H: label.H})
}

func (l *contentLayout) destroy() {
	for path, tex := range l.images {
		if tex.Texture != nil {
			tex.Texture.Destroy()
		}
		delete(l.images, path)
	}
}
