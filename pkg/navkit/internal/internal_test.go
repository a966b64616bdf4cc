package internal

import (
	"log/slog"
	"testing"
	"time"

	"github.com/BrandonKowalski/navkit/pkg/navkit/config"
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func TestRepeatInput(t *testing.T) {
	now := time.Unix(0, 0)
	r := NewRepeatInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	r.now = func() time.Time { return now }

	if _, ok := r.Update(); ok {
		t.Fatal("nothing held should not repeat")
	}

	r.Press(constants.VirtualButtonDown)

	now = now.Add(299 * time.Millisecond)
	if _, ok := r.Update(); ok {
		t.Fatal("repeat fired before the delay")
	}

	now = now.Add(time.Millisecond)
	if b, ok := r.Update(); !ok || b != constants.VirtualButtonDown {
		t.Fatalf("Update() = %v, %v; want Down, true", b.GetName(), ok)
	}

	now = now.Add(49 * time.Millisecond)
	if _, ok := r.Update(); ok {
		t.Fatal("second repeat fired before the interval")
	}
	now = now.Add(time.Millisecond)
	if _, ok := r.Update(); !ok {
		t.Fatal("second repeat should fire after the interval")
	}

	r.Release(constants.VirtualButtonUp)
	if r.Held() != constants.VirtualButtonDown {
		t.Fatal("releasing another button should keep the held one")
	}
	r.Release(constants.VirtualButtonDown)
	if r.Held() != constants.VirtualButtonUnassigned {
		t.Fatal("release should clear the held button")
	}
}

func TestWrapText(t *testing.T) {
	// Every rune is 10 pixels wide.
	measure := func(s string) int32 { return int32(len([]rune(s))) * 10 }

	tests := []struct {
		name  string
		text  string
		width int32
		want  []string
	}{
		{"empty", "", 100, nil},
		{"fits", "hello world", 200, []string{"hello world"}},
		{"wraps", "hello big world", 100, []string{"hello big", "world"}},
		{"long word", "abcdefghijklmnop x", 50, []string{"abcdefghijklmnop", "x"}},
		{"newlines", "a\r\n\nb", 100, []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.width, measure)
			if len(got) != len(tt.want) {
				t.Fatalf("WrapText = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("WrapText = %q, want %q", got, tt.want)
				}
			}
		})
	}
}

func TestMultilineHeight(t *testing.T) {
	if h := MultilineHeight(0, 20); h != 0 {
		t.Errorf("zero lines height = %d", h)
	}
	if h := MultilineHeight(1, 20); h != 20 {
		t.Errorf("one line height = %d, want 20", h)
	}
	if h := MultilineHeight(3, 20); h != 3*20+2*6 {
		t.Errorf("three lines height = %d, want %d", h, 3*20+2*6)
	}
}

func TestCornerInsets(t *testing.T) {
	if CornerInsets(0) != nil {
		t.Fatal("zero radius should have no insets")
	}
	insets := CornerInsets(8)
	if len(insets) != 8 {
		t.Fatalf("len = %d, want 8", len(insets))
	}
	for i := 1; i < len(insets); i++ {
		if insets[i] > insets[i-1] {
			t.Fatalf("insets should shrink toward the middle: %v", insets)
		}
	}
	if insets[0] == 0 || insets[len(insets)-1] != 0 {
		t.Fatalf("outer row should be inset and inner row flush: %v", insets)
	}
}

func TestLerpColor(t *testing.T) {
	a := sdl.Color{R: 0, G: 100, B: 200, A: 255}
	b := sdl.Color{R: 100, G: 100, B: 0, A: 255}

	if got := LerpColor(a, b, 0); got != a {
		t.Errorf("t=0 got %v", got)
	}
	if got := LerpColor(a, b, 1); got != b {
		t.Errorf("t=1 got %v", got)
	}
	if got := LerpColor(a, b, 0.5); got != (sdl.Color{R: 50, G: 100, B: 100, A: 255}) {
		t.Errorf("t=0.5 got %v", got)
	}
	if got := LerpColor(a, b, 2); got != b {
		t.Errorf("t is clamped, got %v", got)
	}
}

func TestScaleToFit(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int32
		wantW, wantH     int32
	}{
		{100, 50, 200, 200, 100, 50},
		{400, 200, 200, 200, 200, 100},
		{200, 400, 200, 200, 100, 200},
	}
	for _, tt := range tests {
		w, h := ScaleToFit(tt.w, tt.h, tt.maxW, tt.maxH)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("ScaleToFit(%d, %d, %d, %d) = %d, %d; want %d, %d", tt.w, tt.h, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestCoverCrop(t *testing.T) {
	// Wide source into a square crops the sides.
	if got := CoverCrop(400, 200, 100, 100); got != (sdl.Rect{X: 100, Y: 0, W: 200, H: 200}) {
		t.Errorf("wide crop = %+v", got)
	}
	// Tall source into a wide box crops top and bottom.
	if got := CoverCrop(200, 400, 200, 100); got != (sdl.Rect{X: 0, Y: 150, W: 200, H: 100}) {
		t.Errorf("tall crop = %+v", got)
	}
}

func TestUnpremultiply(t *testing.T) {
	in := []byte{
		0, 0, 0, 0,
		10, 20, 30, 255,
		64, 32, 0, 128,
	}
	out := Unpremultiply(in)
	want := []byte{
		0, 0, 0, 0,
		10, 20, 30, 255,
		127, 63, 0, 128,
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("Unpremultiply = %v, want %v", out, want)
		}
	}
	if &out[0] == &in[0] {
		t.Fatal("Unpremultiply should not alias its input")
	}
}

func TestTextureCacheEvictsLeastRecent(t *testing.T) {
	c := NewTextureCacheWithSize(2)
	c.Set("a", CachedTexture{W: 1})
	c.Set("b", CachedTexture{W: 2})

	if _, ok := c.Get("a"); !ok {
		t.Fatal("a should be cached")
	}
	c.Set("c", CachedTexture{W: 3})

	if _, ok := c.Get("b"); ok {
		t.Fatal("b was least recently used and should be evicted")
	}
	if v, ok := c.Get("a"); !ok || v.W != 1 {
		t.Fatal("a should survive eviction")
	}

	created := 0
	create := func() (CachedTexture, error) {
		created++
		return CachedTexture{W: 9}, nil
	}
	c.GetOrCreate("d", create)
	c.GetOrCreate("d", create)
	if created != 1 {
		t.Fatalf("create ran %d times, want 1", created)
	}

	c.Destroy()
	if c.Len() != 0 {
		t.Fatalf("Len after Destroy = %d", c.Len())
	}
}

func TestInputMaps(t *testing.T) {
	if b, ok := KeyButton(sdl.K_BACKSPACE); !ok || b != constants.VirtualButtonB {
		t.Errorf("backspace = %v, want B", b.GetName())
	}
	if b, ok := KeyButton(sdl.K_q); !ok || b != constants.DefaultQuickBackButton {
		t.Errorf("q = %v, want the quick-back button", b.GetName())
	}
	if b, ok := ControllerButton(sdl.CONTROLLER_BUTTON_LEFTSHOULDER); !ok || b != constants.VirtualButtonL1 {
		t.Errorf("left shoulder = %v, want L1", b.GetName())
	}
	if _, ok := KeyButton(sdl.K_F12); ok {
		t.Error("F12 should be unbound")
	}
}

func TestTranslateKeyboardEvent(t *testing.T) {
	ev, ok := TranslateEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_UP}})
	if !ok || ev.Button != constants.VirtualButtonUp || !ev.Pressed {
		t.Fatalf("key down up = %+v, %v", ev, ok)
	}
	ev, ok = TranslateEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_UP}})
	if !ok || ev.Pressed {
		t.Fatalf("key up = %+v, %v", ev, ok)
	}
}

func TestTriggerEdges(t *testing.T) {
	if _, ok := translateTrigger(sdl.CONTROLLER_AXIS_TRIGGERLEFT, 100); ok {
		t.Fatal("resting trigger should not emit")
	}
	ev, ok := translateTrigger(sdl.CONTROLLER_AXIS_TRIGGERLEFT, 30000)
	if !ok || ev.Button != constants.VirtualButtonL2 || !ev.Pressed {
		t.Fatalf("pulled trigger = %+v, %v", ev, ok)
	}
	if _, ok := translateTrigger(sdl.CONTROLLER_AXIS_TRIGGERLEFT, 31000); ok {
		t.Fatal("held trigger should emit once")
	}
	if ev, ok := translateTrigger(sdl.CONTROLLER_AXIS_TRIGGERLEFT, 0); !ok || ev.Pressed {
		t.Fatalf("released trigger = %+v, %v", ev, ok)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		" error ": slog.LevelError,
		"chatty":  slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for raw, want := range tests {
		if got := ParseLogLevel(raw); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestApplyThemeConfig(t *testing.T) {
	base := DefaultTheme()
	got := ApplyThemeConfig(base, config.Theme{Accent: "#112233", Hint: "nope", FontPath: "/f.ttf"})

	if got.AccentColor != (sdl.Color{R: 0x11, G: 0x22, B: 0x33, A: 255}) {
		t.Errorf("accent = %v", got.AccentColor)
	}
	if got.HintColor != base.HintColor {
		t.Errorf("invalid hint should be ignored, got %v", got.HintColor)
	}
	if got.FontPath != "/f.ttf" {
		t.Errorf("font path = %q", got.FontPath)
	}
	if got.TextColor != base.TextColor {
		t.Errorf("unset text color changed to %v", got.TextColor)
	}
}
