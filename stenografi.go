package stenografi

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/flopp/go-findfont"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.design/x/clipboard"

	"github.com/amirrezaask/stenografi/components"
	"github.com/amirrezaask/stenografi/lexers"
	"github.com/amirrezaask/stenografi/symbols"
)

const (
	maxInputLength = 1024
	minZoom        = 0.1
	maxZoom        = 4
)

type Stenografi struct {
	Cfg      *Config
	Lexer    *lexers.StenoLexer
	Library  *Library
	Textures map[symbols.Symbol]rl.Texture2D
	Input    *components.UserInputComponent
	Keymaps  []Keymap
	Font     rl.Font
	FontPath string
	FontSize int32
	Zoom     float32
	Strict   bool

	warnedMissing map[symbols.Symbol]bool
}

func setupRaylib(cfg *Config) {
	// basic setup
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "stenografi")
	rl.SetTargetFPS(60)
	// escape clears the input instead of closing the window
	rl.SetExitKey(0)
}

func New(cfg *Config) (*Stenografi, error) {
	lib, err := LoadLibrary(cfg.LibraryPath)
	if err != nil {
		return nil, err
	}

	setupRaylib(cfg)

	if err := clipboard.Init(); err != nil {
		return nil, err
	}
	s := &Stenografi{
		Cfg:           cfg,
		Lexer:         lexers.NewStenoLexer(cfg.Alphabet),
		Library:       lib,
		Input:         components.NewUserInputComponent(maxInputLength),
		Keymaps:       []Keymap{defaultKeymap},
		Zoom:          cfg.Zoom,
		Strict:        cfg.Strict,
		warnedMissing: map[symbols.Symbol]bool{},
	}
	if err := s.LoadFont(cfg.FontName, int32(cfg.FontSize)); err != nil {
		rl.TraceLog(rl.LogWarning, "STENOGRAFI: font %q: %v, using default font", cfg.FontName, err)
		s.Font = rl.GetFontDefault()
		s.FontSize = int32(cfg.FontSize)
	}
	s.Textures = loadTextures(cfg.ResourcesDir, lib)

	return s, nil
}

// fontCodepoints is printable ascii plus the letters of the alphabet that
// are outside of it.
func fontCodepoints() []rune {
	var runes []rune
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return append(runes, 'å', 'ä', 'ö', 'Å', 'Ä', 'Ö')
}

func (s *Stenografi) LoadFont(name string, size int32) error {
	var err error
	s.FontPath, err = findfont.Find(name + ".ttf")
	if err != nil {
		return err
	}

	s.FontSize = size
	s.Font = rl.LoadFontEx(s.FontPath, s.FontSize, fontCodepoints())
	return nil
}

func glyphPath(resourcesDir string, sym symbols.Symbol) string {
	return filepath.Join(resourcesDir, sym.Text()+".png")
}

func loadTextures(resourcesDir string, lib *Library) map[symbols.Symbol]rl.Texture2D {
	textures := map[symbols.Symbol]rl.Texture2D{}
	for _, vt := range lib.Tokens {
		if _, loaded := textures[vt.Token]; loaded {
			continue
		}
		fileName := glyphPath(resourcesDir, vt.Token)
		if _, err := os.Stat(fileName); err != nil {
			rl.TraceLog(rl.LogWarning, "STENOGRAFI: no glyph for %s: %v", vt.Token, err)
			continue
		}
		texture := rl.LoadTexture(fileName)
		if texture.ID == 0 {
			continue
		}
		textures[vt.Token] = texture
	}
	return textures
}

func (s *Stenografi) SetZoom(zoom float32) {
	s.Zoom = min(max(zoom, minZoom), maxZoom)
}

func (s *Stenografi) HandleCharInput() {
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
			continue
		}
		s.Input.InsertChar(c)
	}
}

func (s *Stenografi) runKey(key Key) {
	if cmd := lookup(s.Keymaps, key); cmd != nil {
		if err := cmd(s); err != nil {
			rl.TraceLog(rl.LogError, "STENOGRAFI: %v", err)
		}
	}
}

func (s *Stenografi) HandleKeyEvents() {
	s.runKey(getKey())
}

func (s *Stenografi) HandleMouseEvents() {
	s.runKey(getMouseKey())
}

func (s *Stenografi) warnMissing(missing []symbols.Symbol) {
	for _, sym := range missing {
		if s.warnedMissing[sym] {
			continue
		}
		s.warnedMissing[sym] = true
		rl.TraceLog(rl.LogWarning, "STENOGRAFI: %s has no entry in %s", sym, s.Cfg.LibraryPath)
	}
}

func (s *Stenografi) Render() {
	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	sentence, skips := s.Lexer.LexWithSkips(s.Input.String())

	opts := s.Cfg.Layout
	opts.Width = float32(width) / s.Zoom
	placements, missing := Layout(sentence, s.Library, opts)
	s.warnMissing(missing)

	rl.BeginDrawing()
	rl.ClearBackground(rl.White)

	rl.BeginMode2D(rl.Camera2D{Zoom: s.Zoom})
	for _, p := range placements {
		texture, exists := s.Textures[p.Symbol]
		if !exists {
			continue
		}
		rl.DrawTextureV(texture, rl.Vector2{X: p.Position.X, Y: p.Position.Y}, rl.Black)
	}
	rl.EndMode2D()

	fontSize := float32(s.FontSize)
	rl.DrawTextEx(s.Font, s.Input.String(), rl.Vector2{X: 40, Y: float32(height) - 60}, fontSize, 1, rl.Black)
	if s.Strict && len(skips) > 0 {
		rl.DrawTextEx(s.Font, skips.Error(), rl.Vector2{X: 40, Y: float32(height) - 60 - fontSize}, fontSize*0.6, 1, rl.Red)
	}
	rl.EndDrawing()
}

func (s *Stenografi) StartMainLoop() {
	defer func() {

		if err := recover(); err != nil {
			err = os.WriteFile(path.Join(os.Getenv("HOME"),
				fmt.Sprintf("stenografi-crashlog-%d", time.Now().Unix())),
				[]byte(fmt.Sprintf("%v\n%s\n%s", err, string(debug.Stack()), spew.Sdump(s))), 0644)
			if err != nil {
				fmt.Println("could not write crash log")
				fmt.Println(err)
			}
		}

	}()

	for !rl.WindowShouldClose() {
		s.HandleCharInput()
		s.HandleKeyEvents()
		s.HandleMouseEvents()
		s.Render()
	}
}

func (s *Stenografi) Close() {
	for _, texture := range s.Textures {
		rl.UnloadTexture(texture)
	}
	rl.CloseWindow()
}
