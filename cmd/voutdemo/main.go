// Command voutdemo renders a test pattern through the vout display on an
// offscreen context and saves the presented frame.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/disintegration/imaging"

	"github.com/gogpu/vout"
	"github.com/gogpu/vout/glctx"
	"github.com/gogpu/vout/glctx/headless"
	"github.com/gogpu/vout/video"
)

func main() {
	var (
		width     = flag.Int("width", 800, "display width")
		height    = flag.Int("height", 600, "display height")
		srcWidth  = flag.Int("src-width", 320, "source picture width")
		srcHeight = flag.Int("src-height", 180, "source picture height")
		resize    = flag.String("resize", "", "apply a display size query, as WxH")
		align     = flag.String("align", "center", "vertical alignment: top, center or bottom")
		filled    = flag.Bool("filled", true, "fill the display")
		backend   = flag.String("backend", "any", "backend: gl, gles2 or any")
		provider  = flag.String("provider", headless.Name, "context provider")
		config    = flag.String("config", "", "TOML or YAML settings file")
		subtitle  = flag.Bool("subtitle", true, "blend a subtitle overlay")
		output    = flag.String("output", "voutdemo.png", "output file")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		vout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []vout.Option
	if *config != "" {
		fc, err := vout.LoadConfig(*config)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		opts = append(opts, fc.Options()...)
		if fc.Backend != "" {
			*backend = fc.Backend
		}
	}
	opts = append(opts, vout.WithProviderName(*provider))

	cfg := video.DisplayConfig{
		Width:     *width,
		Height:    *height,
		Filled:    *filled,
		Viewpoint: video.DefaultViewpoint(),
	}
	cfg.Align.Vertical = parseAlign(*align)

	format := video.NewFormat(video.RGBA, *srcWidth, *srcHeight)
	win := glctx.Window{Width: *width, Height: *height, Title: "voutdemo"}

	d, err := vout.OpenBackend(*backend, win, format, cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to open display: %v", err)
	}
	defer d.Close()

	if *resize != "" {
		var w, h int
		if _, err := fmt.Sscanf(*resize, "%dx%d", &w, &h); err != nil {
			log.Fatalf("Bad -resize %q: %v", *resize, err)
		}
		cfg.Width, cfg.Height = w, h
		if err := d.Control(vout.ChangeDisplaySize{Config: cfg}); err != nil {
			log.Fatalf("Resize failed: %v", err)
		}
	}

	pool := d.Pool(2)
	if pool == nil {
		log.Fatal("No picture pool")
	}
	pic := pool.Get()
	drawColorBars(pic.Image)

	var sub *video.Subpicture
	if *subtitle {
		sub = subtitleOverlay(*srcWidth, *srcHeight)
	}

	if got := d.Prepare(pic, sub, time.Now()); got != vout.Rendered {
		log.Fatalf("Prepare: %v", got)
	}
	if got := d.Display(pic, sub); got != vout.Rendered {
		log.Fatalf("Display: %v", got)
	}

	hc, ok := d.Context().(*headless.Context)
	if !ok {
		log.Printf("Displayed on %s (%s); no snapshot available", d.ProviderName(), d.Variant().Name)
		return
	}
	if err := imaging.Save(hc.Snapshot(), *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Frame saved to %s (%dx%d, %s)\n", *output, cfg.Width, cfg.Height, d.Variant().Name)
}

func parseAlign(s string) video.Align {
	switch s {
	case "top":
		return video.AlignTop
	case "bottom":
		return video.AlignBottom
	default:
		return video.AlignCenter
	}
}

var bars = []color.RGBA{
	{192, 192, 192, 255},
	{192, 192, 0, 255},
	{0, 192, 192, 255},
	{0, 192, 0, 255},
	{192, 0, 192, 255},
	{192, 0, 0, 255},
	{0, 0, 192, 255},
}

func drawColorBars(img *image.RGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		c := bars[(x-b.Min.X)*len(bars)/b.Dx()]
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func subtitleOverlay(w, h int) *video.Subpicture {
	bw, bh := w/2, h/8
	box := image.NewRGBA(image.Rect(0, 0, bw, bh))
	for i := 0; i < len(box.Pix); i += 4 {
		box.Pix[i], box.Pix[i+1], box.Pix[i+2], box.Pix[i+3] = 255, 255, 255, 255
	}
	return &video.Subpicture{Regions: []video.SubpictureRegion{{
		Chroma: video.RGBA,
		Image:  box,
		X:      (w - bw) / 2,
		Y:      h - 2*bh,
		Alpha:  160,
	}}}
}
