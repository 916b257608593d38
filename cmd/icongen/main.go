// Command icongen renders an iOS AppIcon.appiconset from a single
// SVG glyph: a light, a dark and a tinted variant plus the manifest
// Xcode expects next to them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/kuilhq/icongen/appicon"
)

// Version indicates the current build version.
var Version = "dev"

var (
	source  = flag.String("svg", "logo/kuil-icon.svg", "Source SVG document")
	outDir  = flag.String("out", "Echoapp/Echoapp/Assets.xcassets/AppIcon.appiconset", "Icon set output directory")
	size    = flag.Int("size", appicon.DefaultSize, "Pixel edge of the generated icons")
	light   = flag.String("light", "", "Light background override (#rrggbb or SVG color name)")
	dark    = flag.String("dark", "", "Dark background override (#rrggbb or SVG color name)")
	legacy  = flag.Bool("legacy", false, "Also emit the per device legacy sizes")
	version = flag.Bool("version", false, "Print the version and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "icongen renders an AppIcon.appiconset from an SVG glyph.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println("icongen", Version)
		return
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}
	log := zerolog.New(consoleWriter).With().Timestamp().Logger()

	pal := appicon.DefaultPalette()
	if *light != "" {
		c, err := appicon.ParseColor(*light)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid light background")
		}
		pal.Light = c
	}
	if *dark != "" {
		c, err := appicon.ParseColor(*dark)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid dark background")
		}
		pal.Dark = c
	}

	gen := &appicon.Generator{
		SVGPath: *source,
		OutDir:  *outDir,
		Size:    *size,
		Palette: pal,
		Legacy:  *legacy,
		Log:     log,
	}

	log.Info().Str("svg", *source).Str("out", *outDir).Msg("generating app icons")
	if err := gen.Run(); err != nil {
		log.Fatal().Err(err).Msg("icon generation failed")
	}
	log.Info().Msg("done")
}
