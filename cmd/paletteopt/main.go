// Command paletteopt is a minimal driver over the core optimization
// engine: it builds the standard LUT set (native-vision Oklab distance,
// the three dichromacy simulations, and worst-case APCA contrast against a
// background set), runs the optimizer for a fixed iteration budget with an
// optional stall-restore threshold, and prints the resulting palette.
//
// Argument parsing, progress reporting, and SVG rendering belong to the
// outer tooling this package is not; flag and log are used here only
// because this is a thin demo binary, not because the core depends on them.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/soypat/paletteopt/colorspace"
	"github.com/soypat/paletteopt/metric"
	"github.com/soypat/paletteopt/optimizer"
)

func main() {
	var (
		n             = flag.Int("n", 8, "palette size")
		iterations    = flag.Int("iterations", 200_000, "total optimizer steps")
		stallWindow   = flag.Int("stall-window", 5_000, "steps without best-score improvement before restoring the best snapshot (0 disables)")
		pairWeight    = flag.Float64("pair-weight", 1, "weight of the native-vision HyAB pair-distance metric")
		dichromaWeight = flag.Float64("dichroma-weight", 1, "weight of each dichromacy-simulation pair-distance metric")
		constWeight   = flag.Float64("constraint-weight", 1, "weight of the APCA constraint metric")
		backgrounds   = flag.String("backgrounds", "#000000,#FFFFFF", "comma-separated hex backgrounds for the constraint metric")
		seed          = flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	)
	flag.Parse()

	bgs, err := parseHexColors(*backgrounds)
	if err != nil {
		log.Fatalf("paletteopt: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	palette := randomPalette(rng, *n)

	log.Printf("paletteopt: building sRGB-cube LUTs (native, protan, deutan, tritan, constraint)")
	nativeLut := colorspace.NewSrgbLut(colorspace.OklabFromSRGB8)
	protanLut := colorspace.NewSrgbLut(colorspace.SimulateProtan)
	deutanLut := colorspace.NewSrgbLut(colorspace.SimulateDeutan)
	tritanLut := colorspace.NewSrgbLut(colorspace.SimulateTritan)
	constraintLut, err := colorspace.NewConstraintLut(bgs, colorspace.APCA)
	if err != nil {
		log.Fatalf("paletteopt: %v", err)
	}

	pairMetrics, err := buildPairMetrics(palette, []pairLutWeight{
		{lut: nativeLut, weight: float32(*pairWeight)},
		{lut: protanLut, weight: float32(*dichromaWeight)},
		{lut: deutanLut, weight: float32(*dichromaWeight)},
		{lut: tritanLut, weight: float32(*dichromaWeight)},
	})
	if err != nil {
		log.Fatalf("paletteopt: %v", err)
	}

	constMetric, err := metric.NewConstraintMetric(palette, constraintLut)
	if err != nil {
		log.Fatalf("paletteopt: %v", err)
	}

	opt, err := optimizer.New(palette, pairMetrics,
		[]optimizer.ConstraintMetric{{Weight: float32(*constWeight), Metric: constMetric}}, rng)
	if err != nil {
		log.Fatalf("paletteopt: %v", err)
	}

	stall := 0
	for i := 0; i < *iterations; i++ {
		before := opt.BestScore()
		opt.Update()
		if *stallWindow <= 0 {
			continue
		}
		if opt.BestScore() > before {
			stall = 0
		} else {
			stall++
			if stall >= *stallWindow {
				opt.RestoreBest()
				stall = 0
			}
		}
	}

	log.Printf("paletteopt: best score %v after %d iterations", opt.BestScore(), *iterations)
	for i, c := range opt.BestPalette() {
		log.Printf("  [%d] %s", i, c.String())
	}
}

type pairLutWeight struct {
	lut    *colorspace.SrgbLut[colorspace.Oklab]
	weight float32
}

func buildPairMetrics(palette []colorspace.SRGB8, lws []pairLutWeight) ([]optimizer.PairMetric, error) {
	out := make([]optimizer.PairMetric, 0, len(lws))
	for _, lw := range lws {
		pm, err := metric.NewPairDistanceMetric(palette, lw.lut, colorspace.HyAB)
		if err != nil {
			return nil, err
		}
		out = append(out, optimizer.PairMetric{Weight: lw.weight, Metric: pm})
	}
	return out, nil
}

func randomPalette(rng *rand.Rand, n int) []colorspace.SRGB8 {
	palette := make([]colorspace.SRGB8, n)
	for i := range palette {
		palette[i] = colorspace.SRGB8{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		}
	}
	return palette
}

func parseHexColors(s string) ([]colorspace.SRGB8, error) {
	parts := strings.Split(s, ",")
	out := make([]colorspace.SRGB8, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		c, err := parseHexColor(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseHexColor(s string) (colorspace.SRGB8, error) {
	s = strings.TrimPrefix(s, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return colorspace.SRGB8{}, fmt.Errorf("paletteopt: invalid hex color %q: %w", s, err)
	}
	return colorspace.SRGB8{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
