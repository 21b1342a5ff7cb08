//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"chromacraft/palette"
	"chromacraft/plotter"
)

// paletteOptions is the JSON accepted by generatePaletteGo.
type paletteOptions struct {
	MinDiff     float64  `json:"minDiff"`
	MaxDiff     float64  `json:"maxDiff"`
	Seeds       []string `json:"seeds"`
	Sampler     string   `json:"sampler"`
	MaxAttempts int      `json:"maxAttempts"`
}

func jsError(format string, args ...interface{}) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": fmt.Sprintf(format, args...),
	})
}

// generatePaletteWasm returns {colors: ["#rrggbb", ...]} or {error}.
func generatePaletteWasm(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return jsError("Invalid number of arguments: expected 2 (n, optionsJSON)")
	}
	if args[0].Type() != js.TypeNumber || args[1].Type() != js.TypeString {
		return jsError("Invalid argument types: expected a number and a string")
	}

	opts := paletteOptions{
		MinDiff: palette.DefaultMinDiff,
		MaxDiff: palette.DefaultMaxDiff,
	}
	if s := args[1].String(); s != "" {
		if err := json.Unmarshal([]byte(s), &opts); err != nil {
			return jsError("Failed to parse options JSON: %v", err)
		}
	}

	seeds := make([]palette.Color, 0, len(opts.Seeds))
	for _, s := range opts.Seeds {
		c, err := palette.ParseColor(s)
		if err != nil {
			return jsError("%v", err)
		}
		seeds = append(seeds, c)
	}
	sampler, err := palette.SamplerByName(opts.Sampler, nil)
	if err != nil {
		return jsError("%v", err)
	}

	p, err := palette.Generate(args[0].Int(),
		palette.WithMinDiff(opts.MinDiff),
		palette.WithMaxDiff(opts.MaxDiff),
		palette.WithSeeds(seeds...),
		palette.WithSampler(sampler),
		palette.WithMaxAttempts(opts.MaxAttempts),
	)
	if err != nil {
		return jsError("%v", err)
	}

	colors := make([]interface{}, len(p))
	for i, h := range p.Hex() {
		colors[i] = h
	}
	return js.ValueOf(map[string]interface{}{
		"colors": colors,
	})
}

// generatePlotWasm returns {base64Image} or {error}.
func generatePlotWasm(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return jsError("Invalid number of arguments: expected 2 (csvData, optionsJSON)")
	}
	if args[0].Type() != js.TypeString || args[1].Type() != js.TypeString {
		return jsError("Invalid argument types: both arguments must be strings")
	}

	// Set defaults before unmarshalling in case some fields are missing in JSON
	opts := plotter.DefaultPlotOptions()
	if err := json.Unmarshal([]byte(args[1].String()), &opts); err != nil {
		return jsError("Failed to parse options JSON: %v", err)
	}

	base64Image, err := plotter.GeneratePlot(args[0].String(), opts)
	if err != nil {
		return jsError("%v", err)
	}
	return js.ValueOf(map[string]interface{}{
		"base64Image": base64Image,
	})
}

func main() {
	fmt.Println("Go WASM Initialized (chromacraft)") // Log to browser console
	js.Global().Set("generatePaletteGo", js.FuncOf(generatePaletteWasm))
	js.Global().Set("generatePlotGo", js.FuncOf(generatePlotWasm))
	select {}
}
