package config

import (
	"sort"

	"github.com/kerbaras/appassets/pkg/data"
)

// DefaultPreset is the job set run when no manifest or preset is given
const DefaultPreset = "expo"

// Preset is a named, built-in list of conversion jobs
type Preset struct {
	Name        string
	Description string
	Jobs        []data.ConversionJob
}

// Presets holds the built-in job sets. Paths are relative to the working directory.
var Presets = map[string]Preset{
	"expo": {
		Name:        "expo",
		Description: "App icon, adaptive icon, splash screen and favicon",
		Jobs: []data.ConversionJob{
			{Source: "assets/icon.svg", Destination: "assets/icon.png", Width: 1024, Height: 1024},
			{Source: "assets/adaptive-icon.svg", Destination: "assets/adaptive-icon.png", Width: 1024, Height: 1024},
			{Source: "assets/splash.svg", Destination: "assets/splash.png", Width: 1284, Height: 2778},
			{Source: "assets/favicon.svg", Destination: "assets/favicon.png", Width: 48, Height: 48},
		},
	},
	"pwa": {
		Name:        "pwa",
		Description: "Web manifest icons and apple touch icon",
		Jobs: []data.ConversionJob{
			{Source: "assets/icon.svg", Destination: "public/icon-192.png", Width: 192, Height: 192, Fit: data.FitContain},
			{Source: "assets/icon.svg", Destination: "public/icon-512.png", Width: 512, Height: 512, Fit: data.FitContain},
			{Source: "assets/icon.svg", Destination: "public/apple-touch-icon.png", Width: 180, Height: 180, Fit: data.FitContain},
		},
	},
}

// GetPreset returns a copy of the named preset
func GetPreset(name string) (Preset, bool) {
	preset, ok := Presets[name]
	if !ok {
		return Preset{}, false
	}
	preset.Jobs = append([]data.ConversionJob(nil), preset.Jobs...)
	return preset, true
}

// ListPresets returns all presets sorted by name
func ListPresets() []Preset {
	presets := make([]Preset, 0, len(Presets))
	for name := range Presets {
		preset, _ := GetPreset(name)
		presets = append(presets, preset)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets
}
