package catalog

import "github.com/gamekit-dev/gamekit/internal/typereg"

// SoundConfig is the clip table for audio and haptic feedback.
type SoundConfig struct {
	MasterVolume float64     `json:"masterVolume"`
	Haptics      bool        `json:"haptics"`
	Clips        []SoundClip `json:"clips"`
}

// SoundClip maps an event name to an audio file.
type SoundClip struct {
	Event string `json:"event"`
	File  string `json:"file"`
}

func init() {
	typereg.RuntimeScope.Register(typereg.Type{
		Name: "SoundConfig",
		Kind: typereg.KindConfigAsset,
		New: func() any {
			return &SoundConfig{
				MasterVolume: 1.0,
				Haptics:      true,
				Clips: []SoundClip{
					{Event: "ui.tap", File: "assets/audio/tap.ogg"},
					{Event: "ui.success", File: "assets/audio/success.ogg"},
				},
			}
		},
	})

	typereg.RuntimeScope.Register(typereg.Type{
		Name: "AudioManager",
		Kind: typereg.KindComponent,
		New: func() any {
			return map[string]any{
				"configAsset": "assets/config/SoundConfig.yaml",
				"channels":    8,
			}
		},
	})

	register(&Module{
		Name:        "audio",
		Title:       "Audio & Haptics",
		Description: "Event-keyed sound playback and haptic feedback",
		SourceDir:   "modules/audio",
		TargetFiles: []string{"audio_manager.go", "haptics.go"},
		Asset:       &AssetSpec{Type: "SoundConfig", Path: "assets/config/SoundConfig.yaml"},
		Scene: []SceneSpec{
			{Marker: true, Label: "Services"},
			{Object: "AudioManager", Component: "AudioManager"},
		},
	})
}
