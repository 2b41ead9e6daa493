package catalog

import "github.com/gamekit-dev/gamekit/internal/typereg"

// BuildConfig holds build identity and packaging settings. Editor-only: the
// game runtime never loads it, so its type lives in the editor scope.
type BuildConfig struct {
	BundleID    string   `json:"bundleId"`
	Version     string   `json:"version"`
	BuildNumber int      `json:"buildNumber"`
	Targets     []string `json:"targets"`
	Scenes      []string `json:"scenes"`
}

// BuildConfigPath is the logical path of the build config asset, shared
// with the build command.
const BuildConfigPath = "assets/config/BuildConfig.yaml"

func init() {
	typereg.EditorScope.Register(typereg.Type{
		Name: "BuildConfig",
		Kind: typereg.KindConfigAsset,
		New: func() any {
			return &BuildConfig{
				BundleID:    "com.example.game",
				Version:     "0.1.0",
				BuildNumber: 1,
				Targets:     []string{"android", "ios"},
				Scenes:      []string{"assets/scenes/main.scene.yaml"},
			}
		},
	})

	register(&Module{
		Name:        "build",
		Title:       "Build Pipeline",
		Description: "Versioned build identity and packaging entry point",
		SourceDir:   "tools/build",
		TargetFiles: []string{"pipeline.go"},
		Asset:       &AssetSpec{Type: "BuildConfig", Path: BuildConfigPath},
	})
}
