package catalog

import "github.com/gamekit-dev/gamekit/internal/typereg"

// CloudDocsConfig holds remote-document storage settings.
type CloudDocsConfig struct {
	Collection    string `json:"collection"`
	CacheDir      string `json:"cacheDir"`
	SyncOnStart   bool   `json:"syncOnStart"`
	RetryAttempts int    `json:"retryAttempts"`
}

func init() {
	typereg.RuntimeScope.Register(typereg.Type{
		Name: "CloudDocsConfig",
		Kind: typereg.KindConfigAsset,
		New: func() any {
			return &CloudDocsConfig{
				Collection:    "players",
				CacheDir:      ".cache/clouddocs",
				SyncOnStart:   true,
				RetryAttempts: 3,
			}
		},
	})

	typereg.RuntimeScope.Register(typereg.Type{
		Name: "CloudDocsManager",
		Kind: typereg.KindComponent,
		New: func() any {
			return map[string]any{
				"configAsset": "assets/config/CloudDocsConfig.yaml",
			}
		},
	})

	register(&Module{
		Name:        "clouddocs",
		Title:       "Cloud Documents",
		Description: "Remote document storage with a local write-through cache",
		SourceDir:   "modules/clouddocs",
		TargetFiles: []string{"documents.go", "document_store.go"},
		Asset:       &AssetSpec{Type: "CloudDocsConfig", Path: "assets/config/CloudDocsConfig.yaml"},
		Scene: []SceneSpec{
			{Marker: true, Label: "Services"},
			{Object: "CloudDocsManager", Component: "CloudDocsManager"},
		},
	})
}
