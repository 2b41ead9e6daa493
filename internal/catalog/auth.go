package catalog

import "github.com/gamekit-dev/gamekit/internal/typereg"

// AuthConfig holds sign-in provider settings.
type AuthConfig struct {
	Providers      []string `json:"providers"`
	GuestFallback  bool     `json:"guestFallback"`
	SessionTimeout int      `json:"sessionTimeoutSeconds"`
}

func init() {
	typereg.RuntimeScope.Register(typereg.Type{
		Name: "AuthConfig",
		Kind: typereg.KindConfigAsset,
		New: func() any {
			return &AuthConfig{
				Providers:      []string{"anonymous"},
				GuestFallback:  true,
				SessionTimeout: 3600,
			}
		},
	})

	typereg.RuntimeScope.Register(typereg.Type{
		Name: "AuthManager",
		Kind: typereg.KindComponent,
		New: func() any {
			return map[string]any{
				"configAsset":   "assets/config/AuthConfig.yaml",
				"signInOnStart": false,
			}
		},
	})

	register(&Module{
		Name:        "auth",
		Title:       "Authentication",
		Description: "Player sign-in with pluggable providers and a session cache",
		SourceDir:   "modules/auth",
		TargetFiles: []string{"auth_manager.go", "providers.go"},
		Asset:       &AssetSpec{Type: "AuthConfig", Path: "assets/config/AuthConfig.yaml"},
		Scene: []SceneSpec{
			{Marker: true, Label: "Services"},
			{Object: "AuthManager", Component: "AuthManager"},
		},
	})
}
