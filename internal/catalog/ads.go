package catalog

import "github.com/gamekit-dev/gamekit/internal/typereg"

// AdsConfig holds ad network identifiers. Created once at install with
// placeholder values; the environment switcher and the user edit it after.
type AdsConfig struct {
	AppID          string `json:"appId"`
	BannerUnitID   string `json:"bannerUnitId"`
	RewardedUnitID string `json:"rewardedUnitId"`
	TestMode       bool   `json:"testMode"`
}

func init() {
	typereg.RuntimeScope.Register(typereg.Type{
		Name: "AdsConfig",
		Kind: typereg.KindConfigAsset,
		New: func() any {
			return &AdsConfig{
				AppID:          "ca-app-pub-0000000000000000~0000000000",
				BannerUnitID:   "ca-app-pub-0000000000000000/1111111111",
				RewardedUnitID: "ca-app-pub-0000000000000000/2222222222",
				TestMode:       true,
			}
		},
	})

	typereg.RuntimeScope.Register(typereg.Type{
		Name: "AdsManager",
		Kind: typereg.KindComponent,
		New: func() any {
			return map[string]any{
				"configAsset": "assets/config/AdsConfig.yaml",
				"initOnStart": true,
			}
		},
	})

	register(&Module{
		Name:        "ads",
		Title:       "Ads",
		Description: "Banner and rewarded ad mediation with a config-driven unit table",
		SourceDir:   "modules/ads",
		TargetFiles: []string{"ads_manager.go", "banner.go"},
		Asset:       &AssetSpec{Type: "AdsConfig", Path: "assets/config/AdsConfig.yaml"},
		Scene: []SceneSpec{
			{Marker: true, Label: "Services"},
			{Object: "AdsManager", Component: "AdsManager"},
		},
	})
}
