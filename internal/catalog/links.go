package catalog

import "github.com/gamekit-dev/gamekit/internal/output"

// Links settings keys in the project settings store. The links module has no
// config asset: store and policy URLs live in the opaque key-value store so
// other tooling can read them without parsing assets.
const (
	LinkStoreURL   = "links.storeUrl"
	LinkRateURL    = "links.rateUrl"
	LinkPrivacyURL = "links.privacyUrl"
	LinkSupportURL = "links.supportUrl"
)

func init() {
	register(&Module{
		Name:        "links",
		Title:       "Settings & Links",
		Description: "Store, rating, and policy links backed by project settings",
		SourceDir:   "modules/links",
		TargetFiles: []string{"links.go"},
		Extra:       seedLinkSettings,
	})
}

// seedLinkSettings writes default link URLs into the settings store.
// SetDefault preserves user-edited values across re-installs, mirroring the
// write-if-absent file contract.
func seedLinkSettings(env *Env) error {
	settings := env.Project.Settings()

	wrote := false
	for key, value := range map[string]string{
		LinkStoreURL:   "https://play.example.com/store/app",
		LinkRateURL:    "https://play.example.com/store/app/reviews",
		LinkPrivacyURL: "https://example.com/privacy",
		LinkSupportURL: "mailto:support@example.com",
	} {
		if settings.SetDefault(key, value) {
			wrote = true
		}
	}

	if !wrote {
		return nil
	}
	output.Debug("seeded link settings")
	return settings.Save()
}
