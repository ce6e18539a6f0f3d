package jobe

import (
	"net/http"

	"runbox-api/pkg/sandbox"
)

func init() {
	sandbox.RegisterProvider("jobe", func(name string, cfg *sandbox.ProviderConfig) (sandbox.Provider, error) {
		opts := []ClientOption{}
		if cfg.Timeout > 0 {
			opts = append(opts, WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
		}
		if cfg.APIKey != "" {
			opts = append(opts, WithAPIKey(cfg.APIKey))
		}
		if cfg.LanguageTTL > 0 {
			opts = append(opts, WithLanguageCacheTTL(cfg.LanguageTTL))
		}
		return NewClient(name, cfg.BaseURL, opts...)
	})
}
