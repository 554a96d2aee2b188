package app

import (
	"context"
	"fmt"

	"cratedig/internal/config"
	"cratedig/internal/discogs"
	"cratedig/internal/prefs"
	"cratedig/internal/session"
	"cratedig/internal/ui"
)

// Options configure the cratedig application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cratedig/prefs.toml
	PerPage    int    // overrides the configured page size when > 0
}

// Run boots the cratedig TUI until the context is cancelled or the
// user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PerPage > 0 {
		cfg.PerPage = opts.PerPage
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := discogs.NewClient(cfg.BaseURL, cfg.Token)
	if err != nil {
		return fmt.Errorf("init discogs client: %w", err)
	}

	controller := session.NewController(searchFunc(client))
	defer controller.Close()

	if cfg.PerPage > 0 && cfg.PerPage != session.DefaultPerPage {
		_ = controller.SetPerPage(cfg.PerPage)
	}

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: controller,
		Catalog:    client,
		Currency:   cfg.Currency,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Compact:    userPrefs.CompactRows,
	}
	return ui.Run(uiOpts)
}

// searchFunc adapts the catalog client into the session's outbound
// call, applying the filters that have no wire equivalent to the
// response.
func searchFunc(client *discogs.Client) session.SearchFunc {
	return func(ctx context.Context, params discogs.SearchParams) (*discogs.SearchResponse, error) {
		resp, err := client.Search(ctx, params)
		if err != nil {
			return nil, err
		}
		return discogs.Refine(resp, params), nil
	}
}
