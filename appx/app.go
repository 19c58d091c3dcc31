package appx

import (
	"context"
	"io"

	"github.com/Abraxas-365/wsapix/actionx"
	"github.com/Abraxas-365/wsapix/cachex"
	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/docx"
	"github.com/Abraxas-365/wsapix/eventx"
	"github.com/Abraxas-365/wsapix/logx"
	"github.com/Abraxas-365/wsapix/triggerx"
)

// App holds the wired components
type App struct {
	Settings   *Settings
	Client     *wsapi.Client
	Store      cachex.Store
	Cache      *cachex.Cache
	Router     *actionx.Router
	Bus        *eventx.MemoryBus
	Translator *triggerx.Translator
	Docs       *docx.Generator
}

// New wires the components from settings. The caller closes the App.
func New(ctx context.Context, s *Settings) (*App, error) {
	logx.Configure(s.Log.Level, s.Log.Format)

	store, err := cachex.Open(ctx, cachex.Config{
		Driver:    s.Cache.Driver,
		RedisURL:  s.Cache.RedisURL,
		KeyPrefix: s.Cache.KeyPrefix,
	})
	if err != nil {
		return nil, err
	}

	client := wsapi.NewClient(wsapi.Config{
		BaseURL:    s.Gateway.BaseURL,
		APIKey:     s.Gateway.APIKey,
		InstanceID: s.Gateway.InstanceID,
		Timeout:    s.Gateway.Timeout,
	})

	cache := cachex.New(store)
	router := actionx.NewRouter(client, cache, actionx.WithDefaultTTL(s.Cache.DefaultTTL))

	bus := eventx.NewMemoryBus()
	translator, err := triggerx.NewTranslator(s.Trigger.Options(), client, triggerx.WithBus(bus))
	if err != nil {
		closeStore(store)
		return nil, err
	}

	logx.With("driver", s.Cache.Driver).With("instanceId", s.Gateway.InstanceID).Info("wsapix ready")

	return &App{
		Settings:   s,
		Client:     client,
		Store:      store,
		Cache:      cache,
		Router:     router,
		Bus:        bus,
		Translator: translator,
		Docs:       docx.NewGenerator(router),
	}, nil
}

// Close releases the cache store
func (a *App) Close() error {
	return closeStore(a.Store)
}

func closeStore(store cachex.Store) error {
	if c, ok := store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
