package main

import (
    "context"
    "embed"

    "chatdesk/internal/gui/config"
    "chatdesk/internal/logging"

    "github.com/rs/zerolog/log"
    "github.com/wailsapp/wails/v2"
    "github.com/wailsapp/wails/v2/pkg/options"
    "github.com/wailsapp/wails/v2/pkg/options/assetserver"
    "github.com/wailsapp/wails/v2/pkg/options/mac"
    "github.com/wailsapp/wails/v2/pkg/options/windows"
)

// フロントエンド静的ファイル（frontend/dist）をバンドル
//go:embed all:frontend/dist
var assets embed.FS

//go:embed build/appicon.png
var appIcon []byte

func main() {
    opts, err := config.LoadOptions(config.NewViper())
    if err != nil { panic(err) }
    closer, err := logging.Init(opts.LogLevel, opts.LogPretty, opts.LogFile)
    if err != nil { panic(err) }
    defer closer.Close()

    log.Info().Str("store", opts.StorePath).Msg("starting chatdesk")
    app := NewApp(config.Open(opts.StorePath), nil, appIcon)
    app.tray.Start()

    if err := wails.Run(&options.App{
        Title:  "chatdesk",
        Width:  1100,
        Height: 760,
        AssetServer: &assetserver.Options{ Assets: assets },
        OnStartup: func(ctx context.Context) { app.startup(ctx) },
        OnShutdown: func(ctx context.Context) { app.shutdown(ctx) },
        OnBeforeClose: func(ctx context.Context) bool { return app.beforeClose(ctx) },
        Bind: []any{app},
        Mac: &mac.Options{
            TitleBar:   mac.TitleBarHiddenInset(),
            Appearance: mac.DefaultAppearance,
        },
        Windows: &windows.Options{
            WebviewIsTransparent: false,
            WindowIsTranslucent:  false,
            BackdropType:         windows.Mica,
        },
        BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
    }); err != nil {
        panic(err)
    }
}
