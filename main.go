package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/soulwax/darkmoon-sub000/pkg/app"
	"github.com/soulwax/darkmoon-sub000/pkg/embedded"
	"github.com/soulwax/darkmoon-sub000/pkg/scenes"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	watchDir := flag.String("watch", "", "watch this directory for config hot reload (dev mode)")
	flag.Parse()

	// 嵌入资源必须在任何配置加载之前初始化
	embedded.Init(dataFS)

	application, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		WatchDir: *watchDir,
	})
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	ebiten.SetWindowSize(scenes.ViewWidth, scenes.ViewHeight)
	ebiten.SetWindowTitle("Darkmoon Survival")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(application); err != nil {
		log.Fatal(err)
	}
	application.Shutdown()
}
