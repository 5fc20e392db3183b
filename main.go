package main

import (
	"flag"
	"log"

	"github.com/gonewx/lostpacket/pkg/app"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", config.DefaultLostPacketConfigPath, "Lost packet config file (embedded or on disk)")
	appNameFlag = flag.String("app-name", app.DefaultAppName, "Storage directory name for settings and saves")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		AppName:    *appNameFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := gameApp.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Lost Packets")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 关闭窗口时由 App.Update 保存进度后退出
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
