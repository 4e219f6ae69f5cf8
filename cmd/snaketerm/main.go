// Command snaketerm 在终端中运行贪吃蛇
//
// 与桌面版共用会话逻辑和 gdata 最高分存档，画面由 tcell 绘制，音效由 beep 合成
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/snake/pkg/app"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "游戏配置文件路径（默认使用内置默认值）")
	seed := flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	logPath := flag.String("log", "", "日志文件路径（为空时不输出日志）")
	mute := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "snaketerm: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, logPath string, mute bool) error {
	// 终端被 tcell 占用，日志只能写文件
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var cfg *config.GameConfig
	if configPath != "" {
		loaded, err := config.LoadGameConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultGameConfig()
	}

	state := game.NewGameState(app.DefaultAppName)
	session, err := game.NewSession(cfg, utils.NewRandomSource(seed), state.Scores)
	if err != nil {
		return err
	}

	if !mute && state.Settings.GetSettings().SoundEnabled {
		sound, err := newBeepSound()
		if err != nil {
			log.Printf("[Terminal] Audio initialization failed: %v", err)
		} else {
			defer sound.Close()
			session.AddListener(sound)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	newTerminalGame(screen, session).run()
	return nil
}
