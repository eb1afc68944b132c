package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/bounce/internal/config"
	"github.com/tomz197/bounce/internal/window"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	logger, err := config.NewLogger(os.Stderr, settings.LogLevel)
	if err != nil {
		log.Fatal("create logger", "err", err)
	}

	g, err := window.New(settings, logger)
	if err != nil {
		logger.Fatal("create game", "err", err)
	}

	screen := settings.Tuning.Screen
	ebiten.SetWindowSize(int(screen.Width*settings.Scale), int(screen.Height*settings.Scale))
	ebiten.SetWindowTitle("Bounce")
	ebiten.SetTPS(config.TargetFPS)

	logger.Info("window started", "scale", settings.Scale)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run game", "err", err)
	}
}
