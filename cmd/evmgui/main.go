package main

import (
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/ligun0805/evm-interactor/internal/config"
	"github.com/ligun0805/evm-interactor/internal/logging"
)

func main() {
	hideConsoleWindow()

	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")
	st := config.Load()

	a := app.New()
	a.Settings().SetTheme(makeTheme("dark", false))

	log, closer, err := logging.NewWithFile(st.LogLevel, st.LogDir, "evmgui_"+time.Now().Format("20060102_150405")+".log")
	if err != nil {
		log = logging.New(st.LogLevel, os.Stderr, true)
		log.Warn().Err(err).Str("dir", st.LogDir).Msg("File logging disabled")
	} else {
		defer closer.Close()
	}

	c := newController(a, st, log)
	w := a.NewWindow("EVM Contract Interactor")
	w.SetContent(c.build(w))
	w.Resize(fyne.NewSize(960, 720))
	w.SetOnClosed(c.onStop)

	c.loadData()
	w.ShowAndRun()
}
