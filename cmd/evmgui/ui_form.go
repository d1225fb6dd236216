package main

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ligun0805/evm-interactor/internal/config"
	"github.com/ligun0805/evm-interactor/internal/interact"
	"github.com/ligun0805/evm-interactor/internal/keys"
)

// build lays out the window: input form on top, controls, then the log.
func (c *controller) build(w fyne.Window) fyne.CanvasObject {
	c.win = w

	c.chainSel = widget.NewSelect(config.DefaultChainNames, nil)
	c.contract = widget.NewEntry()
	c.contract.SetPlaceHolder("0x...")
	c.contract.SetText(c.st.Contract)
	c.data = widget.NewMultiLineEntry()
	c.data.SetPlaceHolder("calldata hex, 0x optional")
	c.data.SetMinRowsVisible(4)
	c.data.Wrapping = fyne.TextWrapBreak
	c.data.SetText(c.st.Data)
	c.times = widget.NewEntry()
	c.times.SetText(strconv.Itoa(max(c.st.Times, 1)))
	c.gas = widget.NewEntry()
	c.gas.SetPlaceHolder("auto: max(2x estimate, 500000)")
	if c.st.GasLimit > 0 {
		c.gas.SetText(strconv.FormatUint(c.st.GasLimit, 10))
	}
	c.delay = widget.NewEntry()
	c.delay.SetPlaceHolder(interact.DefaultDelay)
	c.delay.SetText(c.st.Delay)

	form := widget.NewCard("Interaction", "", widget.NewForm(
		widget.NewFormItem("Chain", c.chainSel),
		widget.NewFormItem("Contract", c.contract),
		widget.NewFormItem("Calldata", c.data),
		widget.NewFormItem("Times per key", c.times),
		widget.NewFormItem("Gas limit", c.gas),
		widget.NewFormItem("Delay (s, min-max)", c.delay),
	))

	c.startBtn = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), c.onStart)
	c.startBtn.Importance = widget.HighImportance
	c.stopBtn = widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), c.onStop)
	c.stopBtn.Disable()
	c.exportBtn = widget.NewButtonWithIcon("Export Journal", theme.DocumentSaveIcon(), c.exportJournal)

	curTheme := makeTheme("dark", false).(*appTheme)
	themeSel := widget.NewSelect([]string{"Dark", "Light"}, func(s string) {
		mode := "dark"
		if s == "Light" {
			mode = "light"
		}
		curTheme = makeTheme(mode, curTheme.compact).(*appTheme)
		c.app.Settings().SetTheme(curTheme)
	})
	themeSel.SetSelected("Dark")
	compact := widget.NewCheck("Compact", func(b bool) {
		curTheme = makeTheme(curTheme.mode, b).(*appTheme)
		c.app.Settings().SetTheme(curTheme)
	})

	c.progress = widget.NewProgressBar()
	c.progressLbl = widget.NewLabel("")
	controls := container.NewBorder(nil, nil,
		container.NewHBox(c.startBtn, c.stopBtn),
		container.NewHBox(c.exportBtn, themeSel, compact),
		container.NewBorder(nil, nil, widget.NewLabel("Progress:"), c.progressLbl, c.progress),
	)

	c.logBox = widget.NewMultiLineEntry()
	c.logBox.Disable()
	c.logBox.Wrapping = fyne.TextWrapWord
	c.logScroll = container.NewVScroll(c.logBox)
	c.logScroll.SetMinSize(fyne.NewSize(800, 260))
	bg := canvas.NewLinearGradient(color.NRGBA{12, 16, 24, 255}, color.NRGBA{20, 28, 40, 255}, 90)

	return container.NewBorder(container.NewVBox(form, controls), nil, nil, nil, container.NewStack(bg, c.logScroll))
}

// loadData fills the chain selector and reads the key file. Neither failure
// blocks startup.
func (c *controller) loadData() {
	table, created, err := config.LoadChains(c.st.ConfigPath)
	if created {
		c.appendLog(fmt.Sprintf("Created default config file %s", c.st.ConfigPath))
	}
	names := config.DefaultChainNames
	if err != nil {
		c.appendLog(fmt.Sprintf("Failed to load config: %v", err))
		c.log.Error().Err(err).Str("path", c.st.ConfigPath).Msg("Failed to load chain config")
		table = config.ChainTable{}
	} else {
		names = table.Names()
	}
	c.chains = table
	c.chainSel.Options = names
	sel := c.st.Chain
	if _, ok := table[sel]; !ok {
		sel = table.DefaultChain()
	}
	c.chainSel.SetSelected(sel)

	list, err := keys.Load(c.st.KeysPath)
	if err != nil {
		c.appendLog(fmt.Sprintf("Warning: private key file %s not loaded: %v", c.st.KeysPath, err))
		c.log.Warn().Err(err).Str("path", c.st.KeysPath).Msg("Private keys not loaded")
		list = nil
	} else {
		c.appendLog(fmt.Sprintf("Loaded %d private keys", len(list)))
	}
	c.keys = list
}

// request reads the form.
func (c *controller) request() interact.Request {
	return interact.Request{
		Chain:    c.chainSel.Selected,
		Contract: c.contract.Text,
		Data:     c.data.Text,
		Times:    c.times.Text,
		Gas:      c.gas.Text,
		Delay:    c.delay.Text,
	}
}
