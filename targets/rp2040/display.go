//go:build rp2040

package main

import (
	"machine"
	"time"

	"siggen/config"
	"siggen/display"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont/proggy"
)

// initDisplay brings up the SSD1306 on I2C0. GP4 belongs to the encoder,
// so the bus sits on GP16/GP17.
func initDisplay(cfg config.Display) (*display.Text, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       pinSDA,
		SCL:       pinSCL,
	})
	if err != nil {
		return nil, err
	}

	// The panel needs a moment after a cold power-up
	time.Sleep(100 * time.Millisecond)

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Address:  cfg.Address,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearBuffer()
	dev.ClearDisplay()

	text := display.NewText(&dev, &proggy.TinySZ8pt7b)
	text.SetPanelInverter(func(on bool) {
		if on {
			dev.Command(ssd1306.INVERTDISPLAY)
		} else {
			dev.Command(ssd1306.NORMALDISPLAY)
		}
	})
	return text, nil
}
