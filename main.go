package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/hnakamur/nescore/nes"
	"github.com/hnakamur/nescore/ui"
)

var (
	width  = flag.Int("width", 256*3, "window width")
	height = flag.Int("height", 240*3, "window height")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		glog.Exit("usage: nescore [flags] <rom-path>")
	}
	romPath := flag.Arg(0)

	romData, err := os.ReadFile(romPath)
	if err != nil {
		glog.Exitf("failed to read %s: %v", romPath, err)
	}

	core := nes.NewCore()
	if err := core.InsertCartridge(romData, romPath); err != nil {
		glog.Exitf("failed to load %s: %v", romPath, err)
	}
	defer func() {
		if err := core.SaveBatteryRAM(); err != nil {
			glog.Errorf("failed to save battery RAM: %v", err)
		}
	}()

	if err := ui.Start(core, *width, *height); err != nil {
		glog.Exitf("run failed: %v", err)
	}
}
