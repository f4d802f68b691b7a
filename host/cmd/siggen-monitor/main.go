package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"siggen/host/serial"
)

var (
	device      = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud        = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	buttonsOnly = flag.Bool("buttons", false, "Only print button events")
	timestamps  = flag.Bool("timestamps", true, "Prefix lines with the local time")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to signal generator on %s...\n", cfg.Device)
	console, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer console.Close()

	counts := make(map[string]int)
	err = console.Events(func(ev serial.Event) {
		if *buttonsOnly && ev.Button == "" {
			return
		}
		if ev.Button != "" {
			counts[ev.Button]++
		}
		if *timestamps {
			fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05.000"), ev.Line)
		} else {
			fmt.Println(ev.Line)
		}
	})

	if len(counts) > 0 {
		fmt.Println("\nButton events:")
		for name, n := range counts {
			fmt.Printf("  %-14s %d\n", name, n)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading serial: %v\n", err)
		os.Exit(1)
	}
}
