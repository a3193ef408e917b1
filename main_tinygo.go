//go:build tinygo

package main

import (
	"machine"
	"time"

	"nifri2/pixel-dispatch/cmd"
)

// buildSideLength is set at compile time via -ldflags
// e.g. -ldflags="-X main.buildSideLength=16"
var buildSideLength string

var config = cmd.Settings{
	Role:       cmd.Worker,
	SideLength: cmd.ParseSideLength(buildSideLength),
	Baud:       cmd.DefaultBaud,
}

func main() {

	var uart *machine.UART = machine.UART0

	uart.Configure(machine.UARTConfig{
		BaudRate: uint32(config.Baud),
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// blink LED 5 times, 40ms interval, to signal the worker is up
	for i := 0; i < 5; i++ {
		led.High()
		time.Sleep(40 * time.Millisecond)
		led.Low()
		time.Sleep(40 * time.Millisecond)
	}

	cmd.RunWorker(config, uart, led)
}
