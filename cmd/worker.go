//go:build tinygo

package cmd

import (
	"fmt"
	"machine"
	"time"

	"tinygo.org/x/drivers/ws2812"
)

// RunWorker receives wire commands from the painter and mirrors them onto
// the LED matrix.
func RunWorker(config Settings, uart *machine.UART, led machine.Pin) {
	fmt.Println("Starting Worker Loop")

	// displayFrame owns the frame; commands reach it only through this channel.
	cmdChan := make(chan Command, 32)

	// Start strip refresh routine in background
	go displayFrame(NewFrame(config.SideLength), cmdChan)

	var lines LineBuffer
	for {
		for uart.Buffered() > 0 {
			b, err := uart.ReadByte()
			if err != nil {
				break
			}
			line, ok := lines.Feed(b)
			if !ok {
				continue
			}

			cmd, err := DecodeCommand(line)
			if err != nil {
				fmt.Println("Bad command:", err)
				continue
			}

			led.High()
			cmdChan <- cmd
		}
		led.Low()
		// Small sleep to yield if loop is tight, though Buffered() check is fast
		time.Sleep(time.Millisecond)
	}
}

func displayFrame(frame *Frame, cmdChan <-chan Command) {
	ledPin := machine.GP2
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	strip := ws2812.New(ledPin)

	// Start dark
	if err := strip.WriteColors(frame.Pixels()); err != nil {
		fmt.Println("Strip write failed:", err)
	}

	for cmd := range cmdChan {
		// Fold everything already queued into one strip write.
		for _, err := range frame.ApplyBatch(cmd, cmdChan) {
			fmt.Println("Rejected command:", err)
		}

		if err := strip.WriteColors(frame.Pixels()); err != nil {
			fmt.Println("Strip write failed:", err)
		}
		// Delay for the WS2812 reset pulse
		time.Sleep(300 * time.Microsecond)
	}
}
