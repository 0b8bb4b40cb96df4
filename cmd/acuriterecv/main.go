// Command acuriterecv decodes AcuRite 00523/00609 433 MHz bursts read
// from a GPIO pin and writes each validated Payload to a serial
// transport.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kreddkrikk/acurite/gpioedge"
	"github.com/kreddkrikk/acurite/pulse/acurite523"
	"github.com/kreddkrikk/acurite/pulse/acurite609"
	"github.com/kreddkrikk/acurite/serialout"
	"github.com/kreddkrikk/acurite/session"
)

var (
	gpioPin  = flag.String("pin", "GPIO27", "GPIO pin wired to the receiver's data line")
	outPort  = flag.String("out", "/dev/ttyUSB0", "serial port to write payloads to")
	outBaud  = flag.Int("baud", 9600, "serial port baud rate")
	pollTime = flag.Duration("poll", 5*time.Minute, "how long to wait for a payload before reporting a timeout")
)

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "acuriterecv: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	source, err := gpioedge.Open(*gpioPin)
	if err != nil {
		return err
	}
	defer source.Close()

	sink, err := serialout.Open(*outPort, *outBaud)
	if err != nil {
		return err
	}
	defer sink.Close()

	sess := session.New(source,
		acurite523.NewModel(acurite523.NewFreezer(), acurite523.NewFridge()),
		acurite609.NewModel(acurite609.NewOutdoor()),
	)
	sess.Start()

	for {
		payload, ok := sess.Available(*pollTime)
		if !ok {
			log.Printf("acuriterecv: timeout waiting for a payload")
			continue
		}
		if err := sink.Write(payload); err != nil {
			log.Printf("acuriterecv: write payload: %v", err)
		}
	}
}
