// Command serial-term is a minimal host-side terminal for the board's
// serial console: stdin goes to the port, the port's replies go to stdout.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/tarm/serial"
)

func main() {
	port := flag.String("port", "/dev/ttyUSB0", "serial device")
	baud := flag.Int("baud", 115200, "baud rate")
	flag.Parse()

	p, err := serial.OpenPort(&serial.Config{Name: *port, Baud: *baud})
	if err != nil {
		log.Fatalf("open %s: %v", *port, err)
	}
	defer p.Close()

	go func() {
		if _, err := io.Copy(p, os.Stdin); err != nil {
			log.Fatalf("stdin -> %s: %v", *port, err)
		}
	}()
	if _, err := io.Copy(os.Stdout, p); err != nil {
		log.Fatalf("%s -> stdout: %v", *port, err)
	}
}
