package main

import (
	"context"
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"ferrix-agent/internal/collector"
	"ferrix-agent/internal/config"
	"ferrix-agent/internal/export"
	"ferrix-agent/internal/model"
)

func main() {
	var (
		jsonOut   = flag.BoolP("json", "j", false, "compact JSON output (default)")
		prettyOut = flag.BoolP("json-pretty", "J", false, "indented JSON output")
		xmlOut    = flag.BoolP("xml", "x", false, "XML output")
		version   = flag.BoolP("version", "V", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(config.HardcodedVersion)
		return
	}
	if countTrue(*jsonOut, *prettyOut, *xmlOut) > 1 {
		fmt.Fprintln(os.Stderr, "at most one output format may be selected")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.BuildLogger(cfg)

	c := collector.New(cfg, logger)
	inv := c.Collect(context.Background())

	out, err := render(inv, *prettyOut, *xmlOut)
	if err != nil {
		logger.Error("render inventory failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// render picks the output codec. Section errors inside the inventory
// do not affect the exit code; only a render failure does.
func render(inv model.Inventory, pretty, xml bool) ([]byte, error) {
	switch {
	case xml:
		return export.XML(inv)
	case pretty:
		return export.JSONIndent(inv)
	default:
		return export.JSON(inv)
	}
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
