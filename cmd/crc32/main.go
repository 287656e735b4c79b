package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"

	crc "github.com/pd0mz/go-crc"
	"github.com/pd0mz/go-crc/input"
)

var (
	log    = logging.MustGetLogger("crc/cmd/crc32")
	format = logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
)

// checkOrder is the order in which -check prints the engine results.
var checkOrder = []string{"crc32/nul", "crc32/standard", "crc32/reflected", "crc32/table"}

func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
}

func check() {
	for _, name := range checkOrder {
		e, err := crc.Lookup(name)
		if err != nil {
			log.Fatal(err)
		}
		sum := e.Sum([]byte(crc.CheckString))
		if sum != e.Check {
			log.Errorf("%s: %s != %s", e, e.Format(sum), e.Format(e.Check))
		}
		fmt.Println(e.Format(sum))
	}
}

func main() {
	configFile := flag.String("config", "", "configuration file")
	engine := flag.String("engine", "", "checksum engine (default crc32/table)")
	source := flag.String("source", "", "message source: hex, bits, text or pcap")
	charset := flag.String("charset", "", "charset for text messages")
	capacity := flag.Int("capacity", 0, "maximum message size in bytes")
	verbose := flag.Bool("verbose", false, "be verbose")
	checkOnly := flag.Bool("check", false, "print the checksum of \"123456789\" from every engine and exit")
	selfTest := flag.Bool("selftest", false, "verify all engines against their check values and exit")
	flag.Parse()

	var (
		cfg = input.NewConfig("crc32/table")
		err error
	)
	if *configFile != "" {
		if cfg, err = input.LoadConfig(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load %q: %v\n", *configFile, err)
			os.Exit(1)
		}
		if cfg.Engine == "" {
			cfg.Engine = "crc32/table"
		}
	}
	if *engine != "" {
		cfg.Engine = *engine
	}
	if *source != "" {
		cfg.Source = *source
	}
	if *charset != "" {
		cfg.Charset = *charset
	}
	if *capacity != 0 {
		cfg.Capacity = *capacity
	}
	cfg.Verbose = cfg.Verbose || *verbose
	setupLogging(cfg.Verbose)

	switch {
	case *checkOnly:
		check()
		return

	case *selfTest:
		if err := crc.SelfTest(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("ok")
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	e, _ := crc.Lookup(cfg.Engine)
	if e.Width != 32 {
		log.Fatalf("engine %s is not a 32 bit engine", e)
	}
	if e.Name == "crc32/nul" {
		log.Warning("crc32/nul stops at the first zero byte of each message")
	}
	log.Debugf("%s, using %s with %s input", crc.SoftwareID, e, cfg.Source)

	f, err := input.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	messages, err := input.Read(cfg, f)
	if err != nil {
		log.Fatal(err)
	}
	for _, data := range messages {
		log.Debugf("%d bytes", len(data))
		fmt.Println(e.Format(e.Sum(data)))
	}
}
