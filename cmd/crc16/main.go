package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	crc "github.com/pd0mz/go-crc"
	"github.com/pd0mz/go-crc/input"
)

var (
	log    = logging.MustGetLogger("crc/cmd/crc16")
	format = logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
)

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

func dump(data []byte) string {
	var s = make([]string, len(data))
	for i, b := range data {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return "[ " + strings.Join(append(s, "]"), " ")
}

func main() {
	configFile := flag.String("config", "", "configuration file")
	engine := flag.String("engine", "", "checksum engine (default crc16/table)")
	source := flag.String("source", "", "message source: hex, bits, text or pcap")
	charset := flag.String("charset", "", "charset for text messages")
	capacity := flag.Int("capacity", 0, "maximum message size in bytes")
	verbose := flag.Bool("verbose", false, "be verbose")
	selfTest := flag.Bool("selftest", false, "verify all engines against their check values and exit")
	flag.Parse()

	var (
		cfg = input.NewConfig("crc16/table")
		err error
	)
	if *configFile != "" {
		if cfg, err = input.LoadConfig(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load %q: %v\n", *configFile, err)
			os.Exit(1)
		}
		if cfg.Engine == "" {
			cfg.Engine = "crc16/table"
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

	if *selfTest {
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
	if e.Width != 16 {
		log.Fatalf("engine %s is not a 16 bit engine", e)
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
		fmt.Printf("%s crc : %s\n", dump(data), e.Format(e.Sum(data)))
	}
}
