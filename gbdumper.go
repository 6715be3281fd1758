// This file is part of gbdumper.
//
// gbdumper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbdumper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbdumper.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/dumper"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/hardware/bus/remotebus"
	"github.com/jetsetilly/gbdumper/hardware/bus/serialbus"
	"github.com/jetsetilly/gbdumper/hardware/bus/simbus"
	"github.com/jetsetilly/gbdumper/logger"
	"github.com/jetsetilly/gbdumper/modalflag"
	"github.com/jetsetilly/gbdumper/prefs"
	"github.com/jetsetilly/gbdumper/statsview"
	"github.com/jetsetilly/gbdumper/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// number of log entries shown after an error
const errorTail = 10

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch the program with the command line arguments. returns the exit value
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("INFO", "DUMP", "READRAM", "WRITERAM", "VERIFY", "SERVE", "VERSION")
	md.AdditionalHelp("the cartridge is read through a serial adapter unless -sim or -remote is specified")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "INFO":
		err = info(md)
	case "DUMP":
		err = dumpROM(md)
	case "READRAM":
		err = dumpRAM(md)
	case "WRITERAM":
		err = restoreRAM(md)
	case "VERIFY":
		err = verify(md)
	case "SERVE":
		err = serve(md)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		if curated.Is(err, errParse) {
			return exitParseError
		}
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		if !curated.Is(err, errUsage) {
			logger.Tail(output, errorTail)
		}
		return exitModeError
	}

	return exitOK
}

// parse results other than ParseContinue are returned as errParse. help
// messages and parse errors have already been printed
const errParse = "parse: %v"

// errUsage indicates incorrect use of the arguments. the log is not useful in
// this case
const errUsage = "usage: %v"

// flags common to every mode that uses a cartridge
type common struct {
	md *modalflag.Modes

	port     *string
	baud     *int
	sim      *string
	remote   *string
	prefs    *string
	trace    *bool
	log      *bool
	stats    *bool
	strict   *bool
	progress *bool
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		md:       md,
		port:     md.AddString("port", "", "serial port of the adapter (overrides adapter.port)"),
		baud:     md.AddInt("baud", 0, "baud rate of the adapter (overrides adapter.baud)"),
		sim:      md.AddString("sim", "", "use a simulated cartridge created from a ROM file"),
		remote:   md.AddString("remote", "", "use a remote adapter (ws://host:port/bus)"),
		prefs:    md.AddString("prefs", "", "preferences for this run only (key::value; key::value)"),
		trace:    md.AddBool("trace", false, "log every bus operation"),
		log:      md.AddBool("log", false, "echo log to output"),
		stats:    md.AddBool("stats", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		strict:   md.AddBool("strict", false, "treat header warnings as errors (overrides header.strict)"),
		progress: md.AddBool("progress", true, "show progress bar"),
	}
}

// parse arguments for the mode. returns errParse if processing should not
// continue
func (c *common) parse() error {
	p, err := c.md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return curated.Errorf(errParse, "help")
	case modalflag.ParseError:
		fmt.Fprintf(c.md.Output, "* error: %v\n", err)
		return curated.Errorf(errParse, err)
	}

	if *c.log {
		logger.SetEcho(c.md.Output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *c.stats {
		if statsview.Available() {
			statsview.Launch(c.md.Output)
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	return nil
}

// preferences loads the preferences and applies any overrides from the
// command line. overridden values are not saved
func (c *common) preferences() (*dumper.Preferences, error) {
	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	p, err := dumper.NewPreferences()
	if err != nil {
		return nil, err
	}

	var set []error
	c.md.Visit(func(flag string) {
		switch flag {
		case "port":
			set = append(set, p.Port.Set(*c.port))
		case "baud":
			set = append(set, p.Baud.Set(*c.baud))
		case "strict":
			set = append(set, p.Strict.Set(*c.strict))
		}
	})
	for _, err := range set {
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// open the bus specified by the command line and preferences
func (c *common) open(p *dumper.Preferences) (bus.Bus, *bus.Counter, error) {
	var b bus.Bus

	switch {
	case *c.sim != "" && *c.remote != "":
		return nil, nil, curated.Errorf(errUsage, "-sim and -remote can not be used together")

	case *c.sim != "":
		rom, err := os.ReadFile(*c.sim)
		if err != nil {
			return nil, nil, err
		}
		b, err = simbus.NewCartridge(rom)
		if err != nil {
			return nil, nil, err
		}

	case *c.remote != "":
		var err error
		b, err = remotebus.Dial(*c.remote, p.Timeout.Duration())
		if err != nil {
			return nil, nil, err
		}

	default:
		var err error
		b, err = serialbus.Open(serialbus.Options{
			Port:    p.Port.String(),
			Baud:    p.Baud.Get().(int),
			Driver:  p.Driver.String(),
			Timeout: p.Timeout.Duration(),
		})
		if err != nil {
			return nil, nil, err
		}
	}

	logger.Logf(logger.Allow, "gbdumper", "using %s", b)

	if *c.trace {
		b = bus.NewTrace(b, logger.Allow)
	}

	cnt := bus.NewCounter(b)
	return cnt, cnt, nil
}

// close the bus and log the bus statistics
func closeBus(b bus.Bus, cnt *bus.Counter) {
	logger.Logf(logger.Allow, "gbdumper", "bus operations: %s", cnt)
	if err := bus.Close(b); err != nil {
		logger.Logf(logger.Allow, "gbdumper", "closing bus: %v", err)
	}
}

// prepare the flags, preferences and bus common to all cartridge modes. the
// returned function must be called when the bus is no longer required
func (c *common) dumper() (*dumper.Dumper, func(), error) {
	p, err := c.preferences()
	if err != nil {
		return nil, nil, err
	}

	b, cnt, err := c.open(p)
	if err != nil {
		return nil, nil, err
	}

	opts := dumper.Options{
		Output: c.md.Output,
		Timing: p.Timing(),
		Strict: p.Strict.Get().(bool),
	}
	if *c.progress {
		opts.Progress = c.md.Output
	}

	return dumper.NewDumper(b, opts), func() { closeBus(b, cnt) }, nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	memviz := md.AddString("memviz", "", "write graphviz description of the cartridge to file")
	if err := c.parse(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(errUsage, "too many arguments for INFO mode")
	}

	dmp, done, err := c.dumper()
	if err != nil {
		return err
	}
	defer done()

	h, err := dmp.Info()
	if err != nil {
		return err
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		dmp.Memviz(f, h)
	}

	return nil
}

func dumpROM(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	output := md.AddString("o", "", "output file (default is created from the cartridge title)")
	if err := c.parse(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(errUsage, "too many arguments for DUMP mode")
	}

	dmp, done, err := c.dumper()
	if err != nil {
		return err
	}
	defer done()

	_, err = dmp.DumpROM(*output)
	return err
}

func dumpRAM(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	output := md.AddString("o", "", "output file (default is created from the cartridge title)")
	if err := c.parse(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(errUsage, "too many arguments for READRAM mode")
	}

	dmp, done, err := c.dumper()
	if err != nil {
		return err
	}
	defer done()

	_, err = dmp.DumpRAM(*output)
	return err
}

func restoreRAM(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	if err := c.parse(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(errUsage, "WRITERAM mode requires one RAM image (raw, gz, zip or 7z)")
	}

	dmp, done, err := c.dumper()
	if err != nil {
		return err
	}
	defer done()

	_, err = dmp.RestoreRAM(md.GetArg(0))
	return err
}

func verify(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	if err := c.parse(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(errUsage, "VERIFY mode requires one ROM file")
	}

	dmp, done, err := c.dumper()
	if err != nil {
		return err
	}
	defer done()

	v, err := dmp.Verify(md.GetArg(0))
	if err != nil {
		return err
	}
	if !v.Match {
		return fmt.Errorf("ROM does not match %s", md.GetArg(0))
	}

	return nil
}

func serve(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	addr := md.AddString("addr", "localhost:12601", "address to serve the bus on")
	if err := c.parse(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(errUsage, "too many arguments for SERVE mode")
	}
	if strings.TrimSpace(*c.remote) != "" {
		return curated.Errorf(errUsage, "a remote bus can not be served")
	}

	p, err := c.preferences()
	if err != nil {
		return err
	}

	b, cnt, err := c.open(p)
	if err != nil {
		return err
	}
	defer closeBus(b, cnt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(md.Output, "serving bus at ws://%s%s\n", *addr, remotebus.Path)

	return remotebus.NewServer(b).ListenAndServe(ctx, *addr)
}
