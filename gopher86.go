// This file is part of Gopher86.
//
// Gopher86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher86.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/digest"
	"github.com/jetsetilly/gopher86/disassembly"
	"github.com/jetsetilly/gopher86/dump"
	"github.com/jetsetilly/gopher86/hardware"
	"github.com/jetsetilly/gopher86/hardware/govern"
	"github.com/jetsetilly/gopher86/hardware/preferences"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/jetsetilly/gopher86/modalflag"
	"github.com/jetsetilly/gopher86/performance"
	"github.com/jetsetilly/gopher86/prefs"
	"github.com/jetsetilly/gopher86/programloader"
	"github.com/jetsetilly/gopher86/script"
	"github.com/jetsetilly/gopher86/statsview"
	"github.com/jetsetilly/gopher86/terminal/easyterm"
	"github.com/jetsetilly/gopher86/version"
)

// exit values
const (
	exitUsage = 10
	exitError = 20
)

// curated error pattern for errors in the command line arguments
const usageError = "usage: %v"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// register a function to be called by the main thread before the program
	// exits. the function will be called even if the program is interrupted.
	//
	// takes a func() argument.
	reqCleanUp stateReq = "CLEANUP"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest

	// interrupt signals are forwarded to the launch() goroutine. the channel
	// is buffered by one so that a second interrupt can be detected
	interrupt chan bool
}

func newMainSync() *mainSync {
	return &mainSync{
		state:     make(chan stateRequest),
		interrupt: make(chan bool, 1),
	}
}

// interrupted returns true if an interrupt signal has been received.
func (sync *mainSync) interrupted() bool {
	select {
	case <-sync.interrupt:
		return true
	default:
	}
	return false
}

func main() {
	sync := newMainSync()

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// functions to call before exiting
	var cleanUp []func()

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			select {
			case sync.interrupt <- true:
			default:
				// the previous interrupt has not been acknowledged. launch()
				// is probably blocked waiting for console input
				fmt.Fprintln(os.Stderr, "\r")
				exitVal = exitError
				done = true
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqCleanUp:
				if f, ok := state.args.(func()); ok {
					cleanUp = append(cleanUp, f)
				} else {
					panic(fmt.Sprintf("cannot convert %s arguments into func()", reqCleanUp))
				}
			}
		}
	}

	for i := len(cleanUp) - 1; i >= 0; i-- {
		cleanUp[i]()
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitUsage}
		return
	}

	if *showVersion {
		fmt.Println(version.String())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* error in %s mode: %s\n", md.String(), err)
		if curated.Is(err, usageError) {
			sync.state <- stateRequest{req: reqQuit, args: exitUsage}
		} else {
			sync.state <- stateRequest{req: reqQuit, args: exitError}
		}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// programArg returns the single program argument or a usage error.
func programArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf(usageError, fmt.Sprintf("program file required for %s mode", md))
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf(usageError, fmt.Sprintf("too many arguments for %s mode", md))
}

// parse the mode's flags. the returned bool is false if the mode should end
// without an error, which happens when help has been requested.
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(usageError, err)
	}
	return true, nil
}

// newPreferences creates the hardware preferences. the command line
// preferences are applied when the preferences are loaded.
func newPreferences(prefsFile string, cmdline string) (*preferences.Preferences, error) {
	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer prefs.PopCommandLineStack()
	}

	if prefsFile != "" {
		return preferences.NewPreferencesFromFile(prefsFile)
	}
	return preferences.NewPreferences()
}

// newLoader creates a program loader using the load preferences.
func newLoader(filename string, p *preferences.Preferences) programloader.Loader {
	ld := programloader.NewLoader(filename)
	ld.Origin = preferences.Uint32(p.LoadOrigin)
	ld.Size = p.LoadSize.Get().(int)
	return ld
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stderr")
	trace := md.AddBool("trace", false, "log every executed instruction (implies -log)")
	cmdlinePrefs := md.AddString("prefs", "", "preferences to apply for this run only. eg. \"hardware.cpu.eip::0x0000\"")
	prefsFile := md.AddString("prefsfile", "", "use an alternative preferences file")
	scriptFile := md.AddString("script", "", "control execution with a Lua script")
	dotFile := md.AddString("dot", "", "write CPU state as a Graphviz dot graph at the end of the run")
	profile := md.AddString("profile", "none", "run with profiling: cpu, mem or all (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	quiet := md.AddBool("quiet", false, "do not print register dumps")
	printDigest := md.AddBool("digest", false, "print the execution digest at the end of the run")

	if ok, err := parse(md); !ok {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(usageError, err)
	}

	// console output goes to stdout so the log is echoed to stderr
	if *log || *trace {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stderr)
	}

	p, err := newPreferences(*prefsFile, *cmdlinePrefs)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(p, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	m.Trace = *trace

	if *printDigest {
		m.Digest = digest.NewExecution()
	}

	ld := newLoader(filename, p)
	err = m.AttachProgram(&ld)
	if err != nil {
		return err
	}

	// keypresses are sent to the console without waiting for return
	term, err := easyterm.NewTerminal(os.Stdin)
	if err != nil {
		return err
	}
	err = term.CBreakMode()
	if err != nil {
		return err
	}
	defer term.CleanUp()
	sync.state <- stateRequest{req: reqCleanUp, args: func() { _ = term.CleanUp() }}

	if !*quiet {
		_ = dump.Registers(os.Stderr, m.CPU)
	}

	runner := func() error {
		if *scriptFile != "" {
			scr := script.NewScript(m, os.Stdout)
			defer scr.Close()
			return scr.RunFile(*scriptFile)
		}

		performanceBrake := 0
		startTime := time.Now()

		state, err := m.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				if sync.interrupted() {
					return govern.Ending, nil
				}
			}
			return govern.Running, nil
		})

		meas := performance.Measurement{
			Instructions: m.InstructionCount,
			Duration:     time.Since(startTime),
		}
		logger.Logf(logger.Allow, "gopher86", "%s: %s", state, meas)

		return err
	}

	err = performance.RunProfiler(prf, "run", runner)

	if !*quiet {
		_ = dump.Registers(os.Stderr, m.CPU)
	}

	if m.Digest != nil {
		fmt.Fprintf(os.Stderr, "digest: %s (%d instructions)\n", m.Digest.Hash(), m.Digest.Count)
	}

	if *dotFile != "" {
		if dotErr := writeDot(*dotFile, m); dotErr != nil && err == nil {
			err = dotErr
		}
	}

	return err
}

func writeDot(filename string, m *hardware.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	dump.Graph(f, m.CPU)
	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddHex("origin", programloader.DefaultOrigin, "address of the first byte of the program")
	size := md.AddInt("size", programloader.DefaultSize, "maximum number of bytes to disassemble (0 for entire file)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	labels := md.AddBool("labels", true, "label the targets of jumps and calls")

	if ok, err := parse(md); !ok {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	if *size < 0 {
		return curated.Errorf(usageError, fmt.Sprintf("size cannot be negative (%d)", *size))
	}

	ld := programloader.NewLoader(filename)
	ld.Origin = *origin
	ld.Size = *size

	dsm, err := disassembly.FromLoader(&ld)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Labels:   *labels,
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	cmdlinePrefs := md.AddString("prefs", "", "preferences to apply for this run only")
	prefsFile := md.AddString("prefsfile", "", "use an alternative preferences file")
	profile := md.AddString("profile", "none", "run with profiling: cpu, mem or all (comma separated)")

	if ok, err := parse(md); !ok {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(usageError, err)
	}

	if _, err := time.ParseDuration(*duration); err != nil {
		return curated.Errorf(usageError, err)
	}

	p, err := newPreferences(*prefsFile, *cmdlinePrefs)
	if err != nil {
		return err
	}

	// the console is disconnected from the host during performance checks
	m, err := hardware.NewMachine(p, nil, io.Discard)
	if err != nil {
		return err
	}

	ld := newLoader(filename, p)
	err = m.AttachProgram(&ld)
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, prf, m, *duration)
	return err
}
