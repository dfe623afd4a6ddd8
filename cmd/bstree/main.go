// Command bstree edits an ordered tree of ints interactively and draws it after every command.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/thought-machine/go-flags"
	"gopkg.in/op/go-logging.v1"

	"github.com/g-m-twostay/ordtree/Console"
	"github.com/g-m-twostay/ordtree/Trees/arrTree"
)

var log = logging.MustGetLogger("bstree")

var opts struct {
	Verbosity int    `short:"v" long:"verbosity" env:"BSTREE_VERBOSITY" default:"3" description:"Verbosity of logging, 0 critical only up to 5 debug"`
	Seed      int64  `long:"seed" env:"BSTREE_SEED" description:"Seed of the random command, the current time if 0"`
	Limit     uint32 `long:"limit" env:"BSTREE_LIMIT" default:"0" description:"Maximum number of nodes, 0 for no limit"`
	Check     bool   `long:"check" env:"BSTREE_CHECK" description:"Validate the whole tree after every change"`
	Args      struct {
		Script string `positional-arg-name:"script" description:"File to read commands from instead of stdin"`
	} `positional-args:"true"`
}

func initLogging(verbosity int) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter("%{time:15:04:05.000} %{level:7s} %{module}: %{message}"))
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.Level(max(0, min(verbosity, int(logging.DEBUG)))), "")
	logging.SetBackend(leveled)
}

func run() error {
	var in io.Reader = os.Stdin
	if opts.Args.Script != "" {
		f, err := os.Open(opts.Args.Script)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	arrTree.Checks = opts.Check
	log.Infof("seed %d, limit %d, checks %v", seed, opts.Limit, opts.Check)
	c := Console.New(os.Stdout, arrTree.NewLimited[int, uint32](0, opts.Limit), seed)
	if err := c.Run(in); err != nil {
		return fmt.Errorf("session ended with %d values: %w", c.Tree().Len(), err)
	}
	return nil
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	initLogging(opts.Verbosity)
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error : Stopped on %v\n", r)
			os.Exit(1)
		}
	}()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error : Stopped on %s\n", err)
		os.Exit(1)
	}
}
