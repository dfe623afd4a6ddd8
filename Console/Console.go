// Package Console is a line oriented front end to an ordered tree of ints. Every line is a
// command followed by its arguments; after each command the tree is drawn again.
package Console

import (
	"bufio"
	"errors"
	"io"
	"math/rand"

	"github.com/google/shlex"
	"gopkg.in/op/go-logging.v1"

	"github.com/g-m-twostay/ordtree/Render"
	"github.com/g-m-twostay/ordtree/Trees/arrTree"
)

var log = logging.MustGetLogger("console")

const (
	prompt    = "\n > "
	separator = "\n=================================================================\n"
)

// Console owns the tree it edits. It isn't safe for concurrent use.
type Console struct {
	tree *arrTree.OrdTree[int, uint32]
	r    *rand.Rand
	out  *bufio.Writer
	cmds map[string]handler
	// RandMax bounds the values drawn by the random command, exclusive.
	RandMax int
}

// New returns a console writing to out. seed feeds the random command.
func New(out io.Writer, tree *arrTree.OrdTree[int, uint32], seed int64) *Console {
	c := &Console{tree: tree, r: rand.New(rand.NewSource(seed)), out: bufio.NewWriter(out), RandMax: 100}
	c.cmds = map[string]handler{
		"add":    add,
		"has":    has,
		"remove": remove,
		"random": random,
		"help":   help,
	}
	return c
}

// Tree is the tree the console edits.
func (c *Console) Tree() *arrTree.OrdTree[int, uint32] {
	return c.tree
}

// Run reads commands from in until it's exhausted or an exit command. The returned error is
// either a read error or the arrTree.CapacityError that stopped the session.
func (c *Console) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	c.head()
	if err := c.out.Flush(); err != nil {
		return err
	}
	for sc.Scan() {
		c.out.WriteByte('\n')
		quit, err := c.Exec(sc.Text())
		if err != nil {
			c.out.Flush()
			return err
		}
		if quit {
			break
		}
		c.out.WriteString(separator + "\n")
		c.head()
		if err = c.out.Flush(); err != nil {
			return err
		}
	}
	if err := c.out.Flush(); err != nil {
		return err
	}
	return sc.Err()
}

// Exec runs a single command line. quit is true for exit. Errors in the arguments are
// reported to the output, the returned error is only for failures that end the session.
func (c *Console) Exec(line string) (quit bool, err error) {
	words, err := shlex.Split(line)
	if err != nil {
		c.println("Error : " + err.Error())
		return false, nil
	}
	var name string
	if len(words) != 0 {
		name = words[0]
		words = words[1:]
	}
	if name == "exit" {
		log.Debug("exit")
		return true, nil
	}
	h, ok := c.cmds[name]
	if !ok {
		log.Debugf("unknown command %q", name)
		c.println(`Error : unknown command "` + name + `". Type "help" for a list of commands.`)
		return false, nil
	}
	log.Debugf("%s %v", name, words)
	used, err := h(c, words)
	var ce arrTree.CapacityError
	if errors.As(err, &ce) {
		log.Warningf("%s stopped: %s", name, ce)
		return false, ce
	}
	report(c, err)
	if used < len(words) {
		c.println("Error : additional parameters ignored")
	}
	c.out.WriteByte('\n')
	return false, nil
}

func (c *Console) head() {
	if err := Render.Render[uint32](c.out, c.tree); err != nil {
		log.Errorf("drawing the tree: %s", err)
	}
	c.out.WriteString(prompt)
}

func (c *Console) println(s string) {
	c.out.WriteString(s)
	c.out.WriteByte('\n')
}
