package Console

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// handler runs one command. It returns how many of args it consumed, the rest get reported as
// ignored.
type handler func(c *Console, args []string) (int, error)

var (
	errBadValue = errors.New("Could not parse a value")
	errBadOne   = errors.New("Could not parse the value")
)

// DuplicateError is reported for a value added twice.
type DuplicateError int

func (e DuplicateError) Error() string {
	return fmt.Sprintf("%d is already in the tree.", int(e))
}

// AbsentError is reported for removing a value that isn't there.
type AbsentError int

func (e AbsentError) Error() string {
	return fmt.Sprintf("%d was not in the tree.", int(e))
}

// each parses args as ints until one fails and feeds them to f. Errors of f other than
// DuplicateError or AbsentError stop it.
func each(args []string, f func(int) error) (int, error) {
	var errs *multierror.Error
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return i, multierror.Append(errs, errBadValue)
		}
		if err = f(v); err != nil {
			var de DuplicateError
			var ae AbsentError
			if !errors.As(err, &de) && !errors.As(err, &ae) {
				return i, err
			}
			errs = multierror.Append(errs, err)
		}
	}
	return len(args), errs.ErrorOrNil()
}

func add(c *Console, args []string) (int, error) {
	return each(args, func(v int) error {
		ok, err := c.tree.Add(v)
		if err != nil {
			return err
		}
		if !ok {
			return DuplicateError(v)
		}
		return nil
	})
}

func remove(c *Console, args []string) (int, error) {
	return each(args, func(v int) error {
		if !c.tree.Remove(v) {
			return AbsentError(v)
		}
		return nil
	})
}

func has(c *Console, args []string) (int, error) {
	if len(args) == 0 {
		return 0, errBadOne
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errBadOne
	}
	if c.tree.Has(v) {
		c.println(fmt.Sprintf("%d is in the tree.", v))
	} else {
		c.println(fmt.Sprintf("%d is not in the tree.", v))
	}
	return 1, nil
}

// random adds count values drawn from [0, RandMax). Values already present are skipped.
func random(c *Console, args []string) (int, error) {
	if len(args) == 0 {
		return 0, errBadOne
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || c.RandMax <= 0 {
		return 0, errBadOne
	}
	for range n {
		if _, err = c.tree.Add(c.r.Intn(c.RandMax)); err != nil {
			return 1, err
		}
	}
	return 1, nil
}

const usage = `Commands:
  add V...     add the values
  remove V...  remove the values
  has V        tell whether V is in the tree
  random N     add N random values
  help         show this
  exit         quit`

func help(c *Console, _ []string) (int, error) {
	c.println(usage)
	return 0, nil
}

// report writes every error held by err, one per line.
func report(c *Console, err error) {
	if err == nil {
		return
	}
	var me *multierror.Error
	if errors.As(err, &me) {
		for _, e := range me.Errors {
			c.println("Error : " + e.Error())
		}
		return
	}
	c.println("Error : " + err.Error())
}
