package main

// Command is one parsed input line. The set of commands is closed:
// quitCmd, writeCmd, printCmd, infoCmd and appendCmd.
type Command interface {
	command()
}

// quitCmd leaves the editor; force skips the unsaved changes check.
type quitCmd struct{ force bool }

// writeCmd saves the addressed lines, optionally quitting afterwards.
type writeCmd struct {
	loc  Location
	quit bool
}

type printCmd struct {
	loc      Location
	numbered bool
}

type infoCmd struct{}

// appendCmd enters insertion mode after the addressed line.
type appendCmd struct{ loc Location }

func (quitCmd) command() {}
func (writeCmd) command() {}
func (printCmd) command() {}
func (infoCmd) command() {}
func (appendCmd) command() {}

var verbs = map[string]func(Location) Command{
	"q":  func(Location) Command { return quitCmd{} },
	"Q":  func(Location) Command { return quitCmd{force: true} },
	"w":  func(l Location) Command { return writeCmd{loc: l} },
	"wq": func(l Location) Command { return writeCmd{loc: l, quit: true} },
	"p":  func(l Location) Command { return printCmd{loc: l} },
	"n":  func(l Location) Command { return printCmd{loc: l, numbered: true} },
	"?":  func(Location) Command { return infoCmd{} },
	"a":  func(l Location) Command { return appendCmd{loc: l} },
}

// parseCommand parses a whole command line: an optional location
// followed by a verb.
func parseCommand(line string) (Command, error) {
	var in input
	in.reset(line)
	loc, err := in.location()
	if err != nil {
		return nil, err
	}
	verb := in.rest()
	if verb == "" {
		return nil, ErrUnexpectedEndOfCommand
	}
	cmd, ok := verbs[verb]
	if !ok {
		return nil, ErrUnexpectedCharacter
	}
	return cmd(loc), nil
}
