package command

import "fmt"

// Callback is the function run when a command fires
type Callback func(data *Data)

// Command is a named action in the shell
type Command interface {
	Fire(data *Data)
	Help() string
	Name() string
}

// SingleCommand is a Command backed by a Callback
type SingleCommand struct {
	minArgs  int
	callback Callback
	help     string
	name     string
}

// Fire runs the callback, or replies with the help text if there are not enough arguments
func (c *SingleCommand) Fire(data *Data) {
	if len(data.Args) < c.minArgs {
		data.Reply(fmt.Sprintf("%s needs at least %d argument(s): %s", c.name, c.minArgs, c.help))
		return
	}

	if c.callback != nil {
		c.callback(data)
	}
}

func (c *SingleCommand) Help() string { return c.help }
func (c *SingleCommand) Name() string { return c.name }
