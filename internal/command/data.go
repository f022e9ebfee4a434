package command

import "strings"

// Data is passed to a firing command
type Data struct {
	Args         []string
	OriginalArgs string
	Manager      *Manager
}

// Reply sends msg back to whoever ran the command
func (d *Data) Reply(msg string) {
	d.Manager.reply(msg)
}

// Replyf is Reply with formatting
func (d *Data) Replyf(format string, args ...interface{}) {
	d.Manager.replyf(format, args...)
}

func (d *Data) String() string {
	return strings.Join(d.Args, " ")
}
