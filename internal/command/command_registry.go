package command

import "sort"

var registry = map[string]Command{}

// RegisterCommand registers a command, applying middlewares outermost-last.
func RegisterCommand(cmd Command, middlewares ...Middleware) {
	for _, m := range middlewares {
		cmd = m(cmd)
	}
	registry[cmd.Name()] = cmd
}

func GetCommand(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

func AllCommands() []Command {
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}
