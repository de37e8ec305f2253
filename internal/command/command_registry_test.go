package command

import "testing"

type stubCommand struct {
	name string
	ran  int
}

func (c *stubCommand) Name() string        { return c.name }
func (c *stubCommand) Description() string { return "stub" }
func (c *stubCommand) Group() string       { return "test" }
func (c *stubCommand) Category() string    { return "Test" }
func (c *stubCommand) Run(ctx interface{}) error {
	c.ran++
	return nil
}

func resetRegistry() {
	registry = map[string]Command{}
}

func TestRegisterAndGet(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	cmd := &stubCommand{name: "alpha"}
	RegisterCommand(cmd)

	got, ok := GetCommand("alpha")
	if !ok {
		t.Fatal("registered command not found")
	}
	if err := got.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if cmd.ran != 1 {
		t.Errorf("ran = %d, want 1", cmd.ran)
	}

	if _, ok := GetCommand("missing"); ok {
		t.Error("GetCommand found an unregistered command")
	}
}

func TestAllCommandsSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	RegisterCommand(&stubCommand{name: "zeta"})
	RegisterCommand(&stubCommand{name: "alpha"})
	RegisterCommand(&stubCommand{name: "mid"})

	all := AllCommands()
	if len(all) != 3 {
		t.Fatalf("AllCommands returned %d, want 3", len(all))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if all[i].Name() != want {
			t.Errorf("command %d = %q, want %q", i, all[i].Name(), want)
		}
	}
}

func TestMiddlewareWrapsInOrder(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	var order []string
	tag := func(label string) Middleware {
		return func(cmd Command) Command {
			return &wrappedCommand{
				Command: cmd,
				wrap: func(ctx interface{}) error {
					order = append(order, label)
					return cmd.Run(ctx)
				},
			}
		}
	}

	inner := &stubCommand{name: "wrapped"}
	RegisterCommand(inner, tag("first"), tag("second"))

	cmd, _ := GetCommand("wrapped")
	if err := cmd.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The last middleware applied is the outermost wrapper.
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("middleware order = %v, want [second first]", order)
	}
	if inner.ran != 1 {
		t.Errorf("inner ran = %d, want 1", inner.ran)
	}
}
