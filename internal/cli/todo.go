package cli

import (
	"fmt"
	"strings"

	"github.com/iblamekonradzuse/habit-tracker/internal/models"
	"github.com/iblamekonradzuse/habit-tracker/internal/validation"
)

type TodoAddCmd struct {
	Description []string `arg:"" help:"Todo description."`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	desc := strings.TrimSpace(strings.Join(c.Description, " "))
	if err := validation.TodoDescription(desc); err != nil {
		return err
	}

	todos, err := ctx.Store.LoadTodos()
	if err != nil {
		return err
	}

	todos = append(todos, models.NewTodo(desc))
	if err := ctx.Store.SaveTodos(todos); err != nil {
		return err
	}

	fmt.Printf("Added todo %q\n", desc)
	return nil
}

type TodoListCmd struct {
	Pending bool `short:"p" help:"Show only uncompleted todos."`
}

func (c *TodoListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	todos, err := ctx.Store.LoadTodos()
	if err != nil {
		return err
	}
	if len(todos) == 0 {
		fmt.Println("No todos found")
		return nil
	}

	for i, t := range todos {
		if c.Pending && t.Completed {
			continue
		}
		fmt.Printf("  %d. %s %s\n", i+1, completionMark(t.Completed), t.Description)
	}
	return nil
}

type TodoToggleCmd struct {
	Number int `arg:"" help:"Todo number as shown by 'todo list'."`
}

func (c *TodoToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	todos, err := ctx.Store.LoadTodos()
	if err != nil {
		return err
	}

	if c.Number < 1 || c.Number > len(todos) {
		return fmt.Errorf("todo %d not found (have %d)", c.Number, len(todos))
	}

	todos[c.Number-1].ToggleCompletion()
	if err := ctx.Store.SaveTodos(todos); err != nil {
		return err
	}

	state := "pending"
	if todos[c.Number-1].Completed {
		state = "done"
	}
	fmt.Printf("Todo %q is now %s\n", todos[c.Number-1].Description, state)
	return nil
}

type TodoDeleteCmd struct {
	Number int `arg:"" help:"Todo number as shown by 'todo list'."`
}

func (c *TodoDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	todos, err := ctx.Store.LoadTodos()
	if err != nil {
		return err
	}

	if c.Number < 1 || c.Number > len(todos) {
		return fmt.Errorf("todo %d not found (have %d)", c.Number, len(todos))
	}

	desc := todos[c.Number-1].Description
	todos = append(todos[:c.Number-1], todos[c.Number:]...)
	if err := ctx.Store.SaveTodos(todos); err != nil {
		return err
	}

	fmt.Printf("Deleted todo %q\n", desc)
	return nil
}
