package cli

import "fmt"

type ListCmd struct {
	Sort    string `short:"s" help:"Sort field (name|start-date|end-date)." default:"name" enum:"name,start-date,end-date"`
	Reverse bool   `short:"r" help:"Reverse the sort order."`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	sortBy, err := parseSortField(c.Sort)
	if err != nil {
		return err
	}

	habits, err := ctx.Registry.ListAll(sortBy, c.Reverse)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println(renderHabitTable(habits))
	return nil
}
