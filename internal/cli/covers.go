package cli

import (
	"fmt"
	"sort"
)

type CoversCmd struct{}

func (c *CoversCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Covers remaining: %d\n", state.Covers.CoversRemaining)
	if state.Covers.LastCoverGrantMonth != "" {
		fmt.Printf("Last monthly grant: %s\n", state.Covers.LastCoverGrantMonth)
	}
	if state.Covers.LastEvaluationDate != "" {
		fmt.Printf("Evaluated through: %s\n", state.Covers.LastEvaluationDate)
	}

	if len(state.Covers.CoveredDates) == 0 {
		fmt.Println("No covered dates.")
		return nil
	}

	covered := append([]string(nil), state.Covers.CoveredDates...)
	sort.Strings(covered)
	fmt.Println("Covered dates:")
	for _, d := range covered {
		fmt.Printf("  %s\n", d)
	}
	return nil
}
