package cmd

import (
	"fmt"
	"strconv"

	"github.com/trainingops/dealsync/internal/formation"
	"github.com/trainingops/dealsync/internal/theme"
)

// HoursCmd prints the inferred duration of training labels
type HoursCmd struct {
	Labels []string `arg:"" help:"Training labels to resolve"`
}

// Run executes the hours command
func (h *HoursCmd) Run() error {
	for _, label := range h.Labels {
		hours, ok := formation.ResolveHours(label)
		if !ok {
			fmt.Printf("%s %s\n", theme.LabelStyle.Render(label+":"), theme.MutedStyle.Render("unknown"))
			continue
		}
		fmt.Printf("%s %s\n", theme.LabelStyle.Render(label+":"), theme.ValueStyle.Render(strconv.FormatFloat(hours, 'f', -1, 64)+"h"))
	}
	return nil
}
