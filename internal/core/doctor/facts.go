package doctor

import (
	"context"

	"github.com/hay-kot/factprobe/internal/core/fact"
)

// FactsCheck resolves every registered fact. Absent facts are warnings since
// absence is a normal outcome on hosts without the underlying tool.
type FactsCheck struct {
	collector *fact.Collector
}

// NewFactsCheck creates a new facts check.
func NewFactsCheck(collector *fact.Collector) *FactsCheck {
	return &FactsCheck{collector: collector}
}

func (c *FactsCheck) Name() string {
	return "Facts"
}

func (c *FactsCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	results, err := c.collector.CollectAll(ctx)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "collect",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	if len(results) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "registry",
			Status: StatusWarn,
			Detail: "no facts registered",
		})
		return result
	}

	for _, r := range results {
		if v, ok := r.Value.Get(); ok {
			result.Items = append(result.Items, CheckItem{Label: r.Name, Status: StatusPass, Detail: v})
			continue
		}
		result.Items = append(result.Items, CheckItem{Label: r.Name, Status: StatusWarn, Detail: "absent"})
	}

	return result
}
