package doctor

import (
	"context"
	"os/exec"
)

// lookPathFunc is the function used to find executables on PATH.
// Package-level variable to allow test overrides.
var lookPathFunc = exec.LookPath

// ToolsCheck verifies that the interpreters facts shell out to are on $PATH.
// None of them are required; a missing tool only means its facts are absent.
type ToolsCheck struct {
	php string
}

// NewToolsCheck creates a new tools check for the given php binary name.
func NewToolsCheck(php string) *ToolsCheck {
	return &ToolsCheck{php: php}
}

func (c *ToolsCheck) Name() string {
	return "Tools"
}

func (c *ToolsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if path, err := lookPathFunc(c.php); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  c.php,
			Status: StatusWarn,
			Detail: "not found on PATH (php facts will be absent)",
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  c.php,
			Status: StatusPass,
			Detail: path,
		})
	}

	return result
}
