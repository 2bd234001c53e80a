package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/logchart/internal/chartset"
)

// PresetInfo describes one built-in chart set.
type PresetInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Inputs      []string `json:"inputs"`
	Outputs     []string `json:"outputs"`
}

type presetList []PresetInfo

func (l presetList) String() string {
	var b strings.Builder
	for i, p := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-14s %s\n", p.Name, p.Description)
		fmt.Fprintf(&b, "%-14s reads:  %s\n", "", strings.Join(p.Inputs, ", "))
		fmt.Fprintf(&b, "%-14s writes: %s", "", strings.Join(p.Outputs, ", "))
	}
	return b.String()
}

// NewPresetsCommand creates the presets command.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "presets",
		Short:         "List built-in chart sets",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			var list presetList
			for _, name := range chartset.PresetNames() {
				set, err := chartset.Preset(name)
				if err != nil {
					return fail(formatter, err)
				}
				list = append(list, describePreset(set))
			}
			return formatter.Success(list)
		},
	}
}

func describePreset(set *chartset.ChartSet) PresetInfo {
	info := PresetInfo{Name: set.Name, Description: set.Description}
	for _, job := range set.Jobs {
		if job.KindOrDefault() == chartset.KindVectors {
			info.Inputs = append(info.Inputs, job.Rotation, job.Omega)
		} else {
			info.Inputs = append(info.Inputs, job.Input)
		}
		for _, c := range job.Charts {
			info.Outputs = append(info.Outputs, c.Output)
		}
	}
	return info
}
