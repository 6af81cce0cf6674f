package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as a JSON object when --json is set so scripted
// callers always get parseable output.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		b, merr := json.Marshal(map[string]string{
			"error": err.Error(),
		})
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
