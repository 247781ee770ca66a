package inline

import (
	"encoding/json"
	"io"

	"github.com/OhadRubin/workspace-colors/customization"
	"github.com/OhadRubin/workspace-colors/derive"
)

// Color is one derived result.
type Color struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`

	Base           string                 `json:"base"`
	Bright         string                 `json:"bright"`
	Muted          string                 `json:"muted"`
	Customizations customization.StyleMap `json:"customizations"`

	Contrast []derive.ContrastEntry `json:"contrast"`
}

type Output struct {
	Query   string   `json:"query"`
	Variant string   `json:"variant"`
	Applied string   `json:"applied,omitempty"`
	Result  []*Color `json:"result"`
}

func writeJson(out io.Writer, output *Output) error {
	if output.Result == nil {
		output.Result = []*Color{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
