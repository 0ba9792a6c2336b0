package renderer

import (
	"encoding/json"
	"io"
)

// JSONRenderer renders the run report in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(report *Report, output io.Writer) error {
	return json.NewEncoder(output).Encode(report)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
