package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/elcond/pkg"
)

// FormatJSON writes v as JSON. Trees, nodes and leaves are converted with
// [ToMap] first. An indent of 0 writes compact output.
func FormatJSON(_ context.Context, w io.Writer, v any, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(ToMap(v), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(ToMap(v))
	}

	if err != nil {
		return pkg.ErrJSONMarshal.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes v as YAML. An indent of 0 writes flow style.
func FormatYAML(ctx context.Context, w io.Writer, v any, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, ToMap(v), opts...)
	if err != nil {
		return pkg.ErrYAMLMarshal.Wrap(err)
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
