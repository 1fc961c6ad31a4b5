package condition

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/elcond/pkg"
)

// JSON encodes form. An indent of 0 writes compact output.
func JSON(form Form, indent int) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(form, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(form)
	}

	if err != nil {
		return nil, pkg.ErrJSONMarshal.Wrap(err)
	}

	return data, nil
}

// YAML encodes form. An indent of 0 writes flow style.
func YAML(ctx context.Context, form Form, indent int) ([]byte, error) {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent), yaml.IndentSequence(true))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, form, opts...)
	if err != nil {
		return nil, pkg.ErrYAMLMarshal.Wrap(err)
	}

	return data, nil
}

// Decode reads a form encoded as JSON or YAML. Input starting with '[' or
// '{' is decoded as JSON.
func Decode(ctx context.Context, data []byte) (Form, error) {
	var form Form

	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		if err := json.Unmarshal(trimmed, &form); err != nil {
			return nil, pkg.ErrDecode.Wrap(err)
		}

		return form, nil
	}

	if err := yaml.UnmarshalContext(ctx, trimmed, &form); err != nil {
		return nil, pkg.ErrDecode.Wrap(err)
	}

	return form, nil
}
