package report

import (
	"callscan/internal/core/config"
	"callscan/internal/core/errors"
	"callscan/internal/core/ports"
	"fmt"
	"io"
)

// Render writes res to w in the named output format.
func Render(w io.Writer, format string, res ports.AnalyzeResult) error {
	var out string
	switch format {
	case config.FormatNode, "":
		out = FormatNode(res.Usages) + "\n"
	case config.FormatJSON:
		data, err := FormatJSON(res.Usages)
		if err != nil {
			return err
		}
		out = data + "\n"
	case config.FormatPretty:
		out = FormatPretty(res)
	default:
		return errors.New(errors.CodeNotSupported, fmt.Sprintf("unknown output format: %s", format))
	}
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "write report")
	}
	return nil
}
