package trace

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/errors"
)

// Format is a trace encoding.
type Format int

const (
	// JSON is indented JSON.
	JSON Format = iota
	// YAML is a YAML document.
	YAML
	// CBOR is CBOR with core deterministic encoding: the same timeline always
	// produces the same bytes.
	CBOR
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = stderrors.New("unknown trace format")

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("trace: CBOR encoder initialization failed: " + err.Error())
	}
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat parses json, yaml (or yml) and cbor.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	default:
		return JSON, fmt.Errorf("%w %q: want json, yaml or cbor", ErrUnknownFormat, s)
	}
}

// Export writes tl to w in format f.
func Export(w io.Writer, f Format, tl Timeline) error {
	var err error
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(tl)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(tl); err == nil {
			err = enc.Close()
		}
	case CBOR:
		err = encMode.NewEncoder(w).Encode(tl)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return errors.New("trace.Export", errors.KindExport, err)
	}
	return nil
}
