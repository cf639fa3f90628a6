package stdlib

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/amber-lang/amber-lsp-analyzer/types"
	"github.com/tidwall/jsonc"
)

//go:embed resources/builtins.jsonc
var builtinManifest embed.FS

// Param is one parameter of a builtin function signature.
type Param struct {
	Name     string
	Type     types.Type
	Optional bool
}

// Function is a single builtin function's signature, as recorded in the
// embedded manifest.
type Function struct {
	Name    string
	Params  []Param
	Returns types.Type
	Public  bool
}

type rawParam struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional"`
}

type rawFunction struct {
	Name    string     `json:"name"`
	Params  []rawParam `json:"params"`
	Returns string     `json:"returns"`
	Public  bool       `json:"public"`
}

type rawManifest struct {
	Functions []rawFunction `json:"functions"`
}

var (
	builtinsOnce sync.Once
	builtins     []Function
	builtinsErr  error
)

// Builtins returns the parsed signature list from the embedded manifest.
// Parsing happens once; subsequent calls return the cached result.
func Builtins() ([]Function, error) {
	builtinsOnce.Do(func() {
		builtins, builtinsErr = loadBuiltins()
	})
	return builtins, builtinsErr
}

func loadBuiltins() ([]Function, error) {
	data, err := builtinManifest.ReadFile("resources/builtins.jsonc")
	if err != nil {
		return nil, fmt.Errorf("stdlib: read builtin manifest: %w", err)
	}

	var raw rawManifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("stdlib: parse builtin manifest: %w", err)
	}

	out := make([]Function, 0, len(raw.Functions))
	for _, rf := range raw.Functions {
		params := make([]Param, 0, len(rf.Params))
		for _, rp := range rf.Params {
			t, err := parseTypeName(rp.Type)
			if err != nil {
				return nil, fmt.Errorf("stdlib: function %q param %q: %w", rf.Name, rp.Name, err)
			}
			params = append(params, Param{Name: rp.Name, Type: t, Optional: rp.Optional})
		}

		returns, err := parseTypeName(rf.Returns)
		if err != nil {
			return nil, fmt.Errorf("stdlib: function %q return type: %w", rf.Name, err)
		}

		out = append(out, Function{
			Name:    rf.Name,
			Params:  params,
			Returns: returns,
			Public:  rf.Public,
		})
	}
	return out, nil
}

// parseTypeName parses the manifest's compact type syntax: "Num", "Text",
// "Bool", "Null", "Any", a trailing "?" for Failable, and "[T]" for Array.
// Delegates to the shared surface-syntax parser in [types.Parse]; wrapped so
// manifest-specific error messages stay in this package.
func parseTypeName(name string) (types.Type, error) {
	t, err := types.Parse(name)
	if err != nil {
		return types.Type{}, fmt.Errorf("unrecognized builtin type name %q", name)
	}
	return t, nil
}
