// Package stubgen renders call-recording stub implementations from a YAML
// manifest describing an API interface.
package stubgen

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is wrapped by every manifest validation error.
var ErrInvalidManifest = errors.New("invalid manifest")

// ManifestError pinpoints the function entry that failed validation.
type ManifestError struct {
	Index    int // -1 for manifest-level problems
	Function string
	Reason   string
}

func (e *ManifestError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidManifest, e.Reason)
	}
	if e.Function == "" {
		return fmt.Sprintf("%s: function #%d: %s", ErrInvalidManifest, e.Index, e.Reason)
	}
	return fmt.Sprintf("%s: function #%d (%s): %s", ErrInvalidManifest, e.Index, e.Function, e.Reason)
}

func (e *ManifestError) Unwrap() error {
	return ErrInvalidManifest
}

// Param is a single method parameter.
type Param struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Function describes one stubbed operation.
type Function struct {
	// Name is the call-site identifier recorded in the registry.
	Name string `yaml:"name" json:"name"`
	// Method is the Go method implementing the operation.
	Method  string  `yaml:"method" json:"method"`
	Group   string  `yaml:"group,omitempty" json:"group,omitempty"`
	Params  []Param `yaml:"params,omitempty" json:"params,omitempty"`
	Returns string  `yaml:"returns,omitempty" json:"returns,omitempty"`
	Default string  `yaml:"default,omitempty" json:"default,omitempty"`
}

// ParamList renders the parameters as a Go parameter list.
func (f Function) ParamList() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

// ArgList renders the parameter names as call arguments.
func (f Function) ArgList() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Name
	}
	return strings.Join(parts, ", ")
}

// ResultSuffix renders the result list including its leading space, or "".
func (f Function) ResultSuffix() string {
	if f.Returns == "" {
		return ""
	}
	return " " + f.Returns
}

// Manifest describes the stub file for one API interface.
type Manifest struct {
	Package   string     `yaml:"package"`
	Interface string     `yaml:"interface"`
	Imports   []string   `yaml:"imports,omitempty"`
	Functions []Function `yaml:"functions"`

	// Source names the manifest in the generated header.
	Source string `yaml:"-"`
}

// LoadManifest reads and validates the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Source = filepath.Base(path)
	return m, nil
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Source == "" {
		m.Source = "stubs.yaml"
	}
	return &m, nil
}

// reservedParams are names the generated code already binds: the Stub
// receiver, the record argument and the blank identifier, which cannot be
// forwarded to an override.
var reservedParams = map[string]struct{}{"s": {}, "name": {}, "_": {}}

// Validate checks the manifest for problems that would break generation.
func (m *Manifest) Validate() error {
	if !token.IsIdentifier(m.Package) {
		return &ManifestError{Index: -1, Reason: fmt.Sprintf("package %q is not a valid identifier", m.Package)}
	}
	if !token.IsIdentifier(m.Interface) || !token.IsExported(m.Interface) {
		return &ManifestError{Index: -1, Reason: fmt.Sprintf("interface %q must be an exported identifier", m.Interface)}
	}
	if len(m.Functions) == 0 {
		return &ManifestError{Index: -1, Reason: "no functions declared"}
	}

	methods := make(map[string]int, len(m.Functions))
	names := make(map[string]int, len(m.Functions))
	for i, fn := range m.Functions {
		fail := func(format string, args ...any) error {
			return &ManifestError{Index: i, Function: fn.Name, Reason: fmt.Sprintf(format, args...)}
		}

		if fn.Name == "" {
			return fail("name is required")
		}
		if strings.ContainsAny(fn.Name, "\r\n") {
			return fail("name must be a single line")
		}
		if !token.IsIdentifier(fn.Method) || !token.IsExported(fn.Method) {
			return fail("method %q must be an exported identifier", fn.Method)
		}
		if prev, ok := methods[fn.Method]; ok {
			return fail("method %s already declared by function #%d", fn.Method, prev)
		}
		if prev, ok := names[fn.Name]; ok {
			return fail("identifier already declared by function #%d", prev)
		}
		methods[fn.Method] = i
		names[fn.Name] = i

		seen := make(map[string]struct{}, len(fn.Params))
		for j, p := range fn.Params {
			if !token.IsIdentifier(p.Name) {
				return fail("param #%d name %q is not a valid identifier", j, p.Name)
			}
			if _, ok := reservedParams[p.Name]; ok {
				return fail("param %q is reserved in generated stubs", p.Name)
			}
			if _, ok := seen[p.Name]; ok {
				return fail("param %s declared twice", p.Name)
			}
			seen[p.Name] = struct{}{}
			if p.Type == "" {
				return fail("param %s has no type", p.Name)
			}
		}
		if fn.Returns != "" && fn.Default == "" {
			return fail("default is required when returns is set")
		}
		if fn.Returns == "" && fn.Default != "" {
			return fail("default set without returns")
		}
	}
	return nil
}

// Groups returns the functions keyed by group, in manifest order.
// Functions without a group fall under the package name.
func (m *Manifest) Groups() *orderedmap.OrderedMap[string, []Function] {
	groups := orderedmap.New[string, []Function]()
	for _, fn := range m.Functions {
		g := fn.Group
		if g == "" {
			g = m.Package
		}
		existing, _ := groups.Get(g)
		groups.Set(g, append(existing, fn))
	}
	return groups
}
