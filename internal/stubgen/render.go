package stubgen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"os"
	"sort"
	"text/template"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
)

// RegistryImport is the package every generated stub reports to.
const RegistryImport = "github.com/srg/btmock/callreg"

//go:embed stub.go.tmpl
var stubTemplate string

var tmpl = template.Must(template.New("stub").Parse(stubTemplate))

// templateData holds the data for the code generation template.
type templateData struct {
	Source    string
	Package   string
	Interface string
	Imports   []string
	Functions []Function
}

// Render produces gofmt-ed Go source for the manifest's Stub.
func Render(m *Manifest) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	data := templateData{
		Source:    m.Source,
		Package:   m.Package,
		Interface: m.Interface,
		Imports:   imports(m),
		Functions: m.Functions,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code for package %s does not parse: %w", m.Package, err)
	}
	return src, nil
}

func imports(m *Manifest) []string {
	seen := map[string]struct{}{RegistryImport: {}}
	out := []string{RegistryImport}
	for _, imp := range m.Imports {
		if _, ok := seen[imp]; ok {
			continue
		}
		seen[imp] = struct{}{}
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

// Diff compares want with the file at path and returns a unified diff, or ""
// when the file is up to date. A missing file diffs against empty content.
func Diff(path string, want []byte) (string, error) {
	have, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bytes.Equal(have, want) {
		return "", nil
	}

	edits := myers.ComputeEdits("", string(have), string(want))
	return fmt.Sprint(gotextdiff.ToUnified(path, path+" (generated)", string(have), edits)), nil
}

// Generate renders m and writes it to path.
func Generate(m *Manifest, path string) error {
	src, err := Render(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
