package assetdb

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"
)

// DiffDefaults renders a YAML-aware drift report between the on-disk asset
// spec at logical and the registered defaults for its type. Returns "" when
// there is no drift. The installer never reconciles drift; this is a
// read-only report.
func (s *Store) DiffDefaults(logical string, useColor bool) (string, error) {
	asset, err := s.Load(logical)
	if err != nil {
		return "", err
	}

	t, ok := s.resolver.Resolve(asset.Type)
	if !ok {
		return "", fmt.Errorf("asset %s has unregistered type %q", logical, asset.Type)
	}

	defaults, err := yaml.Marshal(t.New())
	if err != nil {
		return "", fmt.Errorf("serializing defaults for %s: %w", asset.Type, err)
	}

	current, err := yaml.Marshal(asset.Spec)
	if err != nil {
		return "", fmt.Errorf("serializing asset spec %s: %w", logical, err)
	}

	return diffYAML(defaults, current, useColor)
}

// diffYAML computes a dyff report between two YAML documents.
func diffYAML(defaults, current []byte, useColor bool) (string, error) {
	defaultsInput, err := parseYAMLInput("defaults", defaults)
	if err != nil {
		return "", fmt.Errorf("parsing defaults YAML: %w", err)
	}

	currentInput, err := parseYAMLInput("current", current)
	if err != nil {
		return "", fmt.Errorf("parsing current YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(defaultsInput, currentInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{
			Location:  name,
			Documents: nil,
		}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n"), nil
}
