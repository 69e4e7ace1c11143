package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"fincalc/core/finance"
)

// ScanError records a parse failure with its source location.
type ScanError struct {
	File    string
	Line    int
	Message string
}

// ScanResult holds everything lifted out of the scenario files.
type ScanResult struct {
	Calculations []Calculation
	Errors       []ScanError
}

// Scanner parses .fin scenario files.
type Scanner struct {
	parser *hclparse.Parser
}

// NewScanner creates a new scenario scanner.
func NewScanner() *Scanner {
	return &Scanner{
		parser: hclparse.NewParser(),
	}
}

var blockSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "calc", LabelNames: []string{"tool", "name"}},
	},
}

// Scan parses path, which may be a single .fin file or a directory
// searched recursively for them. Parse failures become ScanErrors; only
// filesystem problems abort the scan.
func (s *Scanner) Scan(path string) (*ScanResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var files []string
	if info.IsDir() {
		err := filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && strings.HasSuffix(p, ".fin") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory: %w", err)
		}
	} else {
		files = []string{path}
	}

	result := &ScanResult{
		Calculations: make([]Calculation, 0),
		Errors:       make([]ScanError, 0),
	}
	for _, file := range files {
		s.scanFile(file, result)
	}
	return result, nil
}

func (s *Scanner) scanFile(file string, result *ScanResult) {
	src, err := os.ReadFile(file)
	if err != nil {
		result.Errors = append(result.Errors, ScanError{
			File:    file,
			Message: fmt.Sprintf("failed to read file: %v", err),
		})
		return
	}

	hclFile, diags := s.parser.ParseHCL(src, file)
	if diags.HasErrors() {
		result.Errors = append(result.Errors, diagErrors(file, diags)...)
		return
	}

	content, diags := hclFile.Body.Content(blockSchema)
	if diags.HasErrors() {
		result.Errors = append(result.Errors, diagErrors(file, diags)...)
		return
	}

	for _, block := range content.Blocks {
		calc, errs := s.parseCalc(block, file)
		result.Errors = append(result.Errors, errs...)
		if calc != nil {
			result.Calculations = append(result.Calculations, *calc)
		}
	}
}

func (s *Scanner) parseCalc(block *hcl.Block, file string) (*Calculation, []ScanError) {
	var errs []ScanError

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diagErrors(file, diags)
	}

	args := make(finance.Args, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			// variables and functions have no place in a scenario file
			errs = append(errs, diagErrors(file, diags)...)
			continue
		}
		args[name] = ctyToGo(val)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &Calculation{
		Tool:       block.Labels[0],
		Name:       block.Labels[1],
		Args:       args,
		SourceFile: file,
		SourceLine: block.DefRange.Start.Line,
	}, nil
}

func diagErrors(file string, diags hcl.Diagnostics) []ScanError {
	var errs []ScanError
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		errs = append(errs, ScanError{
			File:    file,
			Line:    line,
			Message: diag.Summary + ": " + diag.Detail,
		})
	}
	return errs
}

// ctyToGo converts an evaluated HCL value to the shapes finance.Coerce
// accepts: float64, string, bool, or a slice of them.
func ctyToGo(val cty.Value) interface{} {
	if val.IsNull() || !val.IsKnown() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f
	case ty == cty.String:
		return val.AsString()
	case ty == cty.Bool:
		return val.True()
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var out []interface{}
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			out = append(out, ctyToGo(elem))
		}
		return out
	default:
		return nil
	}
}
