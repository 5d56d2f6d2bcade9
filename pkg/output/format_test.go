package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calculator/internal/config"
)

func processedMortgages(t *testing.T) []config.Mortgage {
	t.Helper()

	conf := &config.Configuration{
		Mortgages: []config.Mortgage{
			{Name: "First home", Principal: 200000, TermYears: 25, AnnualInterestRate: 5.0, Type: "repayment"},
			{Name: "City flat", Principal: 200000, TermYears: 25, AnnualInterestRate: 5.0, Type: "interestOnly"},
		},
	}
	if err := conf.ProcessMortgages(nil); err != nil {
		t.Fatalf("failed to process mortgages: %v", err)
	}
	return conf.Mortgages
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, "£", processedMortgages(t))
	result := buf.String()

	if !strings.Contains(result, "Mortgage") || !strings.Contains(result, "Monthly Payment") {
		t.Errorf("PrettyFormat missing table header:\n%s", result)
	}
	if !strings.Contains(result, "First home") {
		t.Errorf("PrettyFormat missing mortgage name:\n%s", result)
	}
	if !strings.Contains(result, "Repayment") || !strings.Contains(result, "Interest-only") {
		t.Errorf("PrettyFormat missing mortgage type labels:\n%s", result)
	}
	if !strings.Contains(result, "£1,169.18") {
		t.Errorf("PrettyFormat missing grouped monthly payment:\n%s", result)
	}
	if !strings.Contains(result, "£350,754.86") {
		t.Errorf("PrettyFormat missing grouped total repayment:\n%s", result)
	}
	if !strings.Contains(result, "£833.33") {
		t.Errorf("PrettyFormat missing interest-only monthly payment:\n%s", result)
	}
}

func TestPrettyFormatSkipsUnprocessed(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, "£", []config.Mortgage{{Name: "Unprocessed"}})

	if strings.Contains(buf.String(), "Unprocessed") {
		t.Errorf("PrettyFormat rendered a mortgage without results:\n%s", buf.String())
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	CsvFormat(&buf, processedMortgages(t))
	result := buf.String()

	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvFormat produced %d lines, expected 3:\n%s", len(lines), result)
	}

	header := `"name","type","principal","termYears","annualInterestRate","monthlyPayment","totalRepayment"`
	if lines[0] != header {
		t.Errorf("CsvFormat header = %s, expected %s", lines[0], header)
	}
	if !strings.Contains(lines[1], `"First home","repayment","200000.00","25","5.00","1169.18","350754.86"`) {
		t.Errorf("CsvFormat repayment row = %s", lines[1])
	}
	if !strings.Contains(lines[2], `"City flat","interestOnly","200000.00","25","5.00","833.33","450000.00"`) {
		t.Errorf("CsvFormat interest-only row = %s", lines[2])
	}
}

func TestCsvFormatEmpty(t *testing.T) {
	var buf bytes.Buffer
	CsvFormat(&buf, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("CsvFormat with no mortgages should emit only the header, got:\n%s", buf.String())
	}
}
