package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barsilva/bar-erp/internal/domain/finance"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestGenerateDRE(t *testing.T) {
	gen := NewMarotoDREGenerator("Bar do Silva")

	st := finance.Statement{
		GrossRevenue:       dec(12500.50),
		VariableCosts:      dec(4200),
		ContributionMargin: dec(8300.50),
		FixedCosts:         dec(3200),
		OtherCosts:         dec(150),
		TotalExpenses:      dec(7550),
		NetProfit:          dec(4950.50),
		MarginPercent:      dec(39.6),
	}

	doc, err := gen.GenerateDRE("2025-08", st)
	require.NoError(t, err)

	assert.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "o resultado é um PDF válido")
}

func TestGenerateDREMesZerado(t *testing.T) {
	gen := NewMarotoDREGenerator("Bar do Silva")

	doc, err := gen.GenerateDRE("2024-02", finance.Statement{})
	require.NoError(t, err)
	assert.NotEmpty(t, doc, "mês sem movimento ainda gera o documento")
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Agosto/2025", monthLabel("2025-08"))
	assert.Equal(t, "Janeiro/2024", monthLabel("2024-01"))
	assert.Equal(t, "qualquer-coisa", monthLabel("qualquer-coisa"))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", formatBRL(dec(1234.56)))
	assert.Equal(t, "R$ 0,00", formatBRL(decimal.Zero))
	assert.Equal(t, "-R$ 3.200,00", formatBRL(dec(-3200)))
	assert.Equal(t, "R$ 1.000.000,00", formatBRL(dec(1000000)))
}
