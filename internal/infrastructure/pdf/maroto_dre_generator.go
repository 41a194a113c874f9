// Package pdf implementa a exportação do DRE mensal (Demonstrativo do
// Resultado do Exercício) em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do estabelecimento  │  DRE + Mês de referência │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LINHAS: Receita Bruta                                       │
//	│          (-) Custos Variáveis                                │
//	│          (=) Margem de Contribuição                          │
//	│          (-) Custos Fixos                                    │
//	│          (-) Outras Despesas                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADO: Lucro/Prejuízo Líquido + Margem %                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/application/analytics"
	"github.com/barsilva/bar-erp/internal/domain/finance"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 44}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

var mesesPtBR = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// compile-time: o generator satisfaz o port da camada de aplicação
var _ analytics.ReportGenerator = (*MarotoDREGenerator)(nil)

// MarotoDREGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoDREGenerator struct {
	businessName string
}

// NewMarotoDREGenerator constrói o generator com o nome do estabelecimento
// que aparece no cabeçalho do documento.
func NewMarotoDREGenerator(businessName string) *MarotoDREGenerator {
	return &MarotoDREGenerator{businessName: businessName}
}

// GenerateDRE gera o PDF do DRE de um mês e devolve seus bytes.
func (g *MarotoDREGenerator) GenerateDRE(month string, st finance.Statement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("DRE "+month, true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, month))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(statementRow("Receita Bruta", st.GrossRevenue, false))
	m.AddRows(statementRow("(-) Custos Variáveis (Fornecedores)", st.VariableCosts.Neg(), false))
	m.AddRows(statementRow("(=) Margem de Contribuição", st.ContributionMargin, true))
	m.AddRows(statementRow("(-) Custos Fixos", st.FixedCosts.Neg(), false))
	m.AddRows(statementRow("(-) Outras Despesas", st.OtherCosts.Neg(), false))

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resultRow(st))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome do bar (esq) e título + mês por extenso (dir).
func headerRow(businessName, month string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Demonstrativo do Resultado do Exercício", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DRE MENSAL", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(monthLabel(month), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
		),
	)
}

// statementRow: uma linha do demonstrativo. Subtotal ganha negrito.
func statementRow(label string, value decimal.Decimal, subtotal bool) core.Row {
	style := fontstyle.Normal
	if subtotal {
		style = fontstyle.Bold
	}
	valueColor := colorPrimary
	if value.IsNegative() {
		valueColor = colorRed
	}

	return row.New(9).Add(
		col.New(8).Add(text.New(label, props.Text{
			Style: style, Size: 10, Top: 2, Left: 1,
		})),
		col.New(4).Add(text.New(formatBRL(value), props.Text{
			Style: style, Size: 10, Align: align.Right, Top: 2, Right: 1,
			Color: valueColor,
		})),
	)
}

// resultRow: lucro ou prejuízo líquido com a margem percentual.
func resultRow(st finance.Statement) core.Row {
	label := "LUCRO LÍQUIDO"
	valueColor := colorPrimary
	if st.NetProfit.IsNegative() {
		label = "PREJUÍZO LÍQUIDO"
		valueColor = colorRed
	}

	return row.New(16).Add(
		col.New(8).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: valueColor, Top: 2, Left: 1,
			}),
			text.New(fmt.Sprintf("Margem líquida: %s%%", st.MarginPercent.StringFixed(1)), props.Text{
				Size: 8, Top: 10, Left: 1, Color: colorGray,
			}),
		),
		col.New(4).Add(text.New(formatBRL(st.NetProfit), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2, Right: 1,
			Color: valueColor,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// monthLabel converte YYYY-MM em "Agosto/2025". Entrada fora do formato
// volta como veio.
func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return fmt.Sprintf("%s/%d", mesesPtBR[t.Month()-1], t.Year())
}

// formatBRL formata um decimal como moeda brasileira: R$ 1.234,56.
func formatBRL(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}

	out := "R$ " + string(buf) + "," + fracPart
	if v.IsNegative() {
		out = "-" + out
	}
	return out
}
