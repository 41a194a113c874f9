package analytics

import "github.com/barsilva/bar-erp/internal/domain/finance"

// ReportGenerator gera o documento do DRE mensal para download.
type ReportGenerator interface {
	GenerateDRE(month string, st finance.Statement) ([]byte, error)
}
