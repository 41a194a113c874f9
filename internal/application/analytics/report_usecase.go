package analytics

import (
	"time"

	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/finance"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

// ReportUseCase exporta o DRE mensal em PDF.
type ReportUseCase struct {
	txRepo    repository.TransactionRepository
	generator ReportGenerator
	now       func() time.Time
}

func NewReportUseCase(txRepo repository.TransactionRepository, generator ReportGenerator, nowFn func() time.Time) *ReportUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &ReportUseCase{txRepo: txRepo, generator: generator, now: nowFn}
}

// MonthlyDRE gera o PDF do DRE do mês indicado (YYYY-MM, vazio usa o
// corrente). O documento sai mesmo para um mês sem movimento: todas as
// linhas em zero.
func (uc *ReportUseCase) MonthlyDRE(month string) ([]byte, error) {
	if month == "" {
		month = uc.now().Format(monthLayout)
	}
	if _, err := time.Parse(monthLayout, month); err != nil {
		return nil, domain.ErrInvalidInput
	}

	all, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}

	st := finance.ComputeStatement(finance.FilterMonth(all, month))
	return uc.generator.GenerateDRE(month, st)
}
