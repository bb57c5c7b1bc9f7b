package usecasees

import (
	"github.com/sirupsen/logrus"

	"github.com/julimen5/cocos-challenge/internal/repository/postgres"
	"github.com/julimen5/cocos-challenge/models"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ClampPaging normalizes caller-supplied paging values to the supported
// range. The HTTP layer runs it before building metadata so the reported
// page/pageSize always match the executed query.
func ClampPaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize
}

type instrumentUseCase struct {
	instrumentRepo postgres.InstrumentRepo

	logger *logrus.Logger
}

func NewInstrumentUseCase(
	instrumentRepo postgres.InstrumentRepo,
	logger *logrus.Logger,
) *instrumentUseCase {
	return &instrumentUseCase{
		instrumentRepo: instrumentRepo,
		logger:         logger,
	}
}

// Search delegates the filtered query to storage and returns the page plus
// the total match count.
func (u *instrumentUseCase) Search(query string, page, pageSize int) ([]models.Instrument, int64, error) {
	page, pageSize = ClampPaging(page, pageSize)

	instruments, total, err := u.instrumentRepo.Search(query, pageSize, (page-1)*pageSize)
	if err != nil {
		u.logger.WithField("query", query).WithError(err).Error("search instruments")
		return nil, 0, err
	}

	return instruments, total, nil
}
