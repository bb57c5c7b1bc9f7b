package usecasees

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	pgMocks "github.com/julimen5/cocos-challenge/internal/repository/postgres/mocks"
	"github.com/julimen5/cocos-challenge/models"
)

func Test_InstrumentUseCase_Search(t *testing.T) {
	instruments := []models.Instrument{
		{ID: 1, Ticker: "DYCA", Name: "Dycasa S.A.", Type: models.InstrumentTypeEquity},
	}

	cases := []struct {
		name string

		page     int
		pageSize int

		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: 0, pageSize: 0, wantLimit: 10, wantOffset: 0},
		{name: "second page", page: 2, pageSize: 10, wantLimit: 10, wantOffset: 10},
		{name: "page size capped", page: 1, pageSize: 500, wantLimit: 100, wantOffset: 0},
		{name: "negative page clamped", page: -3, pageSize: 20, wantLimit: 20, wantOffset: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &pgMocks.InstrumentRepo{}
			repo.On("Search", "dyc", tc.wantLimit, tc.wantOffset).Return(instruments, int64(1), nil)

			u := NewInstrumentUseCase(repo, logrus.New())

			got, total, err := u.Search("dyc", tc.page, tc.pageSize)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), total)
			assert.Equal(t, instruments, got)

			repo.AssertExpectations(t)
		})
	}
}
