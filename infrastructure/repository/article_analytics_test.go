package repository

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

func TestIncrementCounter(t *testing.T) {
	t.Run("Deve fazer upsert somando 1 no contador do dia", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewArticleAnalyticsRepository(conn)

		mock.ExpectExec("INSERT INTO article_analytics").
			WithArgs("ana_1", "art_abc", "2024-03-10", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		err := repo.IncrementCounter("ana_1", "art_abc", date, domain.CounterPageViews)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deve recusar contador fora do mapa de colunas", func(t *testing.T) {
		conn, _ := newMockConn(t)
		repo := NewArticleAnalyticsRepository(conn)

		err := repo.IncrementCounter("ana_1", "art_abc", time.Now(), "likes")

		assert.ErrorContains(t, err, "contador desconhecido")
	})
}

func TestSetBounceRateUpsert(t *testing.T) {
	t.Run("Deve gravar a taxa do dia substituindo o valor anterior", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewArticleAnalyticsRepository(conn)

		mock.ExpectExec("bounce_rate = EXCLUDED.bounce_rate").
			WithArgs("ana_1", "art_abc", "2024-03-10", 37.5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		err := repo.SetBounceRate("ana_1", "art_abc", date, 37.5)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
