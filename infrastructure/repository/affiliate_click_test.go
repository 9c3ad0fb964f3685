package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

func TestAffiliateClickCreate(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewAffiliateClickRepository(conn)

	clickedAt := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	click := &domain.AffiliateClick{
		ID:              "clk_1",
		LinkID:          "lnk_abc",
		ClickedAt:       clickedAt,
		HashedIPAddress: "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3",
		UserAgent:       "Mozilla/5.0",
		Referrer:        "https://blog.example.com/artigo",
	}

	mock.ExpectExec("INSERT INTO affiliate_link_stats").
		WithArgs("clk_1", "lnk_abc", nil, clickedAt, click.HashedIPAddress, "Mozilla/5.0", "https://blog.example.com/artigo", false, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(click)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertMostRecentUnconverted(t *testing.T) {
	cutoff := time.Date(2024, 2, 9, 12, 0, 0, 0, time.UTC)
	convertedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Deve converter o clique elegível mais recente dentro da janela", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAffiliateClickRepository(conn)

		clickedAt := convertedAt.Add(-48 * time.Hour)
		rows := sqlmock.NewRows([]string{
			"id", "link_id", "article_id", "clicked_at", "hashed_ip_address",
			"user_agent", "referrer", "converted", "commission_cents", "conversion_date",
		}).AddRow("clk_9", "lnk_abc", nil, clickedAt, "abc123", "Mozilla/5.0", "", true, int64(2500), convertedAt)

		mock.ExpectQuery("UPDATE affiliate_link_stats SET").
			WithArgs(int64(2500), convertedAt, "lnk_abc", cutoff).
			WillReturnRows(rows)

		click, err := repo.ConvertMostRecentUnconverted("lnk_abc", 2500, cutoff, convertedAt)

		assert.NoError(t, err)
		assert.Equal(t, "clk_9", click.ID)
		assert.True(t, click.Converted)
		assert.Equal(t, int64(2500), click.CommissionCents)
		assert.NotNil(t, click.ConversionDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deve devolver ErrNoRowsAffected quando não há clique elegível", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAffiliateClickRepository(conn)

		mock.ExpectQuery("UPDATE affiliate_link_stats SET").
			WithArgs(int64(2500), convertedAt, "lnk_abc", cutoff).
			WillReturnError(sql.ErrNoRows)

		click, err := repo.ConvertMostRecentUnconverted("lnk_abc", 2500, cutoff, convertedAt)

		assert.ErrorIs(t, err, ErrNoRowsAffected)
		assert.Nil(t, click)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWindowCommissionCents(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewAffiliateClickRepository(conn)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COALESCE.+ FROM affiliate_link_stats als JOIN affiliate_links al").
		WithArgs(7, true, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(int64(4200)))

	total, err := repo.WindowCommissionCents(7, start, end)

	assert.NoError(t, err)
	assert.Equal(t, int64(4200), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
