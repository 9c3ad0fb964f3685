package main

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// A constraint de unicidade precisa existir na mesma tabela que o upsert de
// receita usa no ON CONFLICT (creator_id, date, source)
func TestAddUniqueConstraintTargetsAdRevenueTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("erro ao criar o sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("table_name = 'ad_revenue'").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("ALTER TABLE ad_revenue ADD CONSTRAINT ad_revenue_creator_date_source_unique").
		WillReturnResult(sqlmock.NewResult(0, 0))

	addUniqueConstraintToRevenueRecords(db)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddUniqueConstraintSkipsWhenAlreadyPresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("erro ao criar o sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("table_name = 'ad_revenue'").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	addUniqueConstraintToRevenueRecords(db)

	assert.NoError(t, mock.ExpectationsWereMet())
}
