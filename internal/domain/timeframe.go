package domain

import (
	"fmt"
	"time"
)

// Period é o identificador de janela aceito pelos endpoints de analytics
type Period string

const (
	Period7d  Period = "7d"
	Period30d Period = "30d"
	Period90d Period = "90d"
	Period1y  Period = "1y"
	PeriodAll Period = "all"
)

// allTimeStart é o limite inferior usado para o período "all"
var allTimeStart = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

// Timeframe é o resultado da resolução de um período: a janela atual e, quando
// aplicável, a janela de comparação imediatamente anterior de mesmo tamanho.
// As janelas são disjuntas; a comparação nunca sobrepõe a janela atual.
type Timeframe struct {
	Period        Period     `json:"period"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	PreviousStart *time.Time `json:"previous_start,omitempty"`
	PreviousEnd   *time.Time `json:"previous_end,omitempty"`
}

// periodDays mapeia os períodos limitados para o tamanho da janela em dias
var periodDays = map[Period]int{
	Period7d:  7,
	Period30d: 30,
	Period90d: 90,
	Period1y:  365,
}

// ResolveTimeframe converte um período em janelas concretas relativas a now.
// Para "all" não existe janela de comparação.
func ResolveTimeframe(period Period, now time.Time) (*Timeframe, error) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	if period == PeriodAll {
		return &Timeframe{
			Period: period,
			Start:  allTimeStart,
			End:    end,
		}, nil
	}

	days, ok := periodDays[period]
	if !ok {
		return nil, fmt.Errorf("período inválido: %s", period)
	}

	start := end.AddDate(0, 0, -days)
	prevEnd := start
	prevStart := prevEnd.AddDate(0, 0, -days)

	return &Timeframe{
		Period:        period,
		Start:         start,
		End:           end,
		PreviousStart: &prevStart,
		PreviousEnd:   &prevEnd,
	}, nil
}

// HasComparison indica se existe janela anterior para cálculo de crescimento
func (t *Timeframe) HasComparison() bool {
	return t.PreviousStart != nil && t.PreviousEnd != nil
}

// WindowDays retorna o tamanho da janela atual em dias
func (t *Timeframe) WindowDays() int {
	return int(t.End.Sub(t.Start).Hours() / 24)
}
