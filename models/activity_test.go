package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayDate(t *testing.T) {
	now := time.Date(2026, time.March, 9, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "iso date", input: "2026-02-10", want: "10/02/2026"},
		{name: "display date kept", input: "10/02/2026", want: "10/02/2026"},
		{name: "empty uses today", input: "", want: "09/03/2026"},
		{name: "whitespace uses today", input: "  ", want: "09/03/2026"},
		{name: "garbage", input: "amanhã", wantErr: true},
		{name: "impossible iso date", input: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DisplayDate(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActivityInputNormalize(t *testing.T) {
	now := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	in := ActivityInput{Titulo: "  Estudar ", Categoria: "  ", Data: "2026-03-01", Descricao: "linha 1", Nota: " nova "}
	out, err := in.Normalize(now)
	require.NoError(t, err)

	assert.Equal(t, "Estudar", out.Titulo)
	assert.Equal(t, DefaultCategory, out.Categoria)
	assert.Equal(t, "01/03/2026", out.Data)
	assert.Equal(t, "linha 1", out.Descricao)
	assert.Equal(t, "nova", out.Nota)

	_, err = ActivityInput{Titulo: "x", Data: "ontem"}.Normalize(now)
	assert.Error(t, err)
}

func TestAppendLogEntry(t *testing.T) {
	at := time.Date(2026, time.March, 9, 8, 7, 0, 0, time.UTC)

	assert.Equal(t, "[09/03 às 08h07min] revisado", AppendLogEntry("", "revisado", at))
	assert.Equal(t, "linha 1\n[09/03 às 08h07min] revisado", AppendLogEntry("linha 1\n\n", " revisado ", at))
	assert.Equal(t, "linha 1", AppendLogEntry("linha 1", "   ", at))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@x.com", NormalizeEmail("  Ana@X.com "))
}

func TestUserSummaryHidesPassword(t *testing.T) {
	u := User{ID: 3, Nome: "Ana", Email: "ana@x.com", Senha: "hash"}
	assert.Equal(t, UserSummary{ID: 3, Nome: "Ana", Email: "ana@x.com"}, u.Summary())
}
