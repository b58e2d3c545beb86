package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultCategory = "Geral"

const displayDateLayout = "02/01/2006"

type Activity struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UsuarioID  int64     `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Titulo     string    `gorm:"column:titulo;size:255" json:"titulo"`
	Descricao  string    `gorm:"column:descricao;type:text;not null" json:"descricao"`
	Categoria  string    `gorm:"column:categoria;size:50" json:"categoria"`
	Data       string    `gorm:"column:data;size:20;not null" json:"data"`
	Importante bool      `gorm:"column:importante;default:false" json:"importante"`
	Finalizada bool      `gorm:"column:finalizada;default:false" json:"finalizada"`
	Ordem      Ordem     `gorm:"column:ordem;type:bigint;<-:create;-:migration" json:"ordem"`
	CriadoEm   time.Time `gorm:"column:criado_em;not null;autoCreateTime" json:"criado_em"`

	Usuario *User `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Activity) TableName() string {
	return "atividades"
}

// Ordem is the insertion-order counter of an activity. The column is added
// by the migrations rather than AutoMigrate and its value is always assigned
// by the database on insert.
type Ordem int64

// GormValue makes postgres fall back to the column's sequence and computes
// the next counter value inline on other dialects.
func (Ordem) GormValue(ctx context.Context, db *gorm.DB) clause.Expr {
	if db.Dialector.Name() == "postgres" {
		return clause.Expr{SQL: "DEFAULT"}
	}
	return clause.Expr{SQL: "(SELECT COALESCE(MAX(ordem), 0) + 1 FROM atividades)"}
}

// Scan reads rows created before the column existed as zero.
func (o *Ordem) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*o = 0
	case int64:
		*o = Ordem(v)
	case int32:
		*o = Ordem(v)
	case []byte:
		var n int64
		if _, err := fmt.Sscan(string(v), &n); err != nil {
			return fmt.Errorf("scan ordem: %w", err)
		}
		*o = Ordem(n)
	default:
		return fmt.Errorf("scan ordem: unsupported type %T", value)
	}
	return nil
}

// ActivityInput carries the editable fields of an activity. Nota, when set
// on an update, is appended to Descricao as a timestamped log line.
type ActivityInput struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Categoria string `json:"categoria"`
	Data      string `json:"data"`
	Nota      string `json:"nota"`
}

// Normalize trims the input, defaults the category and converts the date
// to the display format. now supplies the date used when none was given.
func (in ActivityInput) Normalize(now time.Time) (ActivityInput, error) {
	out := ActivityInput{
		Titulo:    strings.TrimSpace(in.Titulo),
		Descricao: in.Descricao,
		Categoria: strings.TrimSpace(in.Categoria),
		Nota:      strings.TrimSpace(in.Nota),
	}
	if out.Categoria == "" {
		out.Categoria = DefaultCategory
	}

	data, err := DisplayDate(in.Data, now)
	if err != nil {
		return ActivityInput{}, err
	}
	out.Data = data
	return out, nil
}

// DisplayDate converts an ISO date (YYYY-MM-DD) to DD/MM/YYYY. Dates already
// in display format are returned unchanged and an empty value becomes the
// date of now.
func DisplayDate(value string, now time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now.Format(displayDateLayout), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.Format(displayDateLayout), nil
	}
	if _, err := time.Parse(displayDateLayout, value); err == nil {
		return value, nil
	}
	return "", fmt.Errorf("unrecognized date %q", value)
}

// AppendLogEntry adds a "[DD/MM às HHhMMmin] note" line to the end of a
// description history.
func AppendLogEntry(history, note string, at time.Time) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return history
	}
	entry := fmt.Sprintf("[%s às %sh%smin] %s", at.Format("02/01"), at.Format("15"), at.Format("04"), note)
	if trimmed := strings.TrimSpace(history); trimmed != "" {
		return trimmed + "\n" + entry
	}
	return entry
}
