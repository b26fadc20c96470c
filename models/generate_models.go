package models

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
The column report lists database columns that no model field maps to, which
usually means a manual migration left something behind:

	portfolio column-report

	projects: legacy_slug
	contact_messages: ok
	case_studies: not created yet
	1 unmapped column(s)
*/

// All returns one zero value of every persisted model, in migration order.
func All() []any {
	return []any{
		&SiteSettings{},
		&Project{},
		&CaseStudy{},
		&ContactMessage{},
		&User{},
		&UserRole{},
	}
}

var (
	errTableMissing = errors.New("table does not exist")
	timeType        = reflect.TypeOf(time.Time{})
)

// TableColumns is the report line for one table. Missing is set when the
// table has not been migrated yet.
type TableColumns struct {
	Table    string
	Unmapped []string
	Missing  bool
}

// ColumnReport is ordered by table name.
type ColumnReport []TableColumns

// Total counts unmapped columns across every table.
func (r ColumnReport) Total() int {
	n := 0
	for _, t := range r {
		n += len(t.Unmapped)
	}
	return n
}

func (r ColumnReport) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, t := range r {
		switch {
		case t.Missing:
			fmt.Fprintf(&b, "%s: not created yet\n", t.Table)
		case len(t.Unmapped) == 0:
			fmt.Fprintf(&b, "%s: ok\n", t.Table)
		default:
			fmt.Fprintf(&b, "%s: %s\n", t.Table, strings.Join(t.Unmapped, ", "))
		}
	}
	fmt.Fprintf(&b, "%d unmapped column(s)\n", r.Total())
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// GenerateModels migrates every model, prints the column report and writes
// typed query helpers to outPath with gorm.io/gen.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	db = db.Session(&gorm.Session{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			LogLevel: logger.Info,
			Colorful: true,
		}),
		SkipDefaultTransaction: true,
	})

	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}
	if err := PrintColumnReport(db); err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)
	g.Execute()
	return nil
}

// PrintColumnReport writes BuildColumnReport's result to stdout.
func PrintColumnReport(db *gorm.DB) error {
	report, err := BuildColumnReport(db)
	if err != nil {
		return err
	}
	_, err = report.WriteTo(os.Stdout)
	return err
}

// BuildColumnReport compares information_schema against the fields gorm
// derives for each model in All.
func BuildColumnReport(db *gorm.DB) (ColumnReport, error) {
	var report ColumnReport
	for _, m := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parse %T: %w", m, err)
		}
		table := stmt.Schema.Table

		columns, err := tableColumns(db, table)
		if errors.Is(err, errTableMissing) {
			report = append(report, TableColumns{Table: table, Missing: true})
			continue
		}
		if err != nil {
			return nil, err
		}
		report = append(report, TableColumns{
			Table:    table,
			Unmapped: findColumnMismatches(columns, modelColumns(db, m)),
		})
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Table < report[j].Table })
	return report, nil
}

func tableColumns(db *gorm.DB, table string) ([]string, error) {
	var exists bool
	err := db.Raw(`SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = CURRENT_SCHEMA() AND table_name = ?)`, table).Scan(&exists).Error
	if err != nil {
		return nil, fmt.Errorf("check table %s: %w", table, err)
	}
	if !exists {
		return nil, errTableMissing
	}

	var columns []string
	err = db.Raw(`SELECT column_name FROM information_schema.columns
		WHERE table_schema = CURRENT_SCHEMA() AND table_name = ?
		ORDER BY ordinal_position`, table).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("list columns of %s: %w", table, err)
	}
	return columns, nil
}

// modelColumns honours explicit column: tags and falls back to the naming
// strategy. Association fields are skipped.
func modelColumns(db *gorm.DB, model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous || field.Tag.Get("gorm") == "-" {
			continue
		}
		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && ft != timeType {
			continue
		}
		if ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Struct {
			continue
		}

		if column := columnFromTag(field.Tag.Get("gorm")); column != "" {
			columns = append(columns, column)
			continue
		}
		columns = append(columns, db.NamingStrategy.ColumnName("", field.Name))
	}
	return columns
}

func columnFromTag(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if name, ok := strings.CutPrefix(strings.TrimSpace(part), "column:"); ok {
			return name
		}
	}
	return ""
}

func findColumnMismatches(dbColumns, modelFields []string) []string {
	known := make(map[string]struct{}, len(modelFields))
	for _, f := range modelFields {
		known[f] = struct{}{}
	}

	var unmapped []string
	for _, col := range dbColumns {
		if _, ok := known[col]; !ok {
			unmapped = append(unmapped, col)
		}
	}
	return unmapped
}
