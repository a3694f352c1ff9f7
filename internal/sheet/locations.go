package sheet

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/remarks-cli/internal/model"
)

// FieldColumns maps extraction field names to hit-list column names.
var FieldColumns = map[string]string{
	"phone":          ColPhone,
	"cell_phone":     ColCellPhone,
	"email":          ColEmail,
	"website":        ColWebsite,
	"instagram":      ColInstagram,
	"address":        ColAddress,
	"city":           ColCity,
	"state":          ColState,
	"contact_person": ColContactPerson,
	"follow_up_date": ColFollowUpDate,
	"outcome":        ColOutcome,
	"visit_date":     ColVisitDate,
	"contact_method": ColContactMethod,
}

// Locations reads and writes hit-list rows. Lookup is by case-insensitive
// exact shop name. Rows are enriched in place and never created or deleted.
type Locations struct {
	store     RowStore
	worksheet string

	headers map[string]int
}

// NewLocations creates a repository over the given worksheet.
func NewLocations(store RowStore, worksheet string) *Locations {
	return &Locations{store: store, worksheet: worksheet}
}

// load reads the worksheet and verifies the required columns.
func (l *Locations) load(ctx context.Context) ([][]string, error) {
	rows, err := l.store.ReadAll(ctx, l.worksheet)
	if err != nil {
		return nil, eris.Wrapf(err, "read worksheet %s", l.worksheet)
	}
	if len(rows) < 1 {
		return nil, &SchemaError{Worksheet: l.worksheet, Column: ColShopName}
	}
	l.headers = headerIndex(rows[0])
	if err := requireColumns(l.worksheet, l.headers, ColShopName, ColStatus, ColNotes); err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns the location whose name equals the given name, ignoring case.
// Returns ErrNotFound when no row matches.
func (l *Locations) Get(ctx context.Context, name string) (*model.Location, error) {
	rows, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return nil, eris.Wrap(ErrNotFound, "empty shop name")
	}

	for i, row := range rows[1:] {
		if strings.ToLower(cell(row, l.headers[ColShopName])) != want {
			continue
		}
		loc := l.fromRow(row)
		loc.Row = i + 2
		return loc, nil
	}
	return nil, eris.Wrapf(ErrNotFound, "shop %q", name)
}

func (l *Locations) fromRow(row []string) *model.Location {
	get := func(column string) string {
		col, ok := l.headers[column]
		if !ok {
			return ""
		}
		return cell(row, col)
	}
	return &model.Location{
		Name:              get(ColShopName),
		Status:            get(ColStatus),
		Address:           get(ColAddress),
		City:              get(ColCity),
		State:             get(ColState),
		Phone:             get(ColPhone),
		CellPhone:         get(ColCellPhone),
		Email:             get(ColEmail),
		Website:           get(ColWebsite),
		Instagram:         get(ColInstagram),
		ContactPerson:     get(ColContactPerson),
		FollowUpDate:      get(ColFollowUpDate),
		Outcome:           get(ColOutcome),
		VisitDate:         get(ColVisitDate),
		ContactMethod:     get(ColContactMethod),
		StatusUpdatedBy:   get(ColStatusUpdatedBy),
		StatusUpdatedDate: get(ColStatusUpdatedDate),
		Notes:             get(ColNotes),
		FollowUpEventLink: get(ColEventLink),
	}
}

// HasColumn reports whether the worksheet carries the column. Valid after
// any successful Get.
func (l *Locations) HasColumn(column string) bool {
	_, ok := l.headers[column]
	return ok
}

// Headers returns the header row in sheet order. Used by the schema
// inspection command.
func (l *Locations) Headers(ctx context.Context) ([]string, error) {
	rows, err := l.store.ReadAll(ctx, l.worksheet)
	if err != nil {
		return nil, eris.Wrapf(err, "read worksheet %s", l.worksheet)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// SetField writes one cell of the location's row. The column must exist.
func (l *Locations) SetField(ctx context.Context, loc *model.Location, column, value string) error {
	col, ok := l.headers[column]
	if !ok {
		return &SchemaError{Worksheet: l.worksheet, Column: column}
	}
	if err := l.store.UpdateCell(ctx, l.worksheet, loc.Row, col+1, value); err != nil {
		return eris.Wrapf(err, "write %s for %s", column, loc.Name)
	}
	return nil
}
