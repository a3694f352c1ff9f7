package sheet

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"
)

// Memory is an in-memory RowStore used by tests and dry runs. Cells grow on
// demand the way a real worksheet does.
type Memory struct {
	mu         sync.Mutex
	worksheets map[string][][]string

	// WriteErr, when set, is consulted before every UpdateCell and lets
	// tests inject partial-write failures.
	WriteErr func(worksheet string, row, col int) error
}

// NewMemory creates a Memory store with the given worksheet contents.
func NewMemory(worksheets map[string][][]string) *Memory {
	copied := make(map[string][][]string, len(worksheets))
	for name, rows := range worksheets {
		dst := make([][]string, len(rows))
		for i, row := range rows {
			dst[i] = append([]string(nil), row...)
		}
		copied[name] = dst
	}
	return &Memory{worksheets: copied}
}

func (m *Memory) ReadAll(_ context.Context, worksheet string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.worksheets[worksheet]
	if !ok {
		return nil, eris.Errorf("memory: no worksheet %q", worksheet)
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *Memory) ReadCell(_ context.Context, worksheet string, row, col int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.worksheets[worksheet]
	if !ok {
		return "", eris.Errorf("memory: no worksheet %q", worksheet)
	}
	if row < 1 || row > len(rows) || col < 1 || col > len(rows[row-1]) {
		return "", nil
	}
	return rows[row-1][col-1], nil
}

func (m *Memory) UpdateCell(_ context.Context, worksheet string, row, col int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		if err := m.WriteErr(worksheet, row, col); err != nil {
			return err
		}
	}

	rows, ok := m.worksheets[worksheet]
	if !ok {
		return eris.Errorf("memory: no worksheet %q", worksheet)
	}
	if row < 1 || col < 1 {
		return eris.Errorf("memory: cell (%d,%d) out of range", row, col)
	}
	for len(rows) < row {
		rows = append(rows, nil)
	}
	for len(rows[row-1]) < col {
		rows[row-1] = append(rows[row-1], "")
	}
	rows[row-1][col-1] = value
	m.worksheets[worksheet] = rows
	return nil
}

func (m *Memory) AppendRow(_ context.Context, worksheet string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.worksheets[worksheet]
	if !ok {
		return eris.Errorf("memory: no worksheet %q", worksheet)
	}
	m.worksheets[worksheet] = append(rows, append([]string(nil), values...))
	return nil
}

// SetWorksheet replaces a worksheet's contents, for test setup.
func (m *Memory) SetWorksheet(worksheet string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dst := make([][]string, len(rows))
	for i, row := range rows {
		dst[i] = append([]string(nil), row...)
	}
	m.worksheets[worksheet] = dst
}

// Cell returns the current value at 1-based (row, col), for assertions.
func (m *Memory) Cell(worksheet string, row, col int) string {
	v, _ := m.ReadCell(context.Background(), worksheet, row, col)
	return v
}

// Rows returns a copy of the worksheet contents, for assertions.
func (m *Memory) Rows(worksheet string) [][]string {
	rows, _ := m.ReadAll(context.Background(), worksheet)
	return rows
}
