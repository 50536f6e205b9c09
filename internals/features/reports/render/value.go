package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Table is what the renderers receive: ordered headers and full rows keyed by
// the lower-cased header text.
type Table struct {
	Title       string
	Headers     []string
	Rows        []map[string]any
	GeneratedAt time.Time
}

// Cell returns the row value for header i.
func (t Table) Cell(row map[string]any, i int) any {
	return row[strings.ToLower(t.Headers[i])]
}

// FormatValue renders a store value for display.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04")
	case *time.Time:
		if x == nil {
			return ""
		}
		return FormatValue(*x)
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	case float32:
		return strconv.FormatFloat(float64(x), 'f', 2, 64)
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	case decimal.Decimal:
		return x.StringFixed(2)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// numericValue reports whether v should be written as a number in a spreadsheet.
func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case decimal.Decimal:
		f, _ := x.Float64()
		return f, true
	case string:
		// numeric(12,2) columns come back from the driver as text ("2000.00");
		// codes and phone numbers without a decimal point stay text
		d, err := decimal.NewFromString(x)
		if err != nil || !looksNumeric(x) {
			return 0, false
		}
		f, _ := d.Float64()
		return f, true
	default:
		return 0, false
	}
}

func looksNumeric(s string) bool {
	if !strings.Contains(s, ".") {
		return false
	}
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' && !(i == 0 && r == '-') {
			return false
		}
	}
	return true
}
