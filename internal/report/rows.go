package report

// Row is one line of the flattened hierarchy.
// It is one of YearRow, WeekRow or DayRow.
type Row interface {
	isRow()
}

// YearRow introduces a year.
type YearRow struct {
	Year Year
}

// WeekRow introduces a week inside a year.
type WeekRow struct {
	Week Week
}

// DayRow is a day inside a week.
type DayRow struct {
	Day Day
}

func (YearRow) isRow() {}
func (WeekRow) isRow() {}
func (DayRow) isRow()  {}

// Rows flattens years into display order: each year, then each of its weeks
// followed by that week's days.
func Rows(years []Year) []Row {
	var rows []Row
	for _, y := range years {
		rows = append(rows, YearRow{Year: y})
		for _, w := range y.Weeks {
			rows = append(rows, WeekRow{Week: w})
			for _, d := range w.Days {
				rows = append(rows, DayRow{Day: d})
			}
		}
	}
	return rows
}
